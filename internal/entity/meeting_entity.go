package entity

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id        string
	Title     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Transcript struct {
	Id          uuid.UUID
	MeetingId   string
	Transcript  string
	Timestamp   string
	Summary     string
	ActionItems string
	KeyPoints   string
	CreatedAt   time.Time
}
