package model

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	Id        string    `gorm:"type:varchar(255);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Meeting) TableName() string {
	return "meetings"
}

type Transcript struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MeetingId   string    `gorm:"type:varchar(255);not null;index"`
	Transcript  string    `gorm:"type:text;not null"`
	Timestamp   string    `gorm:"type:varchar(64)"`
	Summary     string    `gorm:"type:text"`
	ActionItems string    `gorm:"type:text"`
	KeyPoints   string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Transcript) TableName() string {
	return "transcripts"
}
