package entity

import "time"

// SummaryRequest records what the caller asked for on the latest
// submit: which provider/model pair processed the meeting.
type SummaryRequest struct {
	MeetingId string
	Provider  string
	Model     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
