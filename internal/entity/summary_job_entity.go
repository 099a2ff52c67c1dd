package entity

import (
	"encoding/json"
	"time"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusProcessing JobStatus = "PROCESSING"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusFailed     JobStatus = "FAILED"
)

// Terminal reports whether the status is an end state. Terminal jobs
// never move back to PENDING or PROCESSING except via a fresh submit.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// SummaryJob is one summarization run keyed by meeting id. Result holds
// the aggregated document as JSON once the job completes.
type SummaryJob struct {
	MeetingId      string
	Status         JobStatus
	Error          string
	Result         json.RawMessage
	ChunkCount     int
	ProcessingTime float64 // seconds
	Metadata       json.RawMessage
	StartTime      *time.Time
	EndTime        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SummaryJobUpdate is a partial update: nil fields are left untouched.
type SummaryJobUpdate struct {
	Status         *JobStatus
	Error          *string
	Result         json.RawMessage
	ChunkCount     *int
	ProcessingTime *float64
	Metadata       json.RawMessage
}
