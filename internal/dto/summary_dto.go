package dto

import "encoding/json"

// ProcessTranscriptRequest submits a transcript for summarization.
// ChunkSize overrides the server default when > 0. Overlap is a pointer
// so an explicit zero is distinguishable from an absent field.
type ProcessTranscriptRequest struct {
	Text      string `json:"text" validate:"required"`
	MeetingId string `json:"meeting_id" validate:"required"`
	Provider  string `json:"model" validate:"required"`
	Model     string `json:"model_name" validate:"required"`
	ChunkSize int    `json:"chunk_size"`
	Overlap   *int   `json:"overlap"`
}

type ProcessTranscriptResponse struct {
	ProcessId string `json:"process_id"`
}

// PublishSummaryJobMessage is the event-bus payload that hands the
// accepted job to the background worker.
type PublishSummaryJobMessage struct {
	MeetingId string `json:"meeting_id"`
}

type SummaryStatusResponse struct {
	MeetingId      string          `json:"meeting_id"`
	MeetingName    string          `json:"meetingName,omitempty"`
	Status         string          `json:"status"`
	Error          string          `json:"error,omitempty"`
	Result         json.RawMessage `json:"result,omitempty"`
	ChunkCount     int             `json:"chunk_count"`
	ProcessingTime float64         `json:"processing_time"`
	StartTime      string          `json:"start_time,omitempty"`
	EndTime        string          `json:"end_time,omitempty"`
}
