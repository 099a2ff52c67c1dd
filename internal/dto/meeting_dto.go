package dto

type SaveTranscriptSegment struct {
	Text      string `json:"text" validate:"required"`
	Timestamp string `json:"timestamp"`
}

type SaveTranscriptRequest struct {
	MeetingId    string                  `json:"meeting_id" validate:"required"`
	MeetingTitle string                  `json:"meeting_title"`
	Transcripts  []SaveTranscriptSegment `json:"transcripts" validate:"required,min=1,dive"`
}

type MeetingResponse struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type TranscriptResponse struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp,omitempty"`
}

type MeetingDetailResponse struct {
	Meeting     MeetingResponse      `json:"meeting"`
	Transcripts []TranscriptResponse `json:"transcripts"`
}

type UpdateMeetingTitleRequest struct {
	Title string `json:"title" validate:"required"`
}
