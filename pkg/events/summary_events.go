package events

import "time"

const (
	TypeSummaryCompleted = "SUMMARY_COMPLETED"
	TypeSummaryFailed    = "SUMMARY_FAILED"
)

// NewSummaryCompletedEvent announces a finished summarization run so
// external consumers (desktop app, webhooks) can refresh their view.
func NewSummaryCompletedEvent(meetingId string, chunkCount int, processingTime float64) Event {
	return BaseEvent{
		Type: TypeSummaryCompleted,
		Data: map[string]interface{}{
			"meeting_id":      meetingId,
			"chunk_count":     chunkCount,
			"processing_time": processingTime,
		},
		OccurredAt: time.Now(),
	}
}

func NewSummaryFailedEvent(meetingId string, reason string) Event {
	return BaseEvent{
		Type: TypeSummaryFailed,
		Data: map[string]interface{}{
			"meeting_id": meetingId,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}
