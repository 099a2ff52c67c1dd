package contract

import (
	"context"

	"meeting-minutes-be/internal/entity"
)

type SummaryRequestRepository interface {
	Upsert(ctx context.Context, request *entity.SummaryRequest) error
	FindByMeetingId(ctx context.Context, meetingId string) (*entity.SummaryRequest, error)
	DeleteByMeetingId(ctx context.Context, meetingId string) error
}
