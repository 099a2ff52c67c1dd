package contract

import (
	"context"

	"meeting-minutes-be/internal/entity"

	"github.com/google/uuid"
)

type MeetingRepository interface {
	Upsert(ctx context.Context, meeting *entity.Meeting) error
	UpdateTitle(ctx context.Context, meetingId, title string) error
	FindById(ctx context.Context, meetingId string) (*entity.Meeting, error)
	FindAll(ctx context.Context) ([]*entity.Meeting, error)
	Delete(ctx context.Context, meetingId string) error
}

type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entity.Transcript) error
	FindByMeetingId(ctx context.Context, meetingId string) ([]*entity.Transcript, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByMeetingId(ctx context.Context, meetingId string) error
}
