package contract

import (
	"context"
	"time"

	"meeting-minutes-be/internal/entity"
)

type SummaryJobRepository interface {
	// Upsert creates the job row or, if one already exists for the
	// meeting, resets it to a fresh PENDING run.
	Upsert(ctx context.Context, job *entity.SummaryJob) error

	// Update applies a partial update. Terminal states are sticky:
	// an update that would move a COMPLETED/FAILED job back to a
	// non-terminal status is dropped silently.
	Update(ctx context.Context, meetingId string, update *entity.SummaryJobUpdate) error

	FindByMeetingId(ctx context.Context, meetingId string) (*entity.SummaryJob, error)
	DeleteByMeetingId(ctx context.Context, meetingId string) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
