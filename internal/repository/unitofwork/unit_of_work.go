package unitofwork

import (
	"context"

	"meeting-minutes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SummaryJobRepository() contract.SummaryJobRepository
	SummaryRequestRepository() contract.SummaryRequestRepository
	MeetingRepository() contract.MeetingRepository
	TranscriptRepository() contract.TranscriptRepository
	SettingsRepository() contract.ISettingsRepository
}
