package unitofwork

import (
	"context"
	"fmt"

	"meeting-minutes-be/internal/repository/contract"
	"meeting-minutes-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) SummaryJobRepository() contract.SummaryJobRepository {
	return implementation.NewSummaryJobRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SummaryRequestRepository() contract.SummaryRequestRepository {
	return implementation.NewSummaryRequestRepository(u.getDB())
}

func (u *UnitOfWorkImpl) MeetingRepository() contract.MeetingRepository {
	return implementation.NewMeetingRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TranscriptRepository() contract.TranscriptRepository {
	return implementation.NewTranscriptRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SettingsRepository() contract.ISettingsRepository {
	return implementation.NewSettingsRepository(u.getDB())
}
