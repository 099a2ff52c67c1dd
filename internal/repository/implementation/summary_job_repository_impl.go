package implementation

import (
	"context"
	"errors"
	"time"

	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/mapper"
	"meeting-minutes-be/internal/model"
	"meeting-minutes-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryJobRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SummaryJobMapper
}

func NewSummaryJobRepository(db *gorm.DB) contract.SummaryJobRepository {
	return &SummaryJobRepositoryImpl{
		db:     db,
		mapper: mapper.NewSummaryJobMapper(),
	}
}

func (r *SummaryJobRepositoryImpl) Upsert(ctx context.Context, job *entity.SummaryJob) error {
	m := r.mapper.ToModel(job)

	// Re-submitting a meeting restarts the job: the conflict branch
	// wipes the previous run's outcome so pollers see a clean PENDING.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "meeting_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":          string(entity.JobStatusPending),
			"error":           "",
			"result":          nil,
			"chunk_count":     0,
			"processing_time": 0,
			"metadata":        datatypes.JSON(m.Metadata),
			"start_time":      m.StartTime,
			"end_time":        nil,
			"updated_at":      time.Now(),
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}

	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *SummaryJobRepositoryImpl) Update(ctx context.Context, meetingId string, update *entity.SummaryJobUpdate) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.SummaryJob
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("meeting_id = ?", meetingId).
			First(&current).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return err
		}

		// Terminal states are sticky within a run. A late worker
		// reporting PROCESSING after a FAILED verdict must not revive
		// the job.
		if entity.JobStatus(current.Status).Terminal() &&
			(update.Status == nil || !update.Status.Terminal()) {
			return nil
		}

		fields := map[string]interface{}{}
		if update.Status != nil {
			fields["status"] = string(*update.Status)
			if update.Status.Terminal() {
				fields["end_time"] = time.Now()
			}
		}
		if update.Error != nil {
			fields["error"] = *update.Error
		}
		if update.Result != nil {
			fields["result"] = datatypes.JSON(update.Result)
		}
		if update.ChunkCount != nil {
			fields["chunk_count"] = *update.ChunkCount
		}
		if update.ProcessingTime != nil {
			fields["processing_time"] = *update.ProcessingTime
		}
		if update.Metadata != nil {
			fields["metadata"] = datatypes.JSON(update.Metadata)
		}
		if len(fields) == 0 {
			return nil
		}

		return tx.Model(&model.SummaryJob{}).
			Where("meeting_id = ?", meetingId).
			Updates(fields).Error
	})
}

func (r *SummaryJobRepositoryImpl) FindByMeetingId(ctx context.Context, meetingId string) (*entity.SummaryJob, error) {
	var m model.SummaryJob
	err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SummaryJobRepositoryImpl) DeleteByMeetingId(ctx context.Context, meetingId string) error {
	return r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingId).
		Delete(&model.SummaryJob{}).Error
}

func (r *SummaryJobRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	// Age is measured from job creation, not last touch: a terminal job
	// created before the cutoff is collectable even if something wrote
	// to it since.
	res := r.db.WithContext(ctx).
		Where("status IN ? AND created_at < ?", []string{
			string(entity.JobStatusCompleted),
			string(entity.JobStatusFailed),
		}, cutoff).
		Delete(&model.SummaryJob{})
	return res.RowsAffected, res.Error
}
