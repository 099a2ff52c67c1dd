package implementation

import (
	"context"
	"errors"

	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/mapper"
	"meeting-minutes-be/internal/model"
	"meeting-minutes-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SummaryRequestRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SummaryRequestMapper
}

func NewSummaryRequestRepository(db *gorm.DB) contract.SummaryRequestRepository {
	return &SummaryRequestRepositoryImpl{
		db:     db,
		mapper: mapper.NewSummaryRequestMapper(),
	}
}

func (r *SummaryRequestRepositoryImpl) Upsert(ctx context.Context, request *entity.SummaryRequest) error {
	m := r.mapper.ToModel(request)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "meeting_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"provider", "model", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(m)
	return nil
}

func (r *SummaryRequestRepositoryImpl) FindByMeetingId(ctx context.Context, meetingId string) (*entity.SummaryRequest, error) {
	var m model.SummaryRequest
	err := r.db.WithContext(ctx).Where("meeting_id = ?", meetingId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SummaryRequestRepositoryImpl) DeleteByMeetingId(ctx context.Context, meetingId string) error {
	return r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingId).
		Delete(&model.SummaryRequest{}).Error
}
