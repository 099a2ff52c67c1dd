package implementation

import (
	"context"
	"errors"

	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/mapper"
	"meeting-minutes-be/internal/model"
	"meeting-minutes-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MeetingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MeetingMapper
}

func NewMeetingRepository(db *gorm.DB) contract.MeetingRepository {
	return &MeetingRepositoryImpl{
		db:     db,
		mapper: mapper.NewMeetingMapper(),
	}
}

func (r *MeetingRepositoryImpl) Upsert(ctx context.Context, meeting *entity.Meeting) error {
	m := r.mapper.ToModel(meeting)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*meeting = *r.mapper.ToEntity(m)
	return nil
}

func (r *MeetingRepositoryImpl) UpdateTitle(ctx context.Context, meetingId, title string) error {
	return r.db.WithContext(ctx).Model(&model.Meeting{}).
		Where("id = ?", meetingId).
		Update("title", title).Error
}

func (r *MeetingRepositoryImpl) FindById(ctx context.Context, meetingId string) (*entity.Meeting, error) {
	var m model.Meeting
	err := r.db.WithContext(ctx).Where("id = ?", meetingId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MeetingRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Meeting, error) {
	var models []*model.Meeting
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MeetingRepositoryImpl) Delete(ctx context.Context, meetingId string) error {
	return r.db.WithContext(ctx).Where("id = ?", meetingId).Delete(&model.Meeting{}).Error
}

type TranscriptRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TranscriptMapper
}

func NewTranscriptRepository(db *gorm.DB) contract.TranscriptRepository {
	return &TranscriptRepositoryImpl{
		db:     db,
		mapper: mapper.NewTranscriptMapper(),
	}
}

func (r *TranscriptRepositoryImpl) Create(ctx context.Context, transcript *entity.Transcript) error {
	m := r.mapper.ToModel(transcript)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*transcript = *r.mapper.ToEntity(m)
	return nil
}

func (r *TranscriptRepositoryImpl) FindByMeetingId(ctx context.Context, meetingId string) ([]*entity.Transcript, error) {
	var models []*model.Transcript
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TranscriptRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Transcript{}, id).Error
}

func (r *TranscriptRepositoryImpl) DeleteAllByMeetingId(ctx context.Context, meetingId string) error {
	return r.db.WithContext(ctx).Where("meeting_id = ?", meetingId).Delete(&model.Transcript{}).Error
}
