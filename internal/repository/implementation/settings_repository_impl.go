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

const defaultSettingsId = "default"

type SettingsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.ISettingsRepository {
	return &SettingsRepositoryImpl{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *SettingsRepositoryImpl) GetModelConfig(ctx context.Context) (*entity.ModelConfig, error) {
	var m model.ModelConfig
	err := r.db.WithContext(ctx).Where("id = ?", defaultSettingsId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToModelConfigEntity(&m), nil
}

func (r *SettingsRepositoryImpl) SaveModelConfig(ctx context.Context, config *entity.ModelConfig) error {
	m := r.mapper.ToModelConfigModel(config)
	m.Id = defaultSettingsId
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"provider", "model", "whisper_model",
			"anthropic_api_key", "openai_api_key", "groq_api_key", "ollama_api_key",
		}),
	}).Create(m).Error
}

func (r *SettingsRepositoryImpl) GetTranscriptConfig(ctx context.Context) (*entity.TranscriptConfig, error) {
	var m model.TranscriptConfig
	err := r.db.WithContext(ctx).Where("id = ?", defaultSettingsId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToTranscriptConfigEntity(&m), nil
}

func (r *SettingsRepositoryImpl) SaveTranscriptConfig(ctx context.Context, config *entity.TranscriptConfig) error {
	m := r.mapper.ToTranscriptConfigModel(config)
	m.Id = defaultSettingsId
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"provider", "model", "api_key"}),
	}).Create(m).Error
}
