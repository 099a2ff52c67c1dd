package contract

import (
	"context"

	"meeting-minutes-be/internal/entity"
)

type ISettingsRepository interface {
	GetModelConfig(ctx context.Context) (*entity.ModelConfig, error)
	SaveModelConfig(ctx context.Context, config *entity.ModelConfig) error
	GetTranscriptConfig(ctx context.Context) (*entity.TranscriptConfig, error)
	SaveTranscriptConfig(ctx context.Context, config *entity.TranscriptConfig) error
}
