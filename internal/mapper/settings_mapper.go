package mapper

import (
	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToModelConfigEntity(c *model.ModelConfig) *entity.ModelConfig {
	if c == nil {
		return nil
	}

	return &entity.ModelConfig{
		Id:              c.Id,
		Provider:        c.Provider,
		Model:           c.Model,
		WhisperModel:    c.WhisperModel,
		AnthropicApiKey: c.AnthropicApiKey,
		OpenaiApiKey:    c.OpenaiApiKey,
		GroqApiKey:      c.GroqApiKey,
		OllamaApiKey:    c.OllamaApiKey,
	}
}

func (m *SettingsMapper) ToModelConfigModel(c *entity.ModelConfig) *model.ModelConfig {
	if c == nil {
		return nil
	}

	return &model.ModelConfig{
		Id:              c.Id,
		Provider:        c.Provider,
		Model:           c.Model,
		WhisperModel:    c.WhisperModel,
		AnthropicApiKey: c.AnthropicApiKey,
		OpenaiApiKey:    c.OpenaiApiKey,
		GroqApiKey:      c.GroqApiKey,
		OllamaApiKey:    c.OllamaApiKey,
	}
}

func (m *SettingsMapper) ToTranscriptConfigEntity(c *model.TranscriptConfig) *entity.TranscriptConfig {
	if c == nil {
		return nil
	}

	return &entity.TranscriptConfig{
		Id:       c.Id,
		Provider: c.Provider,
		Model:    c.Model,
		ApiKey:   c.ApiKey,
	}
}

func (m *SettingsMapper) ToTranscriptConfigModel(c *entity.TranscriptConfig) *model.TranscriptConfig {
	if c == nil {
		return nil
	}

	return &model.TranscriptConfig{
		Id:       c.Id,
		Provider: c.Provider,
		Model:    c.Model,
		ApiKey:   c.ApiKey,
	}
}
