package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meeting-minutes-be/internal/config"
	"meeting-minutes-be/internal/constant"
	"meeting-minutes-be/internal/dto"
	"meeting-minutes-be/internal/entity"
	"meeting-minutes-be/internal/pkg/logger"
	"meeting-minutes-be/internal/repository/unitofwork"
	"meeting-minutes-be/pkg/llm/factory"

	gocache "github.com/patrickmn/go-cache"
)

type IConfigService interface {
	GetModelConfig(ctx context.Context) (*dto.ModelConfigResponse, error)
	SaveModelConfig(ctx context.Context, req *dto.SaveModelConfigRequest) error
	SaveApiKey(ctx context.Context, req *dto.SaveApiKeyRequest) error
	GetTranscriptConfig(ctx context.Context) (*dto.TranscriptConfigResponse, error)
	SaveTranscriptConfig(ctx context.Context, req *dto.SaveTranscriptConfigRequest) error

	// ResolveApiKey returns the stored key for the provider, falling
	// back to the environment when settings carry none.
	ResolveApiKey(ctx context.Context, provider string) (string, error)
	OllamaBaseURL() string
}

const modelConfigCacheKey = "model_config"

type configService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
	sysLogger  logger.ILogger

	// Settings are read on every job submit; cache them briefly.
	cache *gocache.Cache
}

func NewConfigService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, sysLogger logger.ILogger) IConfigService {
	return &configService{
		uowFactory: uowFactory,
		cfg:        cfg,
		sysLogger:  sysLogger,
		cache:      gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *configService) loadModelConfig(ctx context.Context) (*entity.ModelConfig, error) {
	if cached, found := s.cache.Get(modelConfigCacheKey); found {
		return cached.(*entity.ModelConfig), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cfg, err := uow.SettingsRepository().GetModelConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		// First boot: seed from environment defaults
		cfg = &entity.ModelConfig{
			Provider: s.cfg.Ai.Provider,
			Model:    s.cfg.Ai.Model,
		}
	}

	s.cache.Set(modelConfigCacheKey, cfg, gocache.DefaultExpiration)
	return cfg, nil
}

func (s *configService) GetModelConfig(ctx context.Context) (*dto.ModelConfigResponse, error) {
	cfg, err := s.loadModelConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ModelConfigResponse{
		Provider:     cfg.Provider,
		Model:        cfg.Model,
		WhisperModel: cfg.WhisperModel,
	}, nil
}

func (s *configService) SaveModelConfig(ctx context.Context, req *dto.SaveModelConfigRequest) error {
	if !factory.IsSupported(req.Provider) {
		return fmt.Errorf("unsupported provider: %s", req.Provider)
	}

	current, err := s.loadModelConfig(ctx)
	if err != nil {
		return err
	}

	updated := *current
	updated.Provider = req.Provider
	updated.Model = req.Model
	if req.WhisperModel != "" {
		updated.WhisperModel = req.WhisperModel
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SettingsRepository().SaveModelConfig(ctx, &updated); err != nil {
		return err
	}
	s.cache.Delete(modelConfigCacheKey)

	s.sysLogger.Info(constant.ModuleConfigService, "Model config updated", map[string]interface{}{
		"provider": req.Provider,
		"model":    req.Model,
	})
	return nil
}

func (s *configService) SaveApiKey(ctx context.Context, req *dto.SaveApiKeyRequest) error {
	current, err := s.loadModelConfig(ctx)
	if err != nil {
		return err
	}

	updated := *current
	switch strings.ToLower(req.Provider) {
	case "anthropic", "claude":
		updated.AnthropicApiKey = req.ApiKey
	case "openai":
		updated.OpenaiApiKey = req.ApiKey
	case "groq":
		updated.GroqApiKey = req.ApiKey
	case "ollama":
		updated.OllamaApiKey = req.ApiKey
	default:
		return fmt.Errorf("unsupported provider: %s", req.Provider)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SettingsRepository().SaveModelConfig(ctx, &updated); err != nil {
		return err
	}
	s.cache.Delete(modelConfigCacheKey)
	return nil
}

func (s *configService) GetTranscriptConfig(ctx context.Context) (*dto.TranscriptConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cfg, err := uow.SettingsRepository().GetTranscriptConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}
	return &dto.TranscriptConfigResponse{
		Provider: cfg.Provider,
		Model:    cfg.Model,
	}, nil
}

func (s *configService) SaveTranscriptConfig(ctx context.Context, req *dto.SaveTranscriptConfigRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SettingsRepository().SaveTranscriptConfig(ctx, &entity.TranscriptConfig{
		Provider: req.Provider,
		Model:    req.Model,
		ApiKey:   req.ApiKey,
	})
}

func (s *configService) ResolveApiKey(ctx context.Context, provider string) (string, error) {
	stored, err := s.loadModelConfig(ctx)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(provider) {
	case "anthropic", "claude":
		if stored.AnthropicApiKey != "" {
			return stored.AnthropicApiKey, nil
		}
		return s.cfg.Keys.Anthropic, nil
	case "openai":
		if stored.OpenaiApiKey != "" {
			return stored.OpenaiApiKey, nil
		}
		return s.cfg.Keys.OpenAI, nil
	case "groq":
		if stored.GroqApiKey != "" {
			return stored.GroqApiKey, nil
		}
		return s.cfg.Keys.Groq, nil
	case "ollama":
		// Local inference, no key needed
		return stored.OllamaApiKey, nil
	default:
		return "", fmt.Errorf("unsupported provider: %s", provider)
	}
}

func (s *configService) OllamaBaseURL() string {
	return s.cfg.Ai.OllamaBaseURL
}
