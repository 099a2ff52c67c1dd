package dto

type SaveModelConfigRequest struct {
	Provider     string `json:"provider" validate:"required"`
	Model        string `json:"model" validate:"required"`
	WhisperModel string `json:"whisperModel"`
}

type ModelConfigResponse struct {
	Provider     string `json:"provider"`
	Model        string `json:"model"`
	WhisperModel string `json:"whisperModel,omitempty"`
}

type SaveApiKeyRequest struct {
	Provider string `json:"provider" validate:"required"`
	ApiKey   string `json:"api_key" validate:"required"`
}

type SaveTranscriptConfigRequest struct {
	Provider string `json:"provider" validate:"required"`
	Model    string `json:"model" validate:"required"`
	ApiKey   string `json:"api_key"`
}

type TranscriptConfigResponse struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
