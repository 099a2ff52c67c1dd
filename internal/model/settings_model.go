package model

// ModelConfig is a single-row table ("default" id) holding the active
// summarization model and the stored API keys.
type ModelConfig struct {
	Id              string `gorm:"type:varchar(64);primaryKey"`
	Provider        string `gorm:"type:varchar(64);not null"`
	Model           string `gorm:"type:varchar(128);not null"`
	WhisperModel    string `gorm:"type:varchar(128)"`
	AnthropicApiKey string `gorm:"type:text;column:anthropic_api_key"`
	OpenaiApiKey    string `gorm:"type:text;column:openai_api_key"`
	GroqApiKey      string `gorm:"type:text;column:groq_api_key"`
	OllamaApiKey    string `gorm:"type:text;column:ollama_api_key"`
}

func (ModelConfig) TableName() string {
	return "settings"
}

type TranscriptConfig struct {
	Id       string `gorm:"type:varchar(64);primaryKey"`
	Provider string `gorm:"type:varchar(64);not null"`
	Model    string `gorm:"type:varchar(128);not null"`
	ApiKey   string `gorm:"type:text;column:api_key"`
}

func (TranscriptConfig) TableName() string {
	return "transcript_settings"
}
