package entity

// ModelConfig is the persisted summarization model selection, one row
// total. API keys live alongside so the UI can manage them, with env
// vars as fallback.
type ModelConfig struct {
	Id              string
	Provider        string
	Model           string
	WhisperModel    string
	AnthropicApiKey string
	OpenaiApiKey    string
	GroqApiKey      string
	OllamaApiKey    string
}

// TranscriptConfig mirrors ModelConfig for the transcription engine.
type TranscriptConfig struct {
	Id       string
	Provider string
	Model    string
	ApiKey   string
}
