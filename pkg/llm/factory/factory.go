package factory

import (
	"fmt"

	"meeting-minutes-be/pkg/llm"
	"meeting-minutes-be/pkg/llm/anthropic"
	"meeting-minutes-be/pkg/llm/ollama"
	"meeting-minutes-be/pkg/llm/openai"
)

// Providers recognized by NewLLMProvider. "claude" is kept as an alias
// because the desktop clients submit it.
var supported = map[string]bool{
	"ollama":    true,
	"anthropic": true,
	"claude":    true,
	"openai":    true,
	"groq":      true,
}

// IsSupported lets callers fail fast on submit before any chunk is processed.
func IsSupported(providerType string) bool {
	return supported[providerType]
}

// RequiresAPIKey reports whether the provider needs a credential. Ollama
// is the only local one.
func RequiresAPIKey(providerType string) bool {
	return supported[providerType] && providerType != "ollama"
}

func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "anthropic", "claude":
		if apiKey == "" {
			return nil, fmt.Errorf("anthropic API key is not set")
		}
		return anthropic.NewAnthropicProvider(apiKey, modelName), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai API key is not set")
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	case "groq":
		if apiKey == "" {
			return nil, fmt.Errorf("groq API key is not set")
		}
		return openai.NewCompatibleProvider(apiKey, modelName, openai.GroqBaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
