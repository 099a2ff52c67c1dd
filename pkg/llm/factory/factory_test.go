package factory

import "testing"

func TestIsSupported(t *testing.T) {
	for _, p := range []string{"ollama", "anthropic", "claude", "openai", "groq"} {
		if !IsSupported(p) {
			t.Errorf("IsSupported(%q) = false", p)
		}
	}
	for _, p := range []string{"", "bedrock", "OLLAMA", "gemini"} {
		if IsSupported(p) {
			t.Errorf("IsSupported(%q) = true", p)
		}
	}
}

func TestRequiresAPIKey(t *testing.T) {
	if RequiresAPIKey("ollama") {
		t.Error("ollama should not require an API key")
	}
	for _, p := range []string{"anthropic", "claude", "openai", "groq"} {
		if !RequiresAPIKey(p) {
			t.Errorf("RequiresAPIKey(%q) = false", p)
		}
	}
	if RequiresAPIKey("bedrock") {
		t.Error("unsupported provider should not report a key requirement")
	}
}

func TestNewLLMProviderValidation(t *testing.T) {
	if _, err := NewLLMProvider("bedrock", "model", "", ""); err == nil {
		t.Error("expected error for unsupported provider")
	}
	for _, p := range []string{"anthropic", "openai", "groq"} {
		if _, err := NewLLMProvider(p, "model", "", ""); err == nil {
			t.Errorf("%s without API key: expected error", p)
		}
	}
	if _, err := NewLLMProvider("ollama", "llama3", "", ""); err != nil {
		t.Errorf("ollama should not need a key: %v", err)
	}
}
