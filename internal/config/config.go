package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Summary  SummaryConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	Anthropic string
	OpenAI    string
	Groq      string
}

type AIConfig struct {
	Provider      string // "ollama", "anthropic", "openai", "groq"
	Model         string // e.g. "llama3", "claude-sonnet-4-20250514"
	OllamaBaseURL string
}

type SummaryConfig struct {
	TopicName      string
	ChunkSize      int
	Overlap        int
	MaxAttempts    int
	Workers        int
	CallTimeoutSec int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5167"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			// Must stay a concrete origin: AllowCredentials is on, and
			// fiber's cors middleware refuses a credentialed wildcard.
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			Anthropic: getEnv("ANTHROPIC_API_KEY", ""),
			OpenAI:    getEnv("OPENAI_API_KEY", ""),
			Groq:      getEnv("GROQ_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "ollama"),
			Model:         getEnv("LLM_MODEL", "llama3"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Summary: SummaryConfig{
			TopicName:      getEnv("SUMMARY_JOB_TOPIC_NAME", "PROCESS_TRANSCRIPT"),
			ChunkSize:      getEnvAsInt("SUMMARY_CHUNK_SIZE", 5000),
			Overlap:        getEnvAsInt("SUMMARY_CHUNK_OVERLAP", 1000),
			MaxAttempts:    getEnvAsInt("SUMMARY_MAX_ATTEMPTS", 3),
			Workers:        getEnvAsInt("SUMMARY_WORKERS", 2),
			CallTimeoutSec: getEnvAsInt("SUMMARY_CALL_TIMEOUT_SEC", 120),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
