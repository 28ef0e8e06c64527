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
	Stores   StoreConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI     string
	QueryTopic string // Query audit topic
}

type AIConfig struct {
	EmbeddingModel      string // e.g. "text-embedding-3-small"
	EmbeddingDimensions int
	LLMProvider         string // "openai"
	LLMModel            string // e.g. "gpt-4o"
	OpenAIBaseURL       string // override for OpenAI-compatible gateways
}

type StoreConfig struct {
	AppStoreLookupURL string
	PlayStoreURL      string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DATABASE_URL", ""),
		},
		Keys: APIKeys{
			OpenAI:     getEnv("OPENAI_API_KEY", ""),
			QueryTopic: getEnv("QUERY_AUDIT_TOPIC_NAME", "QUERY_COMPLETED"),
		},
		Ai: AIConfig{
			EmbeddingModel:      getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDimensions: getEnvAsInt("EMBEDDING_DIMENSIONS", 1536),
			LLMProvider:         getEnv("LLM_PROVIDER", "openai"),
			LLMModel:            getEnv("LLM_MODEL", "gpt-4o"),
			OpenAIBaseURL:       getEnv("OPENAI_BASE_URL", ""),
		},
		Stores: StoreConfig{
			AppStoreLookupURL: getEnv("APP_STORE_LOOKUP_URL", "https://itunes.apple.com/lookup?id=677420559"),
			PlayStoreURL:      getEnv("PLAY_STORE_URL", "https://play.google.com/store/apps/details?id=com.ifs.banking.fiid1454&hl=en&gl=US"),
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
