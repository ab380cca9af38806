package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Azure AzureConfig
	Ai    AIConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	DataFilePath       string
}

type AzureConfig struct {
	Endpoint            string
	ApiKey              string
	ApiVersion          string
	ChatDeployment      string
	EmbeddingDeployment string
}

type AIConfig struct {
	LLMProvider       string // "azure" or "ollama"
	EmbeddingProvider string // "azure" or "ollama"
	OllamaBaseURL     string
	OllamaChatModel   string
	OllamaEmbedModel  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			DataFilePath:       getEnv("AIRPORT_DATA_FILE", "data/airport_data.json"),
		},
		Azure: AzureConfig{
			Endpoint:            getEnv("AZURE_OPENAI_ENDPOINT", ""),
			ApiKey:              getEnv("AZURE_OPENAI_KEY", ""),
			ApiVersion:          getEnv("AZURE_OPENAI_API_VERSION", "2023-12-01-preview"),
			ChatDeployment:      getEnv("AZURE_CHAT_DEPLOYMENT", ""),
			EmbeddingDeployment: getEnv("AZURE_EMBEDDING_DEPLOYMENT", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "azure"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "azure"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaChatModel:   getEnv("OLLAMA_CHAT_MODEL", "llama3"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
