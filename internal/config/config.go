package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Backend  BackendConfig
	Database DatabaseConfig
	Reveal   RevealConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	StreamLogFilePath  string
	CorsAllowedOrigins string
}

type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type DatabaseConfig struct {
	// Path to the sqlite file backing sessions and the document index.
	// Empty means in-memory stores only (nothing survives a restart).
	Path string
}

type RevealConfig struct {
	ChunkRunes int
	IntervalMs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			StreamLogFilePath:  getEnv("STREAM_LOG_FILE_PATH", "logs/stream.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("RAG_BACKEND_URL", "http://localhost:8000"),
			TimeoutSeconds: getEnvAsInt("RAG_BACKEND_TIMEOUT_SECONDS", 120),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "data/chatdesk.db"),
		},
		Reveal: RevealConfig{
			ChunkRunes: getEnvAsInt("REVEAL_CHUNK_RUNES", 24),
			IntervalMs: getEnvAsInt("REVEAL_INTERVAL_MS", 30),
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
