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
	Chat     ChatConfig
	Topics   TopicConfig
}

type AppConfig struct {
	Name               string
	Version            string
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	EnableWebsockets   bool
	OtelEnabled        bool
}

type DatabaseConfig struct {
	Connection string
}

type ChatConfig struct {
	HistoryLimit int
}

type TopicConfig struct {
	ChatExchange   string
	ProductCreated string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Name:               getEnv("APP_NAME", "notably-backend"),
			Version:            getEnv("APP_VERSION", "0.1.0"),
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			EnableWebsockets:   getEnvAsBool("ENABLE_WEBSOCKETS", true),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Chat: ChatConfig{
			HistoryLimit: getEnvAsInt("CHAT_HISTORY_LIMIT", 50),
		},
		Topics: TopicConfig{
			ChatExchange:   getEnv("CHAT_EXCHANGE_TOPIC_NAME", "CHAT_EXCHANGE"),
			ProductCreated: getEnv("PRODUCT_CREATED_TOPIC_NAME", "PRODUCT_CREATED"),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
