package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, loaded once at startup and
// passed down explicitly.
type Config struct {
	Port     string
	LogLevel string

	// BaseURL is this service's own address, used for the gateway's
	// self-referential call into the extraction endpoint.
	BaseURL string

	GoogleAPIKey string
	GeminiModel  string

	TelegramBotToken      string
	TelegramWebhookSecret string

	// DatabaseURL is the elevated DSN used for writes. DatabaseReadURL is
	// the restricted DSN the dashboard reads through; it falls back to
	// DatabaseURL when unset.
	DatabaseURL     string
	DatabaseReadURL string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present; its absence is the
// normal production case and is not reported.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),

		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),

		TelegramBotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramWebhookSecret: getEnv("TELEGRAM_WEBHOOK_SECRET", ""),

		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DatabaseReadURL: getEnv("DATABASE_READ_URL", ""),
	}
	if cfg.DatabaseReadURL == "" {
		cfg.DatabaseReadURL = cfg.DatabaseURL
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
