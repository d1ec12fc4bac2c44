package config

import (
	"os"
	"testing"
)

func unsetenv(t *testing.T, key string) {
	t.Helper()
	if v, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, v) })
		os.Unsetenv(key)
	}
}

func TestLoad_DefaultsWithoutEnvFile(t *testing.T) {
	// No .env exists in this package directory; Load must come back
	// quietly with the defaults.
	for _, key := range []string{"PORT", "LOG_LEVEL", "BASE_URL", "GEMINI_MODEL"} {
		unsetenv(t, key)
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.GeminiModel != "gemini-2.5-flash-lite" {
		t.Errorf("model = %q", cfg.GeminiModel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("model = %q", cfg.GeminiModel)
	}
}

func TestLoad_ReadDSNFallsBackToWrite(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://rw@localhost/kasku")
	t.Setenv("DATABASE_READ_URL", "")

	cfg := Load()

	if cfg.DatabaseReadURL != cfg.DatabaseURL {
		t.Errorf("read dsn = %q, want fallback to %q", cfg.DatabaseReadURL, cfg.DatabaseURL)
	}
}

func TestLoad_SeparateReadDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://rw@localhost/kasku")
	t.Setenv("DATABASE_READ_URL", "postgres://ro@localhost/kasku")

	cfg := Load()

	if cfg.DatabaseReadURL != "postgres://ro@localhost/kasku" {
		t.Errorf("read dsn = %q", cfg.DatabaseReadURL)
	}
}
