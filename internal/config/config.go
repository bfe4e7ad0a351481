package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Embedding engine
	OllamaURL   string
	Model       string
	HTTPTimeout time.Duration

	// Similarity search
	Threshold float64
	Workers   int

	// Logging
	LogLevel slog.Level
}

// Load reads configuration from the environment, overlaying a .env file if
// one is present. Command-line flags take precedence over these values.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		OllamaURL:   envOr("MDBED_OLLAMA_URL", "http://localhost:11434"),
		Model:       envOr("MDBED_MODEL", "nomic-embed-text"),
		HTTPTimeout: envDuration("MDBED_HTTP_TIMEOUT", 120*time.Second),

		Threshold: envFloat("MDBED_THRESHOLD", 0.7),
		Workers:   envInt("MDBED_WORKERS", 4),

		LogLevel: envLevel("MDBED_LOG_LEVEL", slog.LevelInfo),
	}

	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		cfg.Threshold = 0.7
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 120 * time.Second
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envLevel(key string, fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv(key)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return fallback
}
