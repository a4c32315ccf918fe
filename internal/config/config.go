package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// LogFile, when set, receives a copy of the log with size based rotation.
	LogFile      string
	LogMaxSizeMB int

	// RedisURL enables the reply cache; empty disables it.
	RedisURL      string
	ReplyCacheTTL time.Duration

	WebhookPath        string
	SkillName          string
	RepeatConfirmation string
}

// Load reads the configuration from the environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
		LogFile:            getEnv("LOG_FILE", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		WebhookPath:        getEnv("WEBHOOK_PATH", "/v1/alice"),
		SkillName:          getEnv("SKILL_NAME", "Математический мозговой тренажёр"),
		RepeatConfirmation: strings.ToLower(getEnv("REPEAT_CONFIRMATION", "повторим")),
	}

	var err error
	if cfg.LogMaxSizeMB, err = strconv.Atoi(getEnv("LOG_MAX_SIZE_MB", "50")); err != nil || cfg.LogMaxSizeMB <= 0 {
		return nil, fmt.Errorf("invalid LOG_MAX_SIZE_MB %q", os.Getenv("LOG_MAX_SIZE_MB"))
	}
	if cfg.ReplyCacheTTL, err = time.ParseDuration(getEnv("REPLY_CACHE_TTL", "2m")); err != nil {
		return nil, fmt.Errorf("invalid REPLY_CACHE_TTL: %w", err)
	}
	if cfg.ReplyCacheTTL <= 0 {
		return nil, fmt.Errorf("REPLY_CACHE_TTL must be positive, got %s", cfg.ReplyCacheTTL)
	}
	if !strings.HasPrefix(cfg.WebhookPath, "/") {
		return nil, fmt.Errorf("WEBHOOK_PATH must start with /, got %q", cfg.WebhookPath)
	}
	return cfg, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
