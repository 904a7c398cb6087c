package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration the application reads at startup.
type Config struct {
	ServerPort      int
	AllowedOrigins  []string
	DefaultCurrency string
	DefaultPageSize int
	MaxPageSize     int
	LogLevel        slog.Level
}

// Load reads configuration from environment variables. A .env file is loaded
// first if present; its absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	defaultPageSize, err := intEnv("DEFAULT_PAGE_SIZE", 10)
	if err != nil {
		return nil, err
	}
	if defaultPageSize <= 0 {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE must be positive, got %d", defaultPageSize)
	}

	maxPageSize, err := intEnv("MAX_PAGE_SIZE", 50)
	if err != nil {
		return nil, err
	}
	if maxPageSize < defaultPageSize {
		return nil, fmt.Errorf("MAX_PAGE_SIZE (%d) must not be below DEFAULT_PAGE_SIZE (%d)", maxPageSize, defaultPageSize)
	}

	level, err := parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:      port,
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "USD"),
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		LogLevel:        level,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", raw)
	}
}
