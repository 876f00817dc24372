package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Environment    string
	ServerPort     string
	APIBaseURL     string
	RequestTimeout time.Duration
	SessionCookie  string
	SessionTTL     time.Duration
}

func Load() (*Config, error) {
	return &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("PORT", "8080"),
		APIBaseURL:     getEnv("EXAM_API_BASE_URL", "https://localhost:7013/api"),
		RequestTimeout: getDuration("EXAM_API_TIMEOUT_SECONDS", 60*time.Second),
		SessionCookie:  getEnv("SESSION_COOKIE", "examgen_session"),
		SessionTTL:     getDuration("SESSION_TTL_SECONDS", 24*time.Hour),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
