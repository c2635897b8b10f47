package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	ServerPort   string
	DatabaseURL  string
	RedisURL     string
	ForceHTTPS   bool
	RateLimitRPS int
}

func LoadConfig() (*Config, error) {
	forceHTTPS, err := strconv.ParseBool(getEnv("FORCE_HTTPS", "false"))
	if err != nil {
		return nil, errors.New("invalid FORCE_HTTPS format")
	}

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT_RPS", "0"))
	if err != nil || rateLimit < 0 {
		return nil, errors.New("invalid RATE_LIMIT_RPS format")
	}

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		ForceHTTPS:   forceHTTPS,
		RateLimitRPS: rateLimit,
	}

	// Validate required fields
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	return cfg, nil
}

// Helper: get env with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
