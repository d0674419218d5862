package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	// Server
	Addr        string `env:"ADDR" env-default:":8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// Storage. Empty means the in-memory store.
	RedisURL string `env:"REDIS_URL" env-default:""`

	// Identity
	SessionSecret string `env:"SESSION_SECRET" env-default:"dev-insecure-session-secret-change-in-prod"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.Environment == "production" && cfg.SessionSecret == "dev-insecure-session-secret-change-in-prod" {
		return nil, fmt.Errorf("SESSION_SECRET must be set in production")
	}

	return &cfg, nil
}
