package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (after .env is loaded).
type Config struct {
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Secret fixes the secret number instead of drawing one; nil means random.
	Secret *int `env:"GUESS_SECRET"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.LogFormat {
	case "json", "console":
	default:
		return Config{}, fmt.Errorf("parse env: LOG_FORMAT must be json or console, got %q", cfg.LogFormat)
	}
	return cfg, nil
}
