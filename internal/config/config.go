// Package config loads runtime configuration for the activities daemon.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config captures runtime configuration values.
type Config struct {
	HTTPAddress     string        `env:"ACTIVITIES_HTTP_ADDR" envDefault:":8000"`
	SeedFile        string        `env:"ACTIVITIES_SEED_FILE"`
	EnforceCapacity bool          `env:"ACTIVITIES_ENFORCE_CAPACITY" envDefault:"false"`
	LogLevel        string        `env:"ACTIVITIES_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"ACTIVITIES_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"ACTIVITIES_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigin      string        `env:"ACTIVITIES_CORS_ORIGIN" envDefault:"*"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("ACTIVITIES_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}
