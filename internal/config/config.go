// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"neongrid/internal/model"
)

// Config holds all startup settings. Defaults describe a 100x100x100 world
// with the explorer starting at the center.
type Config struct {
	WorldSize int `env:"NEONGRID_WORLD_SIZE" envDefault:"100"`
	StartX    int `env:"NEONGRID_START_X" envDefault:"50"`
	StartY    int `env:"NEONGRID_START_Y" envDefault:"50"`
	StartZ    int `env:"NEONGRID_START_Z" envDefault:"50"`

	ContextRadius       int `env:"NEONGRID_CONTEXT_RADIUS" envDefault:"1"`
	ContextMaxNeighbors int `env:"NEONGRID_CONTEXT_MAX_NEIGHBORS" envDefault:"26"`
	ContextCharBudget   int `env:"NEONGRID_CONTEXT_BUDGET" envDefault:"2000"`

	MaxRetries int           `env:"NEONGRID_MAX_RETRIES" envDefault:"3"`
	RetryDelay time.Duration `env:"NEONGRID_RETRY_DELAY" envDefault:"1s"`

	Provider    string  `env:"NEONGRID_PROVIDER" envDefault:"openai"`
	Model       string  `env:"NEONGRID_MODEL" envDefault:"gpt-3.5-turbo"`
	BaseURL     string  `env:"NEONGRID_BASE_URL"`
	APIKey      string  `env:"OPENAI_API_KEY"`
	MaxTokens   int     `env:"NEONGRID_MAX_TOKENS" envDefault:"500"`
	Temperature float64 `env:"NEONGRID_TEMPERATURE" envDefault:"0.8"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Start returns the configured starting coordinate.
func (c *Config) Start() model.Coordinate {
	return model.Coordinate{X: c.StartX, Y: c.StartY, Z: c.StartZ}
}

func (c *Config) validate() error {
	if c.WorldSize < 1 {
		return fmt.Errorf("world size must be at least 1, got %d", c.WorldSize)
	}
	for _, axis := range []struct {
		name string
		v    int
	}{{"x", c.StartX}, {"y", c.StartY}, {"z", c.StartZ}} {
		if axis.v < 0 || axis.v >= c.WorldSize {
			return fmt.Errorf("start %s %d is out of bounds [0, %d]", axis.name, axis.v, c.WorldSize-1)
		}
	}
	if c.ContextRadius < 0 {
		return fmt.Errorf("context radius must not be negative, got %d", c.ContextRadius)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1, got %d", c.MaxRetries)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must not be negative, got %s", c.RetryDelay)
	}
	return nil
}
