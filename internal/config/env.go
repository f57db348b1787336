package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI settings read from the environment.
type Config struct {
	Width      int           `env:"WAREHOUSE_WIDTH" envDefault:"10"`
	Height     int           `env:"WAREHOUSE_HEIGHT" envDefault:"10"`
	Render     bool          `env:"WAREHOUSE_RENDER" envDefault:"false"`
	FrameDelay time.Duration `env:"WAREHOUSE_FRAME_DELAY" envDefault:"200ms"`
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return Config{}, fmt.Errorf("invalid warehouse size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
