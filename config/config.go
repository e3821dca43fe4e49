package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime settings for the price core.
type Config struct {
	// Seed for the default uniform source. 0 derives a seed from the clock,
	// so every run fluctuates differently; any other value makes the
	// synthesized series fully reproducible.
	Seed int64 `envconfig:"SOKO_SEED" default:"0"`
}

// Load reads configuration from the environment. A .env file is applied
// first when present; a missing file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}
