// Package config loads server configuration from environment variables
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/greyvale/sheet-api/internal/errors"
)

// Config holds every tunable the server reads from the environment.
type Config struct {
	HTTPPort      int    `env:"HTTP_PORT" envDefault:"8080"`
	RedisEndpoint string `env:"REDIS_ENDPOINT" envDefault:"localhost:6379"`
	RedisUseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// ConsumeOnEquip switches the equipment registry to remove worn
	// items from the inventory list.
	ConsumeOnEquip bool `env:"CONSUME_ON_EQUIP" envDefault:"false"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &cfg, nil
}
