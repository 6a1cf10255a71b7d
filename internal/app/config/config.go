// Package config loads the process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the whole configuration surface of the server. It is parsed once
// at startup and handed to the constructors that need its values; nothing
// reads the environment after that.
type Config struct {
	// DatabaseURL is the Postgres connection string.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// RedisAddr enables the track-list cache when set (host:port).
	RedisAddr string `env:"REDIS_ADDR"`

	// RedisPassword authenticates the optional Redis connection.
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Port is the TCP port the server listens on.
	Port int `env:"PORT" envDefault:"3000"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
