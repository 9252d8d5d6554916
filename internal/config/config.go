package config

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// DevJWTSecret is the development fallback signing key. A production
// deployment must provide JWT_SECRET explicitly; Load refuses to start
// otherwise.
const DevJWTSecret = "your_secret_key"

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" {
		if cfg.Environment == "production" {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = DevJWTSecret
	}
	return &cfg, nil
}
