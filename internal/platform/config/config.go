// Package config loads server configuration from the environment so main
// stays lean.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string `env:"SLOTCHECK_ADDR" envDefault:":8080"`
	LogLevel string `env:"SLOTCHECK_LOG_LEVEL" envDefault:"info"`

	// MaxBatchSize caps the number of timestamps accepted per request.
	// A transport-level guard only; the validators themselves accept any
	// batch size.
	MaxBatchSize int `env:"SLOTCHECK_MAX_BATCH_SIZE" envDefault:"10000"`
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
