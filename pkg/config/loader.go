package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParseFailed wraps failures while parsing environment variables into a
// configuration struct.
var ErrParseFailed = errors.New("failed to parse environment variables")

var loadDotEnv sync.Once

// Load populates a configuration struct of type T from environment
// variables. A .env file in the working directory is loaded once per process
// if present; a missing file is not an error.
//
//	type SecurityConfig struct {
//	    RateLimit  int           `env:"LISTKIT_RATE_LIMIT" envDefault:"10"`
//	    RateWindow time.Duration `env:"LISTKIT_RATE_WINDOW" envDefault:"60s"`
//	}
//
//	cfg, err := config.Load[SecurityConfig]()
func Load[T any]() (T, error) {
	loadDotEnv.Do(func() {
		_ = godotenv.Load()
	})

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return cfg, nil
}

// MustLoad is Load for configuration the process cannot start without;
// it panics on failure.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return cfg
}
