package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds process-level settings read from the environment.
// Command-line flags take precedence over these values.
type Env struct {
	DBPath     string `env:"BRICK_DB"         envDefault:"~/.arcade/brickbreaker.db"`
	Store      string `env:"BRICK_STORE"      envDefault:"sqlite"`
	FPS        int    `env:"BRICK_FPS"        envDefault:"60"`
	SSHAddr    string `env:"BRICK_SSH_ADDR"   envDefault:":23234"`
	ConfigPath string `env:"BRICK_CONFIG"`
	Difficulty string `env:"BRICK_DIFFICULTY" envDefault:"normal"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv returns the environment settings with defaults applied.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
