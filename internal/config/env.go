package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides understood by slidecast. Flags take
// precedence over every field.
type Env struct {
	LogLevel   string `env:"SLIDECAST_LOG_LEVEL"`
	LogFile    string `env:"SLIDECAST_LOG_FILE"`
	Deck       string `env:"SLIDECAST_DECK"`
	RemoteAddr string `env:"SLIDECAST_REMOTE_ADDR"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
