package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/deccalc/internal/arith"
)

// Env holds the settings overrides read from the process environment.
type Env struct {
	ConfigPath  string `env:"DECCALC_CONFIG"`
	RoundNumber *int   `env:"DECCALC_ROUND_NUMBER"`
	MemoryValue string `env:"DECCALC_MEMORY_VALUE"`
}

// ParseEnv loads the overrides from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply returns base with every override that is set applied to it.
func (e Env) Apply(base Settings) (Settings, error) {
	s := base
	var err error
	if e.RoundNumber != nil {
		if s, err = s.WithRoundNumber(*e.RoundNumber); err != nil {
			return Settings{}, fmt.Errorf("DECCALC_ROUND_NUMBER: %w", err)
		}
	}
	if e.MemoryValue != "" {
		v, err := arith.Parse(e.MemoryValue)
		if err != nil {
			return Settings{}, fmt.Errorf("DECCALC_MEMORY_VALUE: %w", err)
		}
		if s, err = s.WithMemoryValue(v); err != nil {
			return Settings{}, fmt.Errorf("DECCALC_MEMORY_VALUE: %w", err)
		}
	}
	return s, nil
}
