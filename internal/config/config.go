// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Server holds the settings for cmd/server. Flags may override Port and
// HostKey after parsing.
type Server struct {
	Port          int    `env:"GRIDSTASH_PORT" envDefault:"2222"`
	HostKey       string `env:"GRIDSTASH_HOST_KEY" envDefault:"server_host_key"`
	Rows          int    `env:"GRIDSTASH_ROWS" envDefault:"5"`
	Cols          int    `env:"GRIDSTASH_COLS" envDefault:"12"`
	ArtifactSlots int    `env:"GRIDSTASH_ARTIFACT_SLOTS" envDefault:"4"`
	StarterLoot   int    `env:"GRIDSTASH_STARTER_LOOT" envDefault:"6"`
	// Seed 0 means seed from the clock.
	Seed     int64  `env:"GRIDSTASH_SEED" envDefault:"0"`
	LogLevel string `env:"GRIDSTASH_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the server settings.
func Load() (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return Server{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate rejects settings no inventory can be built from.
func (s Server) Validate() error {
	var errs []error
	if s.Port <= 0 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", s.Port))
	}
	if s.Rows <= 0 || s.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid %dx%d must be positive", s.Rows, s.Cols))
	}
	if s.ArtifactSlots <= 0 {
		errs = append(errs, fmt.Errorf("artifact slots %d must be positive", s.ArtifactSlots))
	}
	if s.StarterLoot < 0 {
		errs = append(errs, fmt.Errorf("starter loot %d must not be negative", s.StarterLoot))
	}
	if _, err := s.Level(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (s Server) Level() (slog.Level, error) {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s.LogLevel)
}
