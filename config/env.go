// Package config loads runtime settings from the environment and the
// YAML manifest that declares users, action bindings, and assets.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is process-level runtime configuration.
type Env struct {
	// TickRate is the fixed update rate in ticks per second.
	TickRate int `env:"STAGEKIT_TICK_RATE" envDefault:"60"`

	// Mute disables the audio backend entirely.
	Mute bool `env:"STAGEKIT_MUTE" envDefault:"false"`

	// AssetDir is prepended to every relative asset path in the
	// manifest.
	AssetDir string `env:"STAGEKIT_ASSET_DIR" envDefault:"assets"`

	// LogLevel selects the slog level: debug, info, warn, error.
	LogLevel string `env:"STAGEKIT_LOG_LEVEL" envDefault:"info"`
}

// FromEnv parses runtime configuration from process environment
// variables.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	if e.TickRate <= 0 {
		return Env{}, fmt.Errorf("tick rate must be positive, got %d", e.TickRate)
	}
	return e, nil
}
