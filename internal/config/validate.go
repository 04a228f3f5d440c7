package config

import (
	"time"

	"github.com/mrz1836/tenets/internal/errors"
)

// Bounds for validated settings.
const (
	minLockTimeout = 100 * time.Millisecond
	maxLockTimeout = time.Minute
	minUIWidth     = 60
	maxUIWidth     = 240
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - game.lock_timeout must be between 100ms and 1m
//   - ui.width must be 0 or between 60 and 240
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateGameConfig(&cfg.Game); err != nil {
		return err
	}

	return validateUIConfig(&cfg.UI)
}

func validateGameConfig(cfg *GameConfig) error {
	if cfg.LockTimeout < minLockTimeout || cfg.LockTimeout > maxLockTimeout {
		return errors.Wrapf(errors.ErrConfigInvalidGame,
			"game.lock_timeout must be between %s and %s, got %s", minLockTimeout, maxLockTimeout, cfg.LockTimeout)
	}
	return nil
}

func validateUIConfig(cfg *UIConfig) error {
	if cfg.Width != 0 && (cfg.Width < minUIWidth || cfg.Width > maxUIWidth) {
		return errors.Wrapf(errors.ErrConfigInvalidUI,
			"ui.width must be 0 or between %d and %d, got %d", minUIWidth, maxUIWidth, cfg.Width)
	}
	return nil
}
