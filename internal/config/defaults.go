package config

import (
	"github.com/mrz1836/tenets/internal/constants"
)

// DefaultConfig returns a new Config with default values.
// These match the defaults registered on the viper instance.
func DefaultConfig() *Config {
	return &Config{
		Ruleset: RulesetConfig{
			// Empty selects the built-in ruleset.
			Path: "",
		},
		Game: GameConfig{
			// Empty resolves to ~/.tenets/game.json at use.
			SavePath:     "",
			Civilization: "",
			LockTimeout:  constants.LockTimeout,
		},
		UI: UIConfig{
			Accessible:   false,
			ShowKeyHints: true,
			Width:        0,
		},
	}
}
