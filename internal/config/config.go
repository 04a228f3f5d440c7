// Package config provides configuration management for tenets with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (TENETS_* prefix)
//  3. Project config (.tenets/config.yaml)
//  4. Global config (~/.tenets/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure for tenets.
type Config struct {
	// Ruleset selects the belief catalog.
	Ruleset RulesetConfig `yaml:"ruleset" mapstructure:"ruleset" json:"ruleset"`

	// Game locates the save and the civilization playing.
	Game GameConfig `yaml:"game" mapstructure:"game" json:"game"`

	// UI controls the picker screen.
	UI UIConfig `yaml:"ui" mapstructure:"ui" json:"ui"`
}

// RulesetConfig contains settings for loading the ruleset.
type RulesetConfig struct {
	// Path is a YAML or JSON ruleset file. Relative paths resolve against the
	// working directory. Empty means the built-in ruleset.
	Path string `yaml:"path" mapstructure:"path" json:"path"`
}

// GameConfig contains settings for the game save.
type GameConfig struct {
	// SavePath is the JSON save file.
	// Default: ~/.tenets/game.json
	SavePath string `yaml:"save_path" mapstructure:"save_path" json:"save_path"`

	// Civilization is picked when --civ is not given.
	Civilization string `yaml:"civilization" mapstructure:"civilization" json:"civilization"`

	// LockTimeout bounds how long a command waits for the save lock.
	// Default: 5s, Valid range: 100ms-1m
	LockTimeout time.Duration `yaml:"lock_timeout" mapstructure:"lock_timeout" json:"lock_timeout"`
}

// UIConfig contains settings for the terminal UI.
type UIConfig struct {
	// Accessible replaces the full-screen picker with sequential prompts
	// that work with screen readers.
	Accessible bool `yaml:"accessible" mapstructure:"accessible" json:"accessible"`

	// ShowKeyHints shows the key help line under the picker.
	// Default: true
	ShowKeyHints bool `yaml:"show_key_hints" mapstructure:"show_key_hints" json:"show_key_hints"`

	// Width caps the picker width in columns. 0 uses the terminal width.
	// Valid range: 0 or 60-240
	Width int `yaml:"width" mapstructure:"width" json:"width"`
}
