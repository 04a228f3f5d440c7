package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/errors"
)

// newViperInstance creates a Viper instance with the TENETS_ env prefix,
// the key replacer and the defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (TENETS_* prefix)
//  2. Project config (.tenets/config.yaml)
//  3. Global config (~/.tenets/config.yaml)
//  4. Built-in defaults
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("component", "config").
		Str("ruleset.path", cfg.Ruleset.Path).
		Str("game.save_path", cfg.Game.SavePath).
		Dur("game.lock_timeout", cfg.Game.LockTimeout).
		Bool("ui.accessible", cfg.UI.Accessible).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFile loads configuration from one explicit file (the --config flag)
// on top of the defaults and environment.
func LoadFile(_ context.Context, path string) (*Config, error) {
	v := newViperInstance()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return unmarshalAndValidate(v)
}

// loadGlobalConfig attempts to load the global config file (~/.tenets/config.yaml).
// Returns nil if the file doesn't exist or home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, err := GlobalConfigPath()
	if err != nil || !fileExists(globalConfigPath) {
		return nil //nolint:nilerr // a missing home directory just means no global config
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file (.tenets/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// Only non-zero values in overrides are applied.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyOverrides(cfg, overrides)
}

// ApplyOverrides merges non-zero override values into cfg and re-validates.
//
// Boolean fields cannot be overridden to false here because false is the zero
// value. The CLI handles those with cmd.Flags().Changed.
func ApplyOverrides(cfg, overrides *Config) (*Config, error) {
	if overrides != nil {
		if overrides.Ruleset.Path != "" {
			cfg.Ruleset.Path = overrides.Ruleset.Path
		}
		if overrides.Game.SavePath != "" {
			cfg.Game.SavePath = overrides.Game.SavePath
		}
		if overrides.Game.Civilization != "" {
			cfg.Game.Civilization = overrides.Game.Civilization
		}
		if overrides.Game.LockTimeout != 0 {
			cfg.Game.LockTimeout = overrides.Game.LockTimeout
		}
		if overrides.UI.Accessible {
			cfg.UI.Accessible = true
		}
		if overrides.UI.Width != 0 {
			cfg.UI.Width = overrides.UI.Width
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}
	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths for testing.
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// setDefaults registers the default values on the Viper instance.
// Keys must match the mapstructure tags exactly.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("ruleset.path", d.Ruleset.Path)

	v.SetDefault("game.save_path", d.Game.SavePath)
	v.SetDefault("game.civilization", d.Game.Civilization)
	v.SetDefault("game.lock_timeout", d.Game.LockTimeout.String())

	v.SetDefault("ui.accessible", d.UI.Accessible)
	v.SetDefault("ui.show_key_hints", d.UI.ShowKeyHints)
	v.SetDefault("ui.width", d.UI.Width)
}

// viperDecoderOption configures mapstructure to decode durations from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}
