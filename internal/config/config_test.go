package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, constants.LockTimeout, cfg.Game.LockTimeout)
	assert.True(t, cfg.UI.ShowKeyHints)
}

func TestLoadFromPaths_Defaults(t *testing.T) {
	cfg, err := LoadFromPaths(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPaths_ProjectOverridesGlobal(t *testing.T) {
	global := writeConfig(t, t.TempDir(), `
ruleset:
  path: global-rules.yaml
game:
  civilization: Siam
  lock_timeout: 2s
ui:
  width: 100
`)
	project := writeConfig(t, t.TempDir(), `
game:
  civilization: Rome
ui:
  accessible: true
`)

	cfg, err := LoadFromPaths(context.Background(), project, global)
	require.NoError(t, err)

	assert.Equal(t, "global-rules.yaml", cfg.Ruleset.Path)
	assert.Equal(t, "Rome", cfg.Game.Civilization)
	assert.Equal(t, 2*time.Second, cfg.Game.LockTimeout)
	assert.True(t, cfg.UI.Accessible)
	assert.Equal(t, 100, cfg.UI.Width)
}

func TestLoadFromPaths_EnvOverridesFiles(t *testing.T) {
	project := writeConfig(t, t.TempDir(), "game:\n  civilization: Rome\n")
	t.Setenv("TENETS_GAME_CIVILIZATION", "Arabia")

	cfg, err := LoadFromPaths(context.Background(), project, "")
	require.NoError(t, err)
	assert.Equal(t, "Arabia", cfg.Game.Civilization)
}

func TestLoadFromPaths_MissingFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFromPaths(context.Background(), filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml"))
	require.NoError(t, err)
	assert.Equal(t, constants.LockTimeout, cfg.Game.LockTimeout)
}

func TestLoadFromPaths_Invalid(t *testing.T) {
	project := writeConfig(t, t.TempDir(), "ui:\n  width: 20\n")

	_, err := LoadFromPaths(context.Background(), project, "")
	require.ErrorIs(t, err, errors.ErrConfigInvalidUI)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "game:\n  save_path: /tmp/save.json\n")

	cfg, err := LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/save.json", cfg.Game.SavePath)

	_, err = LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_UsesTenetsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(constants.HomeEnvVar, home)
	t.Chdir(t.TempDir())
	writeConfig(t, home, "game:\n  civilization: Mongolia\n")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Mongolia", cfg.Game.Civilization)
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	cfg, err := ApplyOverrides(DefaultConfig(), &Config{
		Ruleset: RulesetConfig{Path: "mod.json"},
		Game:    GameConfig{SavePath: "save.json", Civilization: "Siam"},
		UI:      UIConfig{Accessible: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "mod.json", cfg.Ruleset.Path)
	assert.Equal(t, "save.json", cfg.Game.SavePath)
	assert.Equal(t, "Siam", cfg.Game.Civilization)
	assert.True(t, cfg.UI.Accessible)
	assert.True(t, cfg.UI.ShowKeyHints, "zero-valued overrides leave settings alone")

	_, err = ApplyOverrides(DefaultConfig(), &Config{Game: GameConfig{LockTimeout: time.Hour}})
	require.ErrorIs(t, err, errors.ErrConfigInvalidGame)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"lock timeout too short", func(c *Config) { c.Game.LockTimeout = time.Millisecond }, errors.ErrConfigInvalidGame},
		{"lock timeout too long", func(c *Config) { c.Game.LockTimeout = 2 * time.Minute }, errors.ErrConfigInvalidGame},
		{"width too narrow", func(c *Config) { c.UI.Width = 59 }, errors.ErrConfigInvalidUI},
		{"width too wide", func(c *Config) { c.UI.Width = 241 }, errors.ErrConfigInvalidUI},
		{"width in range", func(c *Config) { c.UI.Width = 120 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	require.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
}

func TestPaths(t *testing.T) {
	t.Setenv(constants.HomeEnvVar, "/opt/tenets")

	dir, err := GlobalConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/opt/tenets", dir)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/tenets", "config.yaml"), path)

	logs, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/opt/tenets", constants.LogsDir), logs)

	assert.Equal(t, filepath.Join(constants.TenetsHome, "config.yaml"), ProjectConfigPath())
}
