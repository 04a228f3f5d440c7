package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mrz1836/tenets/internal/game"
)

// mockTerminalCheckFunc replaces terminalCheck and returns a restore func.
// Tests using it must not call t.Parallel.
//
// Example:
//
//	cleanup := mockTerminalCheckFunc(true)
//	defer cleanup()
func mockTerminalCheckFunc(isTerminal bool) func() {
	original := terminalCheck
	terminalCheck = func() bool { return isTerminal }
	return func() { terminalCheck = original }
}

// newTestFlags points the global flags at a private config file and save path
// so tests never read ~/.tenets.
func newTestFlags(t *testing.T) *GlobalFlags {
	t.Helper()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("game:\n  lock_timeout: 2s\n"), 0o600))

	return &GlobalFlags{
		Output:     OutputText,
		ConfigFile: cfgPath,
		SavePath:   filepath.Join(dir, "game.json"),
	}
}

// writeGame creates a save with the given civilizations, optionally edited by fn.
func writeGame(t *testing.T, flags *GlobalFlags, fn func(*game.State), civs ...string) {
	t.Helper()

	st, err := game.NewState(civs...)
	require.NoError(t, err)
	if fn != nil {
		fn(st)
	}
	store, err := game.NewFileStore(flags.SavePath)
	require.NoError(t, err)
	require.NoError(t, store.Init(context.Background(), st))
}

// readGame loads the save the flags point at.
func readGame(t *testing.T, flags *GlobalFlags) *game.State {
	t.Helper()

	store, err := game.NewFileStore(flags.SavePath)
	require.NoError(t, err)
	st, err := store.Load(context.Background())
	require.NoError(t, err)
	return st
}
