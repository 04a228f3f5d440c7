//go:build unix

package flock_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tenetserrors "github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/flock"
)

func TestExclusive(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "save.json.lock")

	f1, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- test temp dir
	require.NoError(t, err)
	defer func() { _ = f1.Close() }()

	f2, err := os.OpenFile(path, os.O_RDWR, 0o600) // #nosec G304 -- test temp dir
	require.NoError(t, err)
	defer func() { _ = f2.Close() }()

	require.NoError(t, flock.Exclusive(f1.Fd()))
	require.Error(t, flock.Exclusive(f2.Fd()), "second descriptor must not get the lock")

	require.NoError(t, flock.Unlock(f1.Fd()))
	require.NoError(t, flock.Exclusive(f2.Fd()))
	require.NoError(t, flock.Unlock(f2.Fd()))
}

func TestAcquire(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directory and lock file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "game.json.lock")

		lock, err := flock.Acquire(context.Background(), path, flock.Options{})
		require.NoError(t, err)
		assert.Equal(t, path, lock.Path())
		require.NoError(t, lock.Release())

		_, statErr := os.Stat(path)
		assert.NoError(t, statErr)
	})

	t.Run("times out while held", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "game.json.lock")
		opts := flock.Options{Timeout: 100 * time.Millisecond, RetryInterval: 10 * time.Millisecond}

		held, err := flock.Acquire(context.Background(), path, opts)
		require.NoError(t, err)
		defer func() { _ = held.Release() }()

		_, err = flock.Acquire(context.Background(), path, opts)
		require.ErrorIs(t, err, tenetserrors.ErrLockTimeout)
	})

	t.Run("succeeds once released", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "game.json.lock")

		first, err := flock.Acquire(context.Background(), path, flock.Options{})
		require.NoError(t, err)
		require.NoError(t, first.Release())

		second, err := flock.Acquire(context.Background(), path, flock.Options{})
		require.NoError(t, err)
		require.NoError(t, second.Release())
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := flock.Acquire(ctx, filepath.Join(t.TempDir(), "x.lock"), flock.Options{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		t.Parallel()
		lock, err := flock.Acquire(context.Background(), filepath.Join(t.TempDir(), "x.lock"), flock.Options{})
		require.NoError(t, err)
		require.NoError(t, lock.Release())
		require.NoError(t, lock.Release())

		var nilLock *flock.Lock
		assert.NoError(t, nilLock.Release())
	})
}
