package flock

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mrz1836/tenets/internal/constants"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Options tunes Acquire. Zero values fall back to the package defaults.
type Options struct {
	// Timeout is how long to keep retrying before giving up.
	Timeout time.Duration

	// RetryInterval is the pause between attempts.
	RetryInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = constants.LockTimeout
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = constants.LockRetryInterval
	}
	return o
}

// Lock is a held exclusive lock on a file.
type Lock struct {
	f *os.File
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	if l == nil || l.f == nil {
		return ""
	}
	return l.f.Name()
}

// Acquire takes an exclusive lock on path, creating the file and its parent
// directory if needed. It retries until the lock is free, the timeout passes
// (ErrLockTimeout) or ctx is done.
func Acquire(ctx context.Context, path string, opts Options) (*Lock, error) {
	opts = opts.withDefaults()

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, filePerm) //#nosec G302,G304 -- lock file needs write access, path is built by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	deadline := time.Now().Add(opts.Timeout)
	for {
		if err := ctx.Err(); err != nil {
			_ = f.Close()
			return nil, err
		}

		if err := Exclusive(f.Fd()); err == nil {
			return &Lock{f: f}, nil
		}

		if time.Now().After(deadline) {
			_ = f.Close()
			return nil, fmt.Errorf("failed to lock %s: %w", path, tenetserrors.ErrLockTimeout)
		}

		timer := time.NewTimer(opts.RetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			_ = f.Close()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// Release unlocks and closes the lock file. Releasing a nil Lock is a no-op.
// The lock file itself is left in place.
func (l *Lock) Release() error {
	if l == nil || l.f == nil {
		return nil
	}
	f := l.f
	l.f = nil

	if err := Unlock(f.Fd()); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return f.Close()
}
