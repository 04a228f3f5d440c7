package game

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mrz1836/tenets/internal/clock"
	"github.com/mrz1836/tenets/internal/constants"
	"github.com/mrz1836/tenets/internal/domain"
	tenetserrors "github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/flock"
)

// Directory and file permission constants.
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// Store defines the persistence operations for a game save.
type Store interface {
	// Load reads the save. Returns ErrGameNotFound if it does not exist.
	Load(ctx context.Context) (*State, error)

	// Save overwrites the save with s.
	Save(ctx context.Context, s *State) error

	// Init writes a new save. Returns ErrGameExists if one is already there.
	Init(ctx context.Context, s *State) error

	// Update loads the save, applies fn and writes the result under one lock.
	// Nothing is written if fn returns an error.
	Update(ctx context.Context, fn func(*State) error) error
}

// FileStore implements Store with a JSON file guarded by a sibling lock file.
type FileStore struct {
	path  string
	clock clock.Clock
	lock  flock.Options
}

// StoreOption configures a FileStore.
type StoreOption func(*FileStore)

// WithClock sets the clock used for UpdatedAt stamps.
func WithClock(c clock.Clock) StoreOption {
	return func(s *FileStore) { s.clock = c }
}

// WithLockOptions tunes lock acquisition.
func WithLockOptions(o flock.Options) StoreOption {
	return func(s *FileStore) { s.lock = o }
}

// NewFileStore creates a FileStore for the save at path.
// If path is empty, the default save under the tenets home is used.
func NewFileStore(path string, opts ...StoreOption) (*FileStore, error) {
	if path == "" {
		var err error
		if path, err = DefaultSavePath(); err != nil {
			return nil, err
		}
	}
	s := &FileStore{path: path, clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// DefaultSavePath returns $TENETS_HOME/game.json, or ~/.tenets/game.json.
func DefaultSavePath() (string, error) {
	if home := os.Getenv(constants.HomeEnvVar); home != "" {
		return filepath.Join(home, constants.GameFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, constants.TenetsHome, constants.GameFileName), nil
}

// Path returns the save file path.
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the save file is present.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the save.
func (s *FileStore) Load(ctx context.Context) (*State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lock, err := s.acquireLock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read game '%s': %w", s.path, err)
	}
	defer func() { _ = lock.Release() }()

	return s.read(ctx)
}

// Save overwrites the save.
func (s *FileStore) Save(ctx context.Context, st *State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock, err := s.acquireLock(ctx)
	if err != nil {
		return fmt.Errorf("failed to save game '%s': %w", s.path, err)
	}
	defer func() { _ = lock.Release() }()

	return s.write(ctx, st)
}

// Init writes a new save.
func (s *FileStore) Init(ctx context.Context, st *State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock, err := s.acquireLock(ctx)
	if err != nil {
		return fmt.Errorf("failed to create game '%s': %w", s.path, err)
	}
	defer func() { _ = lock.Release() }()

	if s.Exists() {
		return fmt.Errorf("failed to create game '%s': %w", s.path, tenetserrors.ErrGameExists)
	}

	st.CreatedAt = s.clock.Now()
	return s.write(ctx, st)
}

// Update runs a locked read-modify-write cycle.
func (s *FileStore) Update(ctx context.Context, fn func(*State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	lock, err := s.acquireLock(ctx)
	if err != nil {
		return fmt.Errorf("failed to update game '%s': %w", s.path, err)
	}
	defer func() { _ = lock.Release() }()

	st, err := s.read(ctx)
	if err != nil {
		return err
	}
	if err := fn(st); err != nil {
		return err
	}
	return s.write(ctx, st)
}

// read loads and decodes the save. Callers hold the lock.
func (s *FileStore) read(ctx context.Context) (*State, error) {
	data, err := os.ReadFile(s.path) //#nosec G304 -- path comes from config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read game '%s': %w", s.path, tenetserrors.ErrGameNotFound)
		}
		return nil, fmt.Errorf("failed to read game '%s': %w", s.path, err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("game '%s' has a corrupted save file: %w", s.path, tenetserrors.ErrGameCorrupted)
	}

	// Saves without a version predate versioning and share the current layout.
	// Newer versions are read as-is.
	if st.SchemaVersion > constants.GameSchemaVersion {
		zerolog.Ctx(ctx).Warn().
			Int("schema_version", st.SchemaVersion).
			Int("supported_version", constants.GameSchemaVersion).
			Str("path", s.path).
			Msg("game save was written by a newer tenets")
	}
	if st.Civilizations == nil {
		return nil, fmt.Errorf("game '%s' has no civilizations: %w", s.path, tenetserrors.ErrGameCorrupted)
	}
	if st.Religions == nil {
		st.Religions = make(map[string]*domain.Religion)
	}

	return &st, nil
}

// write encodes and atomically writes the save. Callers hold the lock.
func (s *FileStore) write(ctx context.Context, st *State) error {
	if st.SchemaVersion == 0 {
		st.SchemaVersion = constants.GameSchemaVersion
	}
	st.UpdatedAt = s.clock.Now()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode game '%s': %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}

	if err := atomicWrite(s.path, data, filePerm); err != nil {
		return fmt.Errorf("failed to save game '%s': %w", s.path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", s.path).
		Int("religions", len(st.Religions)).
		Msg("game saved")
	return nil
}

func (s *FileStore) acquireLock(ctx context.Context) (*flock.Lock, error) {
	return flock.Acquire(ctx, s.path+constants.LockFileSuffix, s.lock)
}

// atomicWrite writes data to a file atomically using write-then-rename.
//
//nolint:unparam // perm kept for symmetry with os.WriteFile
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Data must hit the disk before the rename makes it visible.
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
