// Package constants provides centralized constant values used throughout tenets.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// File names used by tenets for persistence.
const (
	// GameFileName is the default name of the JSON game save.
	GameFileName = "game.json"

	// LockFileSuffix is appended to a save path to form its lock file.
	LockFileSuffix = ".lock"
)

// Directory names and paths used by tenets for organizing data.
const (
	// TenetsHome is the hidden directory name where tenets stores all its data.
	// This directory is created in the user's home directory.
	TenetsHome = ".tenets"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size of a log file before it is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to keep.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days to retain rotated log files.
	LogMaxAgeDays = 28

	// LogCompress controls gzip compression of rotated log files.
	LogCompress = true
)

// Save file locking.
const (
	// LockTimeout is the maximum duration to wait for the save file lock.
	LockTimeout = 5 * time.Second

	// LockRetryInterval is how often lock acquisition is retried.
	LockRetryInterval = 50 * time.Millisecond
)

// Schema version constants for data migration support.
const (
	// GameSchemaVersion is the current version of the game save schema.
	GameSchemaVersion = 1
)

// Religion naming.
const (
	// NoReligionName is the reserved sentinel meaning "this city follows no religion".
	// It can never be used as the name of a founded religion.
	NoReligionName = "No religion"

	// MaxReligionNameLength caps the display name typed into the rename prompt.
	MaxReligionNameLength = 32
)
