// Package errors provides centralized error handling for tenets.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrSlotOutOfRange indicates a belief slot index outside [0, total).
	ErrSlotOutOfRange = errors.New("belief slot index out of range")

	// ErrBeliefCategoryMismatch indicates a belief was assigned to a slot of another category.
	ErrBeliefCategoryMismatch = errors.New("belief category does not match slot")

	// ErrBeliefUnavailable indicates the belief is not among the candidates for the slot,
	// either because another religion holds it or because it is already chosen.
	ErrBeliefUnavailable = errors.New("belief is not available")

	// ErrBeliefNotFound indicates the ruleset has no belief with the given name.
	ErrBeliefNotFound = errors.New("belief not found")

	// ErrUnknownBeliefCategory indicates a belief type string that is not
	// pantheon, founder, follower or enhancer.
	ErrUnknownBeliefCategory = errors.New("unknown belief category")

	// ErrBeliefCountMismatch indicates the chosen beliefs do not match what the
	// civilization is entitled to pick.
	ErrBeliefCountMismatch = errors.New("chosen beliefs do not match entitlement")

	// ErrDuplicateBelief indicates the same belief was chosen more than once.
	ErrDuplicateBelief = errors.New("belief chosen more than once")

	// ErrSelectionIncomplete indicates confirmation was attempted before every
	// slot (and, when founding, the icon and name) was filled.
	ErrSelectionIncomplete = errors.New("belief selection is incomplete")

	// ErrReligionNameReserved indicates the proposed name is the "no religion" sentinel.
	ErrReligionNameReserved = errors.New("religion name is reserved")

	// ErrReligionNameTaken indicates the proposed name collides with a predefined
	// or already founded religion.
	ErrReligionNameTaken = errors.New("religion name is already taken")

	// ErrReligionIconUnavailable indicates the religion icon is in use or unknown.
	ErrReligionIconUnavailable = errors.New("religion icon is not available")

	// ErrReligionNotFound indicates the civilization has no religion to enhance.
	ErrReligionNotFound = errors.New("religion not found")

	// ErrInvalidTransition indicates the civilization cannot move to the requested religion state.
	ErrInvalidTransition = errors.New("invalid religion state transition")

	// ErrInvalidPickerMode indicates an unknown picker mode was requested.
	ErrInvalidPickerMode = errors.New("invalid picker mode")

	// ErrCivilizationNotFound indicates the save has no civilization with the given name.
	ErrCivilizationNotFound = errors.New("civilization not found")

	// ErrCivilizationExists indicates a civilization name was given twice.
	ErrCivilizationExists = errors.New("civilization already exists")

	// ErrRulesetFileMissing indicates the ruleset file does not exist.
	ErrRulesetFileMissing = errors.New("ruleset file not found")

	// ErrRulesetLoadFailed indicates the ruleset file could not be read.
	ErrRulesetLoadFailed = errors.New("ruleset load failed")

	// ErrRulesetParse indicates the ruleset file has invalid YAML/JSON syntax.
	ErrRulesetParse = errors.New("ruleset parse error")

	// ErrRulesetInvalid indicates the ruleset failed validation.
	ErrRulesetInvalid = errors.New("invalid ruleset")

	// ErrGameNotFound indicates the game save does not exist.
	ErrGameNotFound = errors.New("game save not found")

	// ErrGameExists indicates an attempt to create a save over an existing one.
	ErrGameExists = errors.New("game save already exists")

	// ErrGameCorrupted indicates the game save is unreadable.
	ErrGameCorrupted = errors.New("game save corrupted")

	// ErrLockTimeout indicates a file lock could not be acquired within the timeout period.
	ErrLockTimeout = errors.New("lock acquisition timeout")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidUI indicates an invalid UI configuration value.
	ErrConfigInvalidUI = errors.New("invalid UI configuration")

	// ErrConfigInvalidGame indicates an invalid game configuration value.
	ErrConfigInvalidGame = errors.New("invalid game configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrInvalidArgument indicates that an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrConflictingFlags indicates that mutually exclusive flags were specified.
	ErrConflictingFlags = errors.New("conflicting flags specified")

	// ErrNoMenuOptions indicates that no options were provided to a menu.
	ErrNoMenuOptions = errors.New("no menu options provided")

	// ErrMenuCanceled indicates that the user canceled a menu operation.
	ErrMenuCanceled = errors.New("menu canceled by user")

	// ErrPickerCanceled indicates the user left the picker without confirming.
	ErrPickerCanceled = errors.New("belief picker canceled")

	// ErrInteractiveRequired indicates that interactive prompts are required but not available.
	ErrInteractiveRequired = errors.New("interactive prompt required")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)

// ExitCode2Error wraps an error to indicate exit code 2 should be used.
type ExitCode2Error struct {
	Err error
}

// NewExitCode2Error wraps an error to indicate exit code 2.
func NewExitCode2Error(err error) *ExitCode2Error {
	return &ExitCode2Error{Err: err}
}

// Error implements the error interface.
func (e *ExitCode2Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitCode2Error) Unwrap() error {
	return e.Err
}

// IsExitCode2Error checks if an error should result in exit code 2.
func IsExitCode2Error(err error) bool {
	var e *ExitCode2Error
	return errors.As(err, &e)
}
