package errors

import "errors"

// ErrorInfo holds user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinel errors to their user-facing messages.
// A slice (not a map) because wrapped errors need errors.Is() traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	// ===================
	// Belief selection
	// ===================
	{
		err: ErrSelectionIncomplete,
		info: ErrorInfo{
			Message: "Not every belief slot has been filled.",
			Action:  "Pick a belief for each slot (and an icon and name when founding).",
		},
	},
	{
		err: ErrBeliefUnavailable,
		info: ErrorInfo{
			Message: "That belief cannot be chosen for this slot.",
			Action:  "Run 'tenets beliefs list --available' to see what is still free.",
		},
	},
	{
		err: ErrBeliefNotFound,
		info: ErrorInfo{
			Message: "The ruleset has no belief with that name.",
			Action:  "Run 'tenets beliefs list' to see the belief catalog.",
		},
	},
	{
		err: ErrBeliefCountMismatch,
		info: ErrorInfo{
			Message: "The chosen beliefs do not match what this civilization may pick.",
			Action:  "Choose exactly one belief per slot shown by the picker.",
		},
	},
	{
		err: ErrDuplicateBelief,
		info: ErrorInfo{
			Message: "The same belief was chosen twice.",
			Action:  "Choose a different belief for one of the slots.",
		},
	},
	{
		err: ErrBeliefCategoryMismatch,
		info: ErrorInfo{
			Message: "That belief belongs to a different category than the slot.",
			Action:  "",
		},
	},
	{
		err: ErrSlotOutOfRange,
		info: ErrorInfo{
			Message: "There is no belief slot at that position.",
			Action:  "",
		},
	},

	// ===================
	// Religions
	// ===================
	{
		err: ErrReligionNameReserved,
		info: ErrorInfo{
			Message: "That name is reserved.",
			Action:  "Choose another name for your religion.",
		},
	},
	{
		err: ErrReligionNameTaken,
		info: ErrorInfo{
			Message: "A religion with that name already exists.",
			Action:  "Choose another name for your religion.",
		},
	},
	{
		err: ErrReligionIconUnavailable,
		info: ErrorInfo{
			Message: "That religion icon is already in use.",
			Action:  "Run 'tenets religions list' to see which religions have been founded.",
		},
	},
	{
		err: ErrReligionNotFound,
		info: ErrorInfo{
			Message: "This civilization has not founded a religion yet.",
			Action:  "Found a religion with 'tenets pick --mode found' first.",
		},
	},
	{
		err: ErrInvalidTransition,
		info: ErrorInfo{
			Message: "This civilization cannot make that religious choice now.",
			Action:  "Run 'tenets religions list' to check its current progress.",
		},
	},
	{
		err: ErrInvalidPickerMode,
		info: ErrorInfo{
			Message: "Unknown picker mode.",
			Action:  "Use one of: pantheon, found, enhance.",
		},
	},
	{
		err: ErrCivilizationNotFound,
		info: ErrorInfo{
			Message: "The game has no civilization with that name.",
			Action:  "Check the --civ flag or the game.civilization config value.",
		},
	},

	// ===================
	// Ruleset & save
	// ===================
	{
		err: ErrRulesetFileMissing,
		info: ErrorInfo{
			Message: "The ruleset file does not exist.",
			Action:  "Check the --ruleset flag or leave it empty to use the built-in ruleset.",
		},
	},
	{
		err: ErrRulesetParse,
		info: ErrorInfo{
			Message: "The ruleset file has invalid YAML or JSON syntax.",
			Action:  "Fix the syntax errors in the ruleset file.",
		},
	},
	{
		err: ErrRulesetInvalid,
		info: ErrorInfo{
			Message: "The ruleset failed validation.",
			Action:  "Check belief names, types and religion names in the ruleset file.",
		},
	},
	{
		err: ErrGameNotFound,
		info: ErrorInfo{
			Message: "The game save was not found.",
			Action:  "Create one with 'tenets game new --civ <name>'.",
		},
	},
	{
		err: ErrGameExists,
		info: ErrorInfo{
			Message: "A game save already exists at that path.",
			Action:  "Use --force to overwrite it or choose another --save path.",
		},
	},
	{
		err: ErrGameCorrupted,
		info: ErrorInfo{
			Message: "The game save is corrupted.",
			Action:  "Restore the save from a backup or start a new game.",
		},
	},
	{
		err: ErrLockTimeout,
		info: ErrorInfo{
			Message: "Could not lock the game save. Another process may be using it.",
			Action:  "Wait and try again, or remove a stale .lock file.",
		},
	},

	// ===================
	// Configuration
	// ===================
	{
		err: ErrConfigNil,
		info: ErrorInfo{
			Message: "Configuration is not loaded.",
			Action:  "Ensure config.yaml exists and is valid YAML.",
		},
	},
	{
		err: ErrConfigInvalidUI,
		info: ErrorInfo{
			Message: "Invalid UI configuration.",
			Action:  "Check the 'ui' section in config.yaml for invalid values.",
		},
	},
	{
		err: ErrConfigInvalidGame,
		info: ErrorInfo{
			Message: "Invalid game configuration.",
			Action:  "Check the 'game' section in config.yaml for invalid values.",
		},
	},

	// ===================
	// User interaction
	// ===================
	{
		err: ErrPickerCanceled,
		info: ErrorInfo{
			Message: "Belief selection was canceled. Nothing was saved.",
			Action:  "",
		},
	},
	{
		err: ErrMenuCanceled,
		info: ErrorInfo{
			Message: "Menu selection was canceled.",
			Action:  "",
		},
	},
	{
		err: ErrInteractiveRequired,
		info: ErrorInfo{
			Message: "This operation requires an interactive terminal.",
			Action:  "Run in a terminal, or pass --icon/--name/--belief flags.",
		},
	},
	{
		err: ErrConflictingFlags,
		info: ErrorInfo{
			Message: "The specified flags cannot be used together.",
			Action:  "Check the command help for valid flag combinations.",
		},
	},
	{
		err: ErrInvalidArgument,
		info: ErrorInfo{
			Message: "An invalid argument was provided.",
			Action:  "Check the command help for valid arguments.",
		},
	},
	{
		err: ErrEmptyValue,
		info: ErrorInfo{
			Message: "A required value was not provided.",
			Action:  "Provide the required value and try again.",
		},
	},
}

// errorInfoMap provides O(1) lookup for direct sentinel error matches.
//
//nolint:gochecknoglobals // Pre-built mapping for O(1) lookup performance
var errorInfoMap = buildErrorInfoMap()

func buildErrorInfoMap() map[error]ErrorInfo {
	m := make(map[error]ErrorInfo, len(errorInfoEntries))
	for _, entry := range errorInfoEntries {
		m[entry.err] = entry.info
	}
	return m
}

// getErrorInfo looks up the ErrorInfo for a given error.
// Direct sentinels hit the map; wrapped errors fall back to errors.Is().
// Unknown errors keep their original message.
func getErrorInfo(err error) ErrorInfo {
	if info, ok := errorInfoMap[err]; ok {
		return info
	}

	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}

	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for common errors.
// For unrecognized errors, it returns the error's original message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly error message along with a suggested
// action the user can take. The action is empty when there is nothing to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
