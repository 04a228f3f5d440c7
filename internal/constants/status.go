package constants

// ReligionState represents how far a civilization has progressed religiously.
// Values use snake_case for JSON serialization compatibility.
//
//	None → Pantheon → Religion → EnhancedReligion
//
// A civilization may also found a religion directly from None.
type ReligionState string

const (
	// ReligionStateNone indicates the civilization has no pantheon and no religion.
	ReligionStateNone ReligionState = "none"

	// ReligionStatePantheon indicates a pantheon has been adopted.
	ReligionStatePantheon ReligionState = "pantheon"

	// ReligionStateReligion indicates a religion has been founded.
	ReligionStateReligion ReligionState = "religion"

	// ReligionStateEnhancedReligion indicates the founded religion has been enhanced.
	// This is a terminal state.
	ReligionStateEnhancedReligion ReligionState = "enhanced_religion"
)

// String returns the string representation of the religion state.
func (s ReligionState) String() string {
	return string(s)
}

// validReligionTransitions defines the allowed forward moves between states.
//
//nolint:gochecknoglobals // Transition table is read-only
var validReligionTransitions = map[ReligionState][]ReligionState{
	ReligionStateNone:     {ReligionStatePantheon, ReligionStateReligion},
	ReligionStatePantheon: {ReligionStateReligion},
	ReligionStateReligion: {ReligionStateEnhancedReligion},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s ReligionState) CanTransitionTo(next ReligionState) bool {
	for _, allowed := range validReligionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true when no further religious progress is possible.
func (s ReligionState) IsTerminal() bool {
	return len(validReligionTransitions[s]) == 0
}

// PickerMode selects which belief screen is opened.
type PickerMode string

const (
	// PickerModePantheon adopts a pantheon belief.
	PickerModePantheon PickerMode = "pantheon"

	// PickerModeFound founds a new religion: icon, name and beliefs.
	PickerModeFound PickerMode = "found"

	// PickerModeEnhance adds beliefs to an already founded religion.
	PickerModeEnhance PickerMode = "enhance"
)

// String returns the string representation of the picker mode.
func (m PickerMode) String() string {
	return string(m)
}

// ValidPickerModes returns all picker modes in progression order.
func ValidPickerModes() []PickerMode {
	return []PickerMode{PickerModePantheon, PickerModeFound, PickerModeEnhance}
}

// IsValid reports whether m is a known picker mode.
func (m PickerMode) IsValid() bool {
	for _, valid := range ValidPickerModes() {
		if m == valid {
			return true
		}
	}
	return false
}
