// Package tui provides terminal user interface components for tenets.
//
// This package provides a centralized style system using Lip Gloss for consistent
// TUI component styling. All colors use AdaptiveColor for light/dark terminal support.
//
// # Semantic Colors
//
// Five semantic colors are exported for use across TUI components:
//   - ColorPrimary (Blue): Focus, active slot, primary actions
//   - ColorSuccess (Green): Filled slots, confirm button
//   - ColorWarning (Yellow): Empty slots needing a choice
//   - ColorError (Red): Validation errors
//   - ColorMuted (Gray): Locked beliefs, disabled rows, hints
//
// # NO_COLOR Support
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR environment
// variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mrz1836/tenets/internal/domain"
)

// DefaultBoxWidth is the width used when the terminal size is unknown.
const DefaultBoxWidth = 80

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for focus and primary actions.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for filled slots and the confirm button.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for empty slots.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for validation errors.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for locked and disabled rows.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleReverse applies reverse video (inverted colors) formatting to text.
	StyleReverse = lipgloss.NewStyle().Reverse(true)
)

// CategoryColors returns the accent color for each belief category.
func CategoryColors() map[domain.BeliefCategory]lipgloss.AdaptiveColor {
	return map[domain.BeliefCategory]lipgloss.AdaptiveColor{
		domain.BeliefPantheon: {Light: "#875F00", Dark: "#D7AF5F"}, // Bronze
		domain.BeliefFounder:  {Light: "#5F00AF", Dark: "#AF87FF"}, // Violet
		domain.BeliefFollower: {Light: "#005F87", Dark: "#5FAFD7"}, // Teal
		domain.BeliefEnhancer: {Light: "#AF005F", Dark: "#FF87AF"}, // Rose
	}
}

// CategoryColor returns the accent color for c, or ColorMuted for an unknown category.
func CategoryColor(c domain.BeliefCategory) lipgloss.AdaptiveColor {
	if color, ok := CategoryColors()[c]; ok {
		return color
	}
	return ColorMuted
}

// TableStyles holds lipgloss styles for table rendering.
type TableStyles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Dim    lipgloss.Style
}

// NewTableStyles creates styles for table rendering.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Cell: lipgloss.NewStyle(),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
	}
}

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// PickerStyles holds the styles used by the belief picker screen.
type PickerStyles struct {
	Title         lipgloss.Style
	Pane          lipgloss.Style
	PaneFocused   lipgloss.Style
	PaneTitle     lipgloss.Style
	Row           lipgloss.Style
	RowCursor     lipgloss.Style
	RowLocked     lipgloss.Style
	RowEmpty      lipgloss.Style
	RowActive     lipgloss.Style
	IconAvailable lipgloss.Style
	IconSelected  lipgloss.Style
	IconDisabled  lipgloss.Style
	Button        lipgloss.Style
	ButtonEnabled lipgloss.Style
	Description   lipgloss.Style
	Hint          lipgloss.Style
	Error         lipgloss.Style
	Popup         lipgloss.Style
}

// NewPickerStyles creates the picker screen styles.
func NewPickerStyles() *PickerStyles {
	return &PickerStyles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Pane:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorMuted).Padding(0, 1),
		PaneFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).Padding(0, 1),
		PaneTitle:     lipgloss.NewStyle().Bold(true),
		Row:           lipgloss.NewStyle(),
		RowCursor:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		RowLocked:     lipgloss.NewStyle().Foreground(ColorMuted),
		RowEmpty:      lipgloss.NewStyle().Foreground(ColorWarning).Italic(true),
		RowActive:     lipgloss.NewStyle().Reverse(true),
		IconAvailable: lipgloss.NewStyle().Padding(0, 1),
		IconSelected:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		IconDisabled:  lipgloss.NewStyle().Padding(0, 1).Foreground(ColorMuted).Strikethrough(true),
		Button: lipgloss.NewStyle().Padding(0, 2).
			Border(lipgloss.NormalBorder()).BorderForeground(ColorMuted).Foreground(ColorMuted),
		ButtonEnabled: lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Border(lipgloss.NormalBorder()).BorderForeground(ColorSuccess).Foreground(ColorSuccess),
		Description: lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		Hint:        lipgloss.NewStyle().Foreground(ColorMuted),
		Error:       lipgloss.NewStyle().Foreground(ColorError),
		Popup: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).Padding(1, 2),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or TERM=dumb.
// This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	return !strings.EqualFold(os.Getenv("TERM"), "dumb")
}
