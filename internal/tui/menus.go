package tui

// This file provides the interactive prompts used outside the full-screen
// picker: single selection, confirmation and validated text input, all built
// on Charm Huh with the tenets theme.

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/tenets/internal/errors"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the number of characters to leave between
	// menu content and the terminal edge.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the minimum usable width for menu content.
	MinMenuWidth = 40
)

// ErrMenuCanceled is returned when the user cancels a prompt.
var ErrMenuCanceled = errors.ErrMenuCanceled

// KeyHints is the standard key hint string displayed below interactive menus.
const KeyHints = "[↑↓] Navigate  [enter] Select  [esc] Cancel"

// Option represents a selectable menu option.
type Option struct {
	// Label is the display text shown to the user.
	Label string
	// Description is optional help text appended to the label.
	Description string
	// Value is the value returned when this option is selected.
	Value string
}

// MenuConfig holds configuration for menu components.
type MenuConfig struct {
	// Width is the maximum width for the menu. If 0, adapts to terminal width.
	Width int
	// Accessible enables accessible mode for screen readers.
	Accessible bool
	// ShowKeyHints controls whether key hints are displayed.
	ShowKeyHints bool
}

// MenuConfigOption is a functional option for configuring MenuConfig.
type MenuConfigOption func(*MenuConfig)

// WithMenuWidth sets the menu width.
func WithMenuWidth(width int) MenuConfigOption {
	return func(c *MenuConfig) {
		c.Width = width
	}
}

// WithMenuAccessible enables or disables accessible mode.
func WithMenuAccessible(enabled bool) MenuConfigOption {
	return func(c *MenuConfig) {
		c.Accessible = enabled
	}
}

// WithMenuKeyHints enables or disables key hints display.
func WithMenuKeyHints(show bool) MenuConfigOption {
	return func(c *MenuConfig) {
		c.ShowKeyHints = show
	}
}

// NewMenuConfig creates a MenuConfig with defaults. Accessible mode is also
// turned on by the ACCESSIBLE environment variable.
func NewMenuConfig(opts ...MenuConfigOption) *MenuConfig {
	_, accessible := os.LookupEnv("ACCESSIBLE")

	c := &MenuConfig{
		Width:        DefaultBoxWidth,
		Accessible:   accessible,
		ShowKeyHints: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// adaptWidth returns a menu width that fits the terminal, capped at maxWidth.
func adaptWidth(maxWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		if maxWidth <= 0 {
			return DefaultBoxWidth
		}
		return maxWidth
	}

	availableWidth := width - TerminalEdgeMargin

	if maxWidth > 0 && maxWidth < availableWidth {
		return maxWidth
	}

	if availableWidth < MinMenuWidth {
		return MinMenuWidth
	}

	return availableWidth
}

// runForm runs a multi-group form with the tenets theme.
// A non-terminal stdin or a user abort both yield ErrMenuCanceled.
func runForm(form *huh.Form, cfg *MenuConfig, errorContext string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrMenuCanceled
	}

	CheckNoColor()

	form = form.
		WithTheme(TenetsTheme()).
		WithWidth(adaptWidth(cfg.Width)).
		WithAccessible(cfg.Accessible).
		WithShowHelp(cfg.ShowKeyHints)

	if err := form.Run(); err != nil {
		if stderrors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}

	return nil
}

// runFormWithConfig runs a single-field form.
func runFormWithConfig(field huh.Field, cfg *MenuConfig, errorContext string) error {
	return runForm(huh.NewForm(huh.NewGroup(field)), cfg, errorContext)
}

// TenetsTheme returns a Huh theme using the colors from styles.go.
func TenetsTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)

	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)

	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// huhOptions converts options to huh options. Huh has no per-option
// description, so the description is appended to the label.
func huhOptions(options []Option) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		label := opt.Label
		if opt.Description != "" {
			label = opt.Label + " - " + opt.Description
		}
		out[i] = huh.NewOption(label, opt.Value)
	}
	return out
}

// Select presents a single-selection menu and returns the selected value.
func Select(title string, options []Option) (string, error) {
	return SelectWithConfig(title, options, NewMenuConfig())
}

// SelectWithConfig presents a single-selection menu with custom configuration.
func SelectWithConfig(title string, options []Option, cfg *MenuConfig) (string, error) {
	if len(options) == 0 {
		return "", errors.ErrNoMenuOptions
	}

	var selected string

	selectField := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions(options)...).
		Value(&selected)

	if err := runFormWithConfig(selectField, cfg, "select menu failed"); err != nil {
		return "", err
	}

	return selected, nil
}

// Confirm presents a yes/no confirmation prompt.
func Confirm(message string, defaultYes bool) (bool, error) {
	return ConfirmWithConfig(message, defaultYes, NewMenuConfig())
}

// ConfirmWithConfig presents a confirmation prompt with custom configuration.
func ConfirmWithConfig(message string, defaultYes bool, cfg *MenuConfig) (bool, error) {
	confirmed := defaultYes

	confirmField := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runFormWithConfig(confirmField, cfg, "confirm prompt failed"); err != nil {
		return false, err
	}

	return confirmed, nil
}

// NoteWithConfig shows a message the user acknowledges before moving on.
func NoteWithConfig(title, message string, cfg *MenuConfig) error {
	note := huh.NewNote().
		Title(title).
		Description(message).
		Next(true).
		NextLabel("OK")

	return runFormWithConfig(note, cfg, "note failed")
}

// InputWithValidation presents an input prompt with a validation function.
func InputWithValidation(prompt, defaultValue string, validate func(string) error) (string, error) {
	return InputWithValidationConfig(prompt, defaultValue, validate, NewMenuConfig())
}

// InputWithValidationConfig presents an input prompt with validation and custom config.
func InputWithValidationConfig(prompt, defaultValue string, validate func(string) error, cfg *MenuConfig) (string, error) {
	value := defaultValue

	inputField := huh.NewInput().
		Title(prompt).
		Value(&value).
		Validate(validate)

	if err := runFormWithConfig(inputField, cfg, "validated input prompt failed"); err != nil {
		return "", err
	}

	return value, nil
}
