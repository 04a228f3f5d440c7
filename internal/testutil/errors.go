// Package testutil provides testing helpers for tenets.
//
// This package contains mock errors and fakes shared across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
var (
	// ErrMockChooserFailed simulates the religion manager refusing a selection.
	ErrMockChooserFailed = errors.New("belief chooser failed")

	// ErrMockSaveFailed simulates a game save that cannot be written.
	ErrMockSaveFailed = errors.New("save failed")

	// ErrMockNotFound indicates a mock resource was not found.
	ErrMockNotFound = errors.New("not found")
)
