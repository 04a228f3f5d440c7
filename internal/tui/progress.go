package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar wraps the bubbles progress bar with tenets styling.
// It renders statically and falls back to a solid fill under NO_COLOR.
type ProgressBar struct {
	bar   progress.Model
	width int
}

// ProgressOption is a functional option for configuring a ProgressBar.
type ProgressOption func(*ProgressBar)

// WithWidth sets the progress bar width.
func WithWidth(w int) ProgressOption {
	return func(pb *ProgressBar) {
		pb.SetWidth(w)
	}
}

// NewProgressBar creates a progress bar of the given width.
func NewProgressBar(width int, opts ...ProgressOption) *ProgressBar {
	var bar progress.Model

	if HasColorSupport() {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithScaledGradient(ColorWarning.Dark, ColorSuccess.Dark),
			progress.WithoutPercentage(),
		)
	} else {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithSolidFill("#808080"),
			progress.WithoutPercentage(),
		)
	}

	pb := &ProgressBar{
		bar:   bar,
		width: width,
	}

	for _, opt := range opts {
		opt(pb)
	}

	return pb
}

// Render returns the bar for percent, clamped to 0.0-1.0.
func (pb *ProgressBar) Render(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	return pb.bar.ViewAs(percent)
}

// RenderCount renders done out of total followed by a "done/total" counter.
// A zero total renders as complete.
func (pb *ProgressBar) RenderCount(done, total int) string {
	percent := 1.0
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	return pb.Render(percent) + " " + FormatCounter(done, total)
}

// Width returns the current width of the progress bar.
func (pb *ProgressBar) Width() int {
	return pb.width
}

// SetWidth updates the progress bar width.
func (pb *ProgressBar) SetWidth(w int) {
	pb.width = w
	pb.bar.Width = w
}

// FormatCounter formats progress as "done/total" (e.g., "2/3").
func FormatCounter(done, total int) string {
	return fmt.Sprintf("%d/%d", done, total)
}
