package testutil

import (
	"context"
	"sync"

	"github.com/mrz1836/tenets/internal/domain"
)

// ChooseCall records one ChooseBeliefs invocation.
type ChooseCall struct {
	DisplayName  string
	ReligionName string
	Beliefs      []domain.Belief
}

// RecordingChooser is a belief chooser that records calls and returns Err.
type RecordingChooser struct {
	Err error

	mu    sync.Mutex
	calls []ChooseCall
}

// ChooseBeliefs records the call.
func (c *RecordingChooser) ChooseBeliefs(_ context.Context, displayName, religionName string, beliefs []domain.Belief) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, ChooseCall{
		DisplayName:  displayName,
		ReligionName: religionName,
		Beliefs:      append([]domain.Belief(nil), beliefs...),
	})
	return c.Err
}

// Calls returns a copy of the recorded calls.
func (c *RecordingChooser) Calls() []ChooseCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ChooseCall(nil), c.calls...)
}
