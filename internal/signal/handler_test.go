package signal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_SignalCancelsContext(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	assert.False(t, h.WasInterrupted())
	require.NoError(t, h.Context().Err())

	h.fire()

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.True(t, h.WasInterrupted())
	select {
	case <-h.Interrupted():
	default:
		t.Fatal("interrupted channel should be closed")
	}
}

func TestHandler_SecondSignalIsIgnored(t *testing.T) {
	h := NewHandler(context.Background())
	defer h.Stop()

	h.fire()
	assert.NotPanics(t, h.fire)
}

func TestHandler_StopCancelsWithoutInterrupt(t *testing.T) {
	h := NewHandler(context.Background())

	h.Stop()
	h.Stop()

	require.ErrorIs(t, h.Context().Err(), context.Canceled)
	assert.False(t, h.WasInterrupted())
}

func TestHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	h := NewHandler(parent)
	defer h.Stop()

	cancel()

	select {
	case <-h.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("handler context should follow its parent")
	}
	assert.False(t, h.WasInterrupted())
}

func TestExitInterrupted(t *testing.T) {
	assert.Equal(t, 130, ExitInterrupted)
}
