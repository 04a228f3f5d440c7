// Package signal turns SIGINT and SIGTERM into context cancellation for
// tenets commands, so a command waiting on the save lock or a prompt stops
// cleanly instead of being killed mid-write.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ExitInterrupted is the conventional exit code after SIGINT (128 + 2).
const ExitInterrupted = 130

// Handler cancels its context on the first SIGINT or SIGTERM.
type Handler struct {
	ctx         context.Context //nolint:containedctx // the handler owns this context
	cancel      context.CancelFunc
	signals     chan os.Signal
	interrupted chan struct{}
	stopped     chan struct{}
	fireOnce    sync.Once
	stopOnce    sync.Once
}

// NewHandler starts listening for signals. Call Stop when the command ends.
//
//	h := signal.NewHandler(ctx)
//	defer h.Stop()
//	err := run(h.Context())
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		signals:     make(chan os.Signal, 1),
		interrupted: make(chan struct{}),
		stopped:     make(chan struct{}),
	}

	signal.Notify(h.signals, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context is canceled when a signal arrives or Stop is called.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted is closed once a signal has been received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// WasInterrupted reports whether a signal has been received.
func (h *Handler) WasInterrupted() bool {
	select {
	case <-h.interrupted:
		return true
	default:
		return false
	}
}

// Stop stops listening and cancels the context. It is safe to call twice.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.signals)
		close(h.stopped)
		h.cancel()
	})
}

// fire handles a signal. Only the first one has any effect.
func (h *Handler) fire() {
	h.fireOnce.Do(func() {
		close(h.interrupted)
		h.cancel()
	})
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.stopped:
			return
		case <-h.ctx.Done():
			return
		case <-h.signals:
			h.fire()
		}
	}
}
