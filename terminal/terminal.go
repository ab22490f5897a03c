// Package terminal is the exclusive owner of the controlling TTY: it
// acquires raw mode and the alternate screen, multiplexes stdin with
// a SIGWINCH self-pipe into typed events, and draws frames with only
// the changed cells rewritten.
//
// # Overview
//
// New acquires the terminal; exactly one Terminal may exist per
// process at a time. PollEvent blocks (optionally with a timeout) for
// the next keyboard, mouse, or resize event. Draw finalizes a
// frame.Frame and renders it differentially against the last one
// drawn. Close restores everything New changed.
//
//	term, err := terminal.New()
//	if err != nil { ... }
//	defer term.RecoverAndRestore()
//	defer term.Close()
//
// # Architecture
//
//   - internal/domain/model          — Event, the exported error kinds
//   - internal/infrastructure/unix   — termios, TIOCGWINSZ, the SIGWINCH
//     self-pipe, and the select-based readiness wait
//   - internal/application           — Terminal, the orchestrator
//   - terminal.go (this file)        — public facade
package terminal

import (
	"time"

	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/input"
	"github.com/sile/tuinix/terminal/internal/application"
	"github.com/sile/tuinix/terminal/internal/domain/model"
	termunix "github.com/sile/tuinix/terminal/internal/infrastructure/unix"
)

// EventKind discriminates the shape of an Event.
type EventKind = model.EventKind

const (
	EventKindKey    = model.EventKindKey
	EventKindMouse  = model.EventKindMouse
	EventKindResize = model.EventKindResize
)

// Event is a single item from PollEvent: a decoded keyboard or mouse
// event, or a window-resize notification carrying the new size.
type Event = model.Event

// Terminal is the exclusive owner of the controlling TTY.
type Terminal struct {
	inner *application.Terminal
}

// New acquires the controlling TTY. It fails if a Terminal already
// exists in this process (ErrAlreadyAcquired) or if stdin/stdout are
// not TTYs (ErrNotATerminal).
func New() (*Terminal, error) {
	inner, err := application.New()
	if err != nil {
		return nil, err
	}
	return &Terminal{inner: inner}, nil
}

// Size returns the most recently observed terminal dimensions.
func (t *Terminal) Size() geometry.Size { return t.inner.Size() }

// InputFD returns the stdin file descriptor.
func (t *Terminal) InputFD() int { return t.inner.InputFD() }

// OutputFD returns the stdout file descriptor.
func (t *Terminal) OutputFD() int { return t.inner.OutputFD() }

// SignalFD returns the resize self-pipe's read end.
func (t *Terminal) SignalFD() int { return t.inner.SignalFD() }

// Reader exposes the buffered input.Reader backing PollEvent, for
// callers integrating an external readiness poller: they can Feed it
// bytes they read themselves, or drain it with ParseBuffered.
func (t *Terminal) Reader() *input.Reader { return t.inner.Reader() }

// PollEvent waits up to timeout for the next event. A negative
// timeout blocks indefinitely. A timeout with no event ready returns
// (nil, nil).
func (t *Terminal) PollEvent(timeout time.Duration) (*Event, error) {
	return t.inner.PollEvent(timeout)
}

// Draw finalizes f and renders the cells that differ from the last
// frame drawn. When cursorVisible is true the cursor is moved to
// cursor and shown; otherwise it is left hidden.
func (t *Terminal) Draw(f *frame.Frame, cursor geometry.Position, cursorVisible bool) error {
	return t.inner.Draw(f, cursor, cursorVisible)
}

// RecoverAndRestore recovers a panic in progress, restoring termios
// and leaving the alternate screen before re-panicking. Defer it
// immediately after New succeeds.
func (t *Terminal) RecoverAndRestore() {
	// recover only works when called directly by the deferred function,
	// so the panic is recovered here and re-raised under a deferred call
	// of the inner method, which restores and re-panics.
	if r := recover(); r != nil {
		func() {
			defer t.inner.RecoverAndRestore()
			panic(r)
		}()
	}
}

// Close releases the terminal: raw mode and the alternate screen are
// undone and the process-wide latch is cleared, even if the
// underlying restoration calls fail.
func (t *Terminal) Close() error {
	return t.inner.Close()
}

// SetNonblock puts fd into non-blocking mode, for callers integrating
// their own event loop around InputFD/SignalFD.
func SetNonblock(fd int) error {
	return termunix.SetNonblock(fd)
}

// IsRetryable reports whether err is the "would block" or
// "interrupted" condition an external poller should retry rather than
// treat as a failure.
func IsRetryable(err error) bool {
	return termunix.IsRetryable(err)
}
