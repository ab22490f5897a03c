// Package application owns the Terminal: the single process-wide
// holder of the controlling TTY, wiring raw mode, the alternate
// screen, the SIGWINCH self-pipe, the input reader, and the
// differential renderer into one acquire/poll/draw/release lifecycle.
package application

import (
	"bufio"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/input"
	"github.com/sile/tuinix/render"
	"github.com/sile/tuinix/terminal/internal/domain/model"
	termunix "github.com/sile/tuinix/terminal/internal/infrastructure/unix"
)

// acquired is the process-wide "exactly one Terminal" latch.
var acquired int32

const (
	seqEnterAltScreen = "\x1b[?1049h"
	seqLeaveAltScreen = "\x1b[?1049l"
	seqHideCursor     = "\x1b[?25l"
	seqShowCursor     = "\x1b[?25h"
)

// Terminal is the exclusive owner of the controlling TTY: raw mode,
// alternate screen, the SIGWINCH self-pipe, the input reader, and the
// cached last frame all live here.
type Terminal struct {
	stdin  *os.File
	stdout *os.File
	out    *bufio.Writer
	reader *input.Reader
	render *render.Renderer
	signal *termunix.SignalPipe
	saved  *termunix.Termios
	size   geometry.Size
	closed bool
}

// New acquires the controlling TTY: verifies stdin/stdout are
// terminals, snapshots termios, installs the SIGWINCH self-pipe,
// queries the size, enters raw mode, and switches to the alternate
// screen with the cursor hidden. Only one Terminal may exist per
// process at a time.
func New() (*Terminal, error) {
	if !atomic.CompareAndSwapInt32(&acquired, 0, 1) {
		return nil, model.ErrAlreadyAcquired{}
	}

	t, err := acquire()
	if err != nil {
		atomic.StoreInt32(&acquired, 0)
		return nil, err
	}
	return t, nil
}

func acquire() (*Terminal, error) {
	stdin, stdout := os.Stdin, os.Stdout

	if !isTerminal(stdin.Fd()) {
		return nil, model.ErrNotATerminal{Stream: "stdin"}
	}
	if !isTerminal(stdout.Fd()) {
		return nil, model.ErrNotATerminal{Stream: "stdout"}
	}

	fd := int(stdin.Fd())
	saved, err := termunix.GetTermios(fd)
	if err != nil {
		return nil, model.ErrOsCall{Call: "tcgetattr", Err: err}
	}

	sigPipe, err := termunix.NewSignalPipe()
	if err != nil {
		return nil, model.ErrOsCall{Call: "pipe", Err: err}
	}

	size, err := termunix.WindowSize(int(stdout.Fd()))
	if err != nil {
		sigPipe.Close()
		return nil, model.ErrOsCall{Call: "ioctl(TIOCGWINSZ)", Err: err}
	}

	if err := termunix.SetRaw(fd, saved); err != nil {
		sigPipe.Close()
		return nil, model.ErrOsCall{Call: "tcsetattr", Err: err}
	}

	out := bufio.NewWriter(stdout)
	if _, err := io.WriteString(out, seqEnterAltScreen+seqHideCursor); err != nil {
		termunix.SetTermios(fd, saved)
		sigPipe.Close()
		return nil, model.ErrOsCall{Call: "write", Err: err}
	}
	if err := out.Flush(); err != nil {
		termunix.SetTermios(fd, saved)
		sigPipe.Close()
		return nil, model.ErrOsCall{Call: "write", Err: err}
	}

	return &Terminal{
		stdin:  stdin,
		stdout: stdout,
		out:    out,
		reader: input.NewReader(stdin),
		render: render.NewRenderer(stdout),
		signal: sigPipe,
		saved:  saved,
		size:   size,
	}, nil
}

// Size returns the most recently observed terminal size.
func (t *Terminal) Size() geometry.Size { return t.size }

// InputFD returns the stdin file descriptor, for integration with an
// external event loop.
func (t *Terminal) InputFD() int { return int(t.stdin.Fd()) }

// OutputFD returns the stdout file descriptor.
func (t *Terminal) OutputFD() int { return int(t.stdout.Fd()) }

// SignalFD returns the resize self-pipe's read end.
func (t *Terminal) SignalFD() int { return t.signal.ReadFD() }

// Reader exposes the buffered input reader, so an external poller can
// feed it bytes it already read or drain it without blocking.
func (t *Terminal) Reader() *input.Reader { return t.reader }

// PollEvent waits up to timeout (negative blocks indefinitely) for the
// next keyboard, mouse, or resize event. Buffered input is drained
// before waiting on readiness; a timeout expiry returns (nil, nil).
func (t *Terminal) PollEvent(timeout time.Duration) (*model.Event, error) {
	if ev, ok := t.reader.ParseBuffered(); ok {
		e := model.FromInputEvent(ev)
		return &e, nil
	}

	deadline, hasDeadline := deadlineFor(timeout)
	for {
		remaining := timeout
		if hasDeadline {
			remaining = time.Until(deadline)
			if remaining <= 0 {
				return nil, nil
			}
		}

		ready, err := termunix.WaitReadiness(t.InputFD(), t.signal.ReadFD(), remaining)
		if err != nil {
			return nil, model.ErrOsCall{Call: "select", Err: err}
		}
		if !ready.Input && !ready.Signal {
			return nil, nil
		}

		if ready.Input {
			buf := make([]byte, 1024)
			n, err := t.stdin.Read(buf)
			if n == 0 && (err == nil || err == io.EOF) {
				return nil, model.ErrUnexpectedEOF{}
			}
			if err != nil {
				return nil, model.ErrOsCall{Call: "read", Err: err}
			}
			t.reader.Feed(buf[:n])
			if ev, ok := t.reader.ParseBuffered(); ok {
				e := model.FromInputEvent(ev)
				return &e, nil
			}
		}

		if ready.Signal {
			if err := t.signal.Drain(); err != nil {
				return nil, model.ErrOsCall{Call: "read", Err: err}
			}
			size, err := termunix.WindowSize(int(t.stdout.Fd()))
			if err != nil {
				return nil, model.ErrOsCall{Call: "ioctl(TIOCGWINSZ)", Err: err}
			}
			t.size = size
			e := model.NewResizeEvent(size)
			return &e, nil
		}
	}
}

// Draw finalizes frame and renders only the cells that changed since
// the last Draw. If cursorVisible is true, the cursor is positioned
// at cursor and shown; otherwise it stays hidden.
func (t *Terminal) Draw(f *frame.Frame, cursor geometry.Position, cursorVisible bool) error {
	final := f.Finalize()
	if err := t.render.Draw(final, cursor, cursorVisible); err != nil {
		return model.ErrOsCall{Call: "write", Err: err}
	}
	return nil
}

// Close releases the terminal: the alternate screen is left, the
// cursor shown, raw mode undone, the signal pipe closed, and the
// process-wide latch cleared. Failures are suppressed so the latch is
// always cleared.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	defer atomic.StoreInt32(&acquired, 0)

	io.WriteString(t.out, seqShowCursor+seqLeaveAltScreen)
	t.out.Flush()
	termunix.SetTermios(int(t.stdin.Fd()), t.saved)
	t.signal.Close()
	return nil
}

// RecoverAndRestore is the Go-idiomatic stand-in for an installed
// panic hook: Go exposes no global hook to run before a panic
// unwinds, so callers defer this immediately after New succeeds. It
// restores the saved termios and leaves the alternate screen using
// only the immutable acquisition-time snapshot, then re-panics so the
// program's own recovery (or crash) behavior is unaffected.
func (t *Terminal) RecoverAndRestore() {
	if r := recover(); r != nil {
		io.WriteString(t.stdout, seqShowCursor+seqLeaveAltScreen)
		termunix.SetTermios(int(t.stdin.Fd()), t.saved)
		panic(r)
	}
}

// isTerminal reports whether fd refers to a TTY by attempting to read
// its termios attributes: regular files and pipes fail this ioctl
// with ENOTTY.
func isTerminal(fd uintptr) bool {
	_, err := termunix.GetTermios(int(fd))
	return err == nil
}

func deadlineFor(timeout time.Duration) (time.Time, bool) {
	if timeout < 0 {
		return time.Time{}, false
	}
	return time.Now().Add(timeout), true
}
