// Package render diffs successive frames and emits the minimal ANSI
// byte stream that reproduces the newer one on a real terminal.
//
// A Renderer owns no file descriptor of its own — it writes to
// whatever io.Writer it is given, which lets the terminal package
// (and tests) supply any io.Writer they like.
package render

import (
	"io"

	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/render/internal/domain/service"
	"github.com/sile/tuinix/render/internal/infrastructure/ansi"
)

// Renderer tracks the last frame drawn so that Draw only emits
// changed cells.
type Renderer struct {
	diff    *service.DiffService
	writer  *ansi.Writer
	last    *frame.Frame
	cleared bool // real screen already blank, a fresh baseline doesn't need its own clear
}

// NewRenderer creates a Renderer writing to output.
func NewRenderer(output io.Writer) *Renderer {
	return &Renderer{
		diff:   service.NewDiffService(),
		writer: ansi.NewWriter(output),
	}
}

// Draw diffs next (which must already be finalized, see
// frame.Frame.Finalize) against the last frame drawn and writes the
// changed cells. The cursor is hidden unconditionally first; if
// cursorVisible is true it is then positioned at cursor and shown
// again, otherwise it is left hidden. next becomes the new baseline
// for the following Draw call.
//
// On the very first Draw, and whenever next arrives at a different
// size than the last frame drawn, the real screen is cleared and the
// baseline is reset to a blank frame of next's size, so the diff below
// only emits the cells that actually hold something — not every
// position in the grid.
func (r *Renderer) Draw(next *frame.Frame, cursor geometry.Position, cursorVisible bool) error {
	if err := r.writer.HideCursor(); err != nil {
		return err
	}

	if r.last == nil || r.last.Size() != next.Size() {
		if !r.cleared {
			if err := r.writer.Clear(); err != nil {
				return err
			}
		}
		r.last = frame.NewFrame(next.Size(), nil)
	}
	r.cleared = false

	ops := r.diff.Diff(r.last, next)

	if len(ops) > 0 {
		if err := r.writer.WriteOps(ops); err != nil {
			return err
		}
	}

	if cursorVisible {
		if err := r.writer.MoveCursorTo(cursor); err != nil {
			return err
		}
		if err := r.writer.ShowCursor(); err != nil {
			return err
		}
	}

	if err := r.writer.Flush(); err != nil {
		return err
	}

	r.last = next
	return nil
}

// Reset clears the real screen and forgets the last frame drawn, so
// the next Draw call performs a full redraw. Used after a terminal
// resize, when the previous frame's contents no longer correspond to
// anything on screen.
func (r *Renderer) Reset() error {
	if err := r.writer.Clear(); err != nil {
		return err
	}
	if err := r.writer.Flush(); err != nil {
		return err
	}
	r.last = nil
	r.cleared = true
	return nil
}
