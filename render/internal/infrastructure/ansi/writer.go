// Package ansi turns a stream of cell operations into the minimal
// ANSI byte sequence that reproduces them on a real terminal.
package ansi

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/render/internal/domain/service"
	"github.com/sile/tuinix/style"
)

const (
	csi = "\x1b["

	clearScreen = csi + "2J"
	cursorHome  = csi + "H"
	cursorHide  = csi + "?25l"
	cursorShow  = csi + "?25h"
)

// Writer emits cell operations as ANSI escape sequences, tracking
// enough state (cursor position, current style) to skip redundant
// move-cursor and SGR sequences between consecutive writes.
type Writer struct {
	buf *bufio.Writer

	cursorKnown bool
	cursor      geometry.Position

	styleKnown bool
	style      style.Style
}

// NewWriter creates a Writer over output.
func NewWriter(output io.Writer) *Writer {
	return &Writer{buf: bufio.NewWriter(output)}
}

// Clear emits a full screen clear and moves the cursor home,
// invalidating the writer's cursor/style tracking (the screen state
// downstream no longer matches whatever this writer last assumed).
func (w *Writer) Clear() error {
	if _, err := w.buf.WriteString(clearScreen + cursorHome); err != nil {
		return err
	}
	w.cursorKnown = false
	w.styleKnown = false
	return nil
}

// HideCursor hides the terminal cursor.
func (w *Writer) HideCursor() error {
	_, err := w.buf.WriteString(cursorHide)
	return err
}

// ShowCursor shows the terminal cursor.
func (w *Writer) ShowCursor() error {
	_, err := w.buf.WriteString(cursorShow)
	return err
}

// moveCursor emits a cursor-position sequence unless the writer
// believes the cursor is already there.
func (w *Writer) moveCursor(pos geometry.Position) error {
	if w.cursorKnown && w.cursor == pos {
		return nil
	}
	if _, err := fmt.Fprintf(w.buf, "%s%d;%dH", csi, pos.Row+1, pos.Col+1); err != nil {
		return err
	}
	w.cursorKnown = true
	w.cursor = pos
	return nil
}

// setStyle emits an SGR sequence unless the writer believes the
// current style already matches s.
func (w *Writer) setStyle(s style.Style) error {
	if w.styleKnown && w.style.Equals(s) {
		return nil
	}
	if _, err := w.buf.WriteString(style.Serialize(s)); err != nil {
		return err
	}
	w.styleKnown = true
	w.style = s
	return nil
}

// WriteOps writes every op in order: move to its position (if not
// already there), switch style (if different from the last emitted
// one), then the rune itself.
func (w *Writer) WriteOps(ops []service.CellOp) error {
	for _, op := range ops {
		if err := w.moveCursor(op.Position); err != nil {
			return err
		}
		if err := w.setStyle(op.Cell.Style); err != nil {
			return err
		}
		if _, err := w.buf.WriteRune(op.Cell.Value); err != nil {
			return err
		}
		w.cursor = geometry.RowCol(op.Position.Row, op.Position.Col+op.Cell.Width)
	}
	return nil
}

// MoveCursorTo positions the real terminal cursor at pos — used after
// a draw to place it where the application's frame says it should be.
func (w *Writer) MoveCursorTo(pos geometry.Position) error {
	return w.moveCursor(pos)
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.buf.Flush()
}
