package ansi

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/render/internal/domain/service"
	"github.com/sile/tuinix/style"
)

func TestWriteOpsEmitsCursorMoveAndRune(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	ops := []service.CellOp{
		{Position: geometry.RowCol(2, 3), Cell: frame.NewCell(style.Reset, 1, 'x')},
	}
	if err := w.WriteOps(ops); err != nil {
		t.Fatal(err)
	}
	w.Flush()

	got := buf.String()
	if !strings.Contains(got, "\x1b[3;4H") {
		t.Errorf("missing cursor move to row 2 col 3 (1-based 3;4): %q", got)
	}
	if !strings.HasSuffix(got, "x") {
		t.Errorf("expected output to end with the written rune: %q", got)
	}
}

func TestWriteOpsSkipsRedundantCursorMove(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	ops := []service.CellOp{
		{Position: geometry.RowCol(0, 0), Cell: frame.NewCell(style.Reset, 1, 'a')},
		{Position: geometry.RowCol(0, 1), Cell: frame.NewCell(style.Reset, 1, 'b')},
	}
	w.WriteOps(ops)
	w.Flush()

	if n := strings.Count(buf.String(), "H"); n != 1 {
		t.Errorf("expected exactly one cursor-move sequence for contiguous cells, got %d: %q", n, buf.String())
	}
}

func TestWriteOpsSkipsRedundantStyleChange(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	bold := style.New().Bold()
	ops := []service.CellOp{
		{Position: geometry.RowCol(0, 0), Cell: frame.NewCell(bold, 1, 'a')},
		{Position: geometry.RowCol(0, 1), Cell: frame.NewCell(bold, 1, 'b')},
	}
	w.WriteOps(ops)
	w.Flush()

	if n := strings.Count(buf.String(), "m"); n != 1 {
		t.Errorf("expected exactly one SGR sequence for a repeated style, got %d: %q", n, buf.String())
	}
}

func TestClearEmitsClearScreenAndHome(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Clear()
	w.Flush()

	got := buf.String()
	if !strings.Contains(got, "\x1b[2J") || !strings.Contains(got, "\x1b[H") {
		t.Errorf("expected clear-screen + home sequences, got %q", got)
	}
}

func TestHideShowCursor(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.HideCursor()
	w.ShowCursor()
	w.Flush()

	got := buf.String()
	if !strings.Contains(got, "\x1b[?25l") || !strings.Contains(got, "\x1b[?25h") {
		t.Errorf("expected hide+show cursor sequences, got %q", got)
	}
}
