package model

import (
	"testing"

	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/style"
)

func TestWriteStaysWithinSize(t *testing.T) {
	f := NewFrame(geometry.NewSize(3, 5), nil)
	f.Write([]byte("abcdefghij\nklmno\npqrstuvwxyz"))

	for _, pc := range f.Chars() {
		if !f.size.Contains(pc.Position) {
			t.Fatalf("position %+v escaped frame size %+v", pc.Position, f.size)
		}
	}
}

func TestNewlineAdvancesRowResetsCol(t *testing.T) {
	f := NewFrame(geometry.NewSize(5, 10), nil)
	f.Write([]byte("ab\ncd\n"))

	want := geometry.RowCol(2, 0)
	if f.Cursor() != want {
		t.Errorf("cursor = %+v, want %+v", f.Cursor(), want)
	}
}

func TestNoNewlineLeavesRowUnchanged(t *testing.T) {
	f := NewFrame(geometry.NewSize(5, 10), nil)
	f.Write([]byte("abc"))
	if f.Cursor().Row != 0 {
		t.Errorf("row = %d, want 0", f.Cursor().Row)
	}
	if f.Cursor().Col != 3 {
		t.Errorf("col = %d, want 3", f.Cursor().Col)
	}
}

// widthMap is a test WidthEstimator returning configured widths for
// specific runes and 1 for everything else.
type widthMap map[rune]int

func (m widthMap) Width(r rune) int {
	if w, ok := m[r]; ok {
		return w
	}
	return 1
}

func TestWideCharacterPlacement(t *testing.T) {
	est := widthMap{'お': 2, 'は': 2, 'よ': 2, 'う': 2}
	f := NewFrame(geometry.NewSize(10, 20), est)
	f.Write([]byte("おはよう"))

	if got := f.Cursor(); got != geometry.RowCol(0, 8) {
		t.Fatalf("cursor = %+v, want (0,8)", got)
	}

	wantCols := []int{0, 2, 4, 6}
	for _, col := range wantCols {
		cell, ok := f.cells[geometry.RowCol(0, col)]
		if !ok {
			t.Fatalf("expected a cell at col %d", col)
		}
		if cell.Width != 2 {
			t.Errorf("cell at col %d has width %d, want 2", col, cell.Width)
		}
	}

	shadowCols := []int{1, 3, 5, 7}
	for _, col := range shadowCols {
		if _, ok := f.cells[geometry.RowCol(0, col)]; ok {
			t.Errorf("shadow col %d should hold no cell", col)
		}
	}
}

func TestZeroWidthCharacterDropped(t *testing.T) {
	est := widthMap{'​': 0}
	f := NewFrame(geometry.NewSize(5, 5), est)
	f.Write([]byte(string('​')))

	if f.Cursor() != geometry.ZeroPosition {
		t.Errorf("cursor = %+v, want zero", f.Cursor())
	}
	if len(f.positions) != 0 {
		t.Errorf("expected no cells inserted, got %d", len(f.positions))
	}
}

func TestOverflowWriteIsSilentButAdvancesCursor(t *testing.T) {
	f := NewFrame(geometry.NewSize(1, 3), nil)
	f.Write([]byte("abcdef"))

	if f.Cursor().Col != 6 {
		t.Errorf("cursor col = %d, want 6 (advances regardless of overflow)", f.Cursor().Col)
	}
	if _, ok := f.cells[geometry.RowCol(0, 3)]; ok {
		t.Error("no cell should be placed past the right edge")
	}
}

func TestEmbeddedStyleEscapeChangesCurrentStyle(t *testing.T) {
	f := NewFrame(geometry.NewSize(2, 10), nil)
	bold := style.New().Bold()
	f.Write([]byte(style.Serialize(bold) + "x"))

	cell, ok := f.cells[geometry.ZeroPosition]
	if !ok {
		t.Fatal("expected a cell at origin")
	}
	if !cell.Style.Equals(bold) {
		t.Errorf("cell style = %+v, want bold", cell.Style)
	}
}

func TestInvalidStyleEscapePanics(t *testing.T) {
	f := NewFrame(geometry.NewSize(2, 10), nil)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for an invalid style escape")
		}
		if _, ok := r.(*ErrInvalidStyleEscape); !ok {
			t.Errorf("panic value = %#v, want *ErrInvalidStyleEscape", r)
		}
	}()
	f.Write([]byte("\x1b[1m"))
}

func TestDrawComposesSubFrame(t *testing.T) {
	outer := NewFrame(geometry.NewSize(5, 5), nil)
	inner := NewFrame(geometry.NewSize(2, 2), nil)
	inner.Write([]byte("X"))

	outer.Draw(geometry.RowCol(1, 1), inner)

	cell, ok := outer.cells[geometry.RowCol(1, 1)]
	if !ok || cell.Value != 'X' {
		t.Fatalf("expected 'X' composed at (1,1), got %+v ok=%v", cell, ok)
	}
	if outer.Cursor() != geometry.ZeroPosition {
		t.Error("composition must not move the outer cursor")
	}
}

func TestDrawSkipsOutOfBoundsCells(t *testing.T) {
	outer := NewFrame(geometry.NewSize(2, 2), nil)
	inner := NewFrame(geometry.NewSize(5, 5), nil)
	inner.Write([]byte("ab\ncd\nef"))

	outer.Draw(geometry.RowCol(1, 1), inner)

	for pos := range outer.cells {
		if !outer.size.Contains(pos) {
			t.Fatalf("position %+v escaped outer frame bounds", pos)
		}
	}
}

func TestDrawClearsWideCellShadowOnOverwrite(t *testing.T) {
	est := widthMap{'W': 2}
	outer := NewFrame(geometry.NewSize(3, 5), est)
	outer.Write([]byte("W"))
	if _, ok := outer.cells[geometry.RowCol(0, 1)]; ok {
		t.Fatal("setup: shadow col should be empty before overwrite")
	}

	overlay := NewFrame(geometry.NewSize(1, 1), nil)
	overlay.Write([]byte("y"))
	outer.Draw(geometry.RowCol(0, 1), overlay)

	if _, ok := outer.cells[geometry.RowCol(0, 0)]; ok {
		t.Error("overwritten wide cell's head should be removed")
	}
	cell, ok := outer.cells[geometry.RowCol(0, 1)]
	if !ok || cell.Value != 'y' {
		t.Fatalf("expected 'y' at (0,1), got %+v ok=%v", cell, ok)
	}
}

func TestFinalizeClonesIndependently(t *testing.T) {
	f := NewFrame(geometry.NewSize(2, 2), nil)
	f.Write([]byte("a"))

	clone := f.Finalize()
	f.Write([]byte("b"))

	if _, ok := clone.cells[geometry.RowCol(0, 1)]; ok {
		t.Error("finalize must produce an independent snapshot")
	}
}

func TestCharsEnumerationCoversFullSize(t *testing.T) {
	f := NewFrame(geometry.NewSize(2, 3), nil)
	f.Write([]byte("a"))

	chars := f.Chars()
	if len(chars) != 6 {
		t.Fatalf("got %d positions, want 6 (2x3)", len(chars))
	}
	if chars[0].Cell.Value != 'a' {
		t.Errorf("first cell = %+v, want 'a'", chars[0].Cell)
	}
	for _, pc := range chars[1:] {
		if pc.Cell.Value != ' ' {
			t.Errorf("position %+v = %q, want blank", pc.Position, pc.Cell.Value)
		}
	}
}
