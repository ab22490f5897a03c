package service

import (
	"testing"

	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
)

func TestDiffNilOldReturnsFullFrame(t *testing.T) {
	f := frame.NewFrame(geometry.NewSize(2, 3), nil)
	f.Write([]byte("ab"))

	d := NewDiffService()
	ops := d.Diff(nil, f.Finalize())

	if len(ops) != 6 {
		t.Fatalf("got %d ops, want 6 (full 2x3 frame)", len(ops))
	}
}

func TestDiffOnlyChangedCells(t *testing.T) {
	old := frame.NewFrame(geometry.NewSize(1, 5), nil)
	old.Write([]byte("abcde"))

	next := frame.NewFrame(geometry.NewSize(1, 5), nil)
	next.Write([]byte("abXde"))

	d := NewDiffService()
	ops := d.Diff(old.Finalize(), next.Finalize())

	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1", len(ops))
	}
	if ops[0].Position != geometry.RowCol(0, 2) || ops[0].Cell.Value != 'X' {
		t.Errorf("got %+v", ops[0])
	}
}

func TestDiffNoChangesReturnsNoOps(t *testing.T) {
	old := frame.NewFrame(geometry.NewSize(2, 2), nil)
	old.Write([]byte("ab\ncd"))
	next := frame.NewFrame(geometry.NewSize(2, 2), nil)
	next.Write([]byte("ab\ncd"))

	d := NewDiffService()
	ops := d.Diff(old.Finalize(), next.Finalize())

	if len(ops) != 0 {
		t.Fatalf("got %d ops, want 0", len(ops))
	}
}

func TestDiffSizeChangeReturnsFullFrame(t *testing.T) {
	old := frame.NewFrame(geometry.NewSize(2, 2), nil)
	old.Write([]byte("ab\ncd"))
	next := frame.NewFrame(geometry.NewSize(3, 3), nil)
	next.Write([]byte("abc"))

	d := NewDiffService()
	ops := d.Diff(old.Finalize(), next.Finalize())

	if len(ops) != 9 {
		t.Fatalf("got %d ops, want 9 (full 3x3 frame)", len(ops))
	}
}

// wideEstimator reports width 2 for 'W' and 1 for everything else, so
// tests can exercise rows whose cell count doesn't match their column
// count.
type wideEstimator struct{}

func (wideEstimator) Width(r rune) int {
	if r == 'W' {
		return 2
	}
	return 1
}

func TestDiffHandlesWideCellsWithoutPanicking(t *testing.T) {
	old := frame.NewFrame(geometry.NewSize(1, 4), wideEstimator{})
	old.Write([]byte("abcd"))

	next := frame.NewFrame(geometry.NewSize(1, 4), wideEstimator{})
	next.Write([]byte("Wcd"))

	d := NewDiffService()
	ops := d.Diff(old.Finalize(), next.Finalize())

	if len(ops) == 0 {
		t.Fatal("expected at least the wide cell to be reported as changed")
	}
	found := false
	for _, op := range ops {
		if op.Position == geometry.RowCol(0, 0) && op.Cell.Value == 'W' && op.Cell.Width == 2 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a changed op for the wide cell at (0,0), got %+v", ops)
	}
}

func TestDiffSkipsUnchangedRowsEntirely(t *testing.T) {
	old := frame.NewFrame(geometry.NewSize(3, 3), nil)
	old.Write([]byte("aaa\nbbb\nccc"))
	next := frame.NewFrame(geometry.NewSize(3, 3), nil)
	next.Write([]byte("aaa\nbXb\nccc"))

	d := NewDiffService()
	ops := d.Diff(old.Finalize(), next.Finalize())

	if len(ops) != 1 {
		t.Fatalf("got %d ops, want 1 (only the changed row contributes)", len(ops))
	}
	if ops[0].Position.Row != 1 {
		t.Errorf("changed op in row %d, want row 1", ops[0].Position.Row)
	}
}
