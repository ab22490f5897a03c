// Package service computes the minimal set of cell changes between two
// finalized frames of identical size.
package service

import (
	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
)

// CellOp describes a single changed cell the renderer must emit.
type CellOp struct {
	Position geometry.Position
	Cell     frame.Cell
}

// DiffService compares two same-size frames cell by cell.
type DiffService struct{}

// NewDiffService creates a DiffService.
func NewDiffService() *DiffService {
	return &DiffService{}
}

// Diff returns the cells that differ between old and next, in
// row-major order. If the two frames differ in size, every cell of
// next is returned (there is no meaningful old state to compare
// against). Comparison is keyed by Position rather than by a fixed
// per-row stride: a row holding a wide (width >= 2) cell yields fewer
// Chars() entries than its column count, since the shadow column it
// covers is never enumerated on its own, so old and next can disagree
// on how many entries a given row contributes.
func (s *DiffService) Diff(old, next *frame.Frame) []CellOp {
	if old == nil || next.Size() != old.Size() {
		return s.full(next)
	}

	oldByPos := make(map[geometry.Position]frame.Cell, next.Size().Rows*next.Size().Cols)
	for _, pc := range old.Chars() {
		oldByPos[pc.Position] = pc.Cell
	}

	var ops []CellOp
	for _, pc := range next.Chars() {
		if o, ok := oldByPos[pc.Position]; ok && o.Equals(pc.Cell) {
			continue
		}
		ops = append(ops, CellOp{Position: pc.Position, Cell: pc.Cell})
	}
	return ops
}

// full returns every cell of next as an op: the fallback when there is
// no old frame to compare against, or its size no longer matches.
func (s *DiffService) full(next *frame.Frame) []CellOp {
	chars := next.Chars()
	ops := make([]CellOp, len(chars))
	for i, pc := range chars {
		ops[i] = CellOp{Position: pc.Position, Cell: pc.Cell}
	}
	return ops
}
