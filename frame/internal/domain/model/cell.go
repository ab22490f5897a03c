// Package model holds frame's aggregate: Cell and Frame.
package model

import "github.com/sile/tuinix/style"

// Cell is one styled character occupying one or more terminal columns.
//
// Zero value: Cell{} has Width 0, which is not a valid placed cell —
// Frame never stores a Cell with Width < 1 (see NewCell).
type Cell struct {
	Style style.Style
	Width int
	Value rune
}

// NewCell creates a Cell. Width must be >= 1; callers (the Frame text
// sink) are responsible for dropping zero-width input before calling this.
func NewCell(s style.Style, width int, value rune) Cell {
	return Cell{Style: s, Width: width, Value: value}
}

// Blank returns a single-width blank (space) cell styled with s — the
// cell the frame's enumeration reports for unwritten positions.
func Blank(s style.Style) Cell {
	return Cell{Style: s, Width: 1, Value: ' '}
}

// Equals reports whether two cells have identical style, width, and value.
func (c Cell) Equals(other Cell) bool {
	return c == other
}
