// Package geometry provides the row/column size and position
// arithmetic that every other tuinix package builds on: Size, Position,
// and Region.
//
// # Architecture
//
// Following the layering used throughout tuinix:
//   - internal/domain/value — the actual value objects and arithmetic
//   - geometry.go (this file) — public aliases re-exporting them
//
// All three types are plain, comparable structs: use `==` freely,
// there is no hidden internal state to keep in sync.
package geometry

import "github.com/sile/tuinix/geometry/internal/domain/value"

// Size is a non-negative {rows, cols} extent.
//
// Zero value: Size{} is the empty size, a valid value meaning zero
// rows or zero columns (see Empty).
type Size = value.Size

// Position is a 0-indexed {row, col} coordinate, ordered row-major.
//
// Zero value: Position{} is the origin, a valid position.
type Position = value.Position

// Region is a rectangle: a Position anchor plus a Size extent.
//
// Zero value: Region{} is the empty region at the origin, valid.
type Region = value.Region

// ZeroPosition is the origin, row 0 column 0.
var ZeroPosition = value.ZeroPosition

// NewSize creates a Size, clamping negative inputs to zero.
func NewSize(rows, cols int) Size { return value.NewSize(rows, cols) }

// RowCol creates a Position from a row and a column.
func RowCol(row, col int) Position { return value.RowCol(row, col) }

// Row creates a Position at the given row, column 0.
func Row(row int) Position { return value.Row(row) }

// Col creates a Position at row 0, the given column.
func Col(col int) Position { return value.Col(col) }

// NewRegion creates a Region from a position and a size.
func NewRegion(pos Position, size Size) Region { return value.NewRegion(pos, size) }
