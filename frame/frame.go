// Package frame provides a coordinate-addressed grid of styled cells
// that also behaves as an io.Writer, decoding UTF-8 text and embedded
// style escape sequences as it is written.
//
// # Overview
//
//	f := frame.NewFrame(geometry.NewSize(24, 80), nil)
//	fmt.Fprintf(f, "%shello", style.Serialize(style.New().Bold()))
//
// A nil WidthEstimator falls back to DefaultWidthEstimator (every
// printable rune is one column wide); pass a RuneWidthEstimator for
// CJK/emoji-aware layout.
//
// # Architecture
//
//   - internal/domain/model   — Cell, Frame, WidthEstimator
//   - internal/domain/service — optional WidthEstimator implementations
//   - frame.go (this file)    — public facade
package frame

import (
	"github.com/sile/tuinix/frame/internal/domain/model"
	"github.com/sile/tuinix/frame/internal/domain/service"
	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/style"
)

// Frame is a sparse grid of styled cells. See the Write, Draw and
// Chars methods in internal/domain/model for the text-sink and
// composition rules.
type Frame = model.Frame

// Cell is one styled, possibly multi-column character.
type Cell = model.Cell

// PositionedCell pairs a Position with the Cell a Frame's enumeration
// reports there.
type PositionedCell = model.PositionedCell

// WidthEstimator reports the display width of a single rune.
type WidthEstimator = model.WidthEstimator

// DefaultWidthEstimator treats every printable rune as width 1 and
// every control character as width 0.
type DefaultWidthEstimator = model.DefaultWidthEstimator

// RuneWidthEstimator estimates display width using
// github.com/mattn/go-runewidth, for CJK- and emoji-aware layout.
type RuneWidthEstimator = service.RuneWidthEstimator

// ErrInvalidStyleEscape is the panic value raised by Frame.Write when
// an embedded escape sequence cannot be parsed as a style.
type ErrInvalidStyleEscape = model.ErrInvalidStyleEscape

// NewFrame creates an empty Frame of the given size. A nil estimator
// defaults to DefaultWidthEstimator{}.
func NewFrame(size geometry.Size, estimator WidthEstimator) *Frame {
	return model.NewFrame(size, estimator)
}

// NewCell creates a Cell. Width must be >= 1; callers are responsible
// for dropping zero-width input before calling this.
func NewCell(s style.Style, width int, value rune) Cell {
	return model.NewCell(s, width, value)
}

// Blank returns a single-width blank (space) cell styled with s.
func Blank(s style.Style) Cell {
	return model.Blank(s)
}

// NewRuneWidthEstimator returns a RuneWidthEstimator using default
// (non-CJK-locale) ambiguous-width handling.
func NewRuneWidthEstimator() RuneWidthEstimator {
	return service.NewRuneWidthEstimator()
}
