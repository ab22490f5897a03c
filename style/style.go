// Package style provides an immutable terminal-style value that
// round-trips through a canonical ANSI SGR escape sequence.
//
// # Overview
//
// A Style carries the seven boolean text attributes (bold, italic,
// underline, blink, reverse, dim, strikethrough) plus an optional
// foreground and background Color. It is built fluently:
//
//	s := style.New().Bold().FgColor(style.Red)
//	fmt.Print(style.Serialize(s), "hello", style.Serialize(style.Reset))
//
// Serialize always emits the same canonical form for a given Style,
// and Parse is its exact inverse — this is what lets frame's text-sink
// recognize and replay style changes embedded in a byte stream (see
// the frame package).
//
// # Architecture
//
//   - internal/domain/value      — Color
//   - internal/domain/model      — Style aggregate and its builders
//   - internal/infrastructure/ansi — Serialize/Parse (the wire format)
//   - style.go (this file)       — public facade
package style

import (
	"github.com/sile/tuinix/style/internal/domain/model"
	"github.com/sile/tuinix/style/internal/domain/value"
	"github.com/sile/tuinix/style/internal/infrastructure/ansi"
)

// Style is an immutable record of text attributes and colors.
//
// Zero value: Style{} equals Reset — no attributes, no colors — and is
// a valid, frequently used value.
type Style = model.Style

// Color is an immutable RGB color.
//
// Zero value: Color{} is black — a valid color.
type Color = value.Color

// ErrInvalidEscape is returned by Parse for any sequence Serialize
// could not have produced.
type ErrInvalidEscape = ansi.ErrInvalidEscape

// Reset is the all-default Style.
var Reset = model.Reset

// New returns the default Style. Equivalent to Reset, spelled as a
// constructor for fluent chaining: style.New().Bold().Italic().
func New() Style { return model.New() }

// RGB creates a Color from its three channels.
func RGB(r, g, b uint8) Color { return value.RGB(r, g, b) }

// The 16 standard + bright ANSI colors, as RGB approximations.
var (
	Black         = value.Black
	Red           = value.Red
	Green         = value.Green
	Yellow        = value.Yellow
	Blue          = value.Blue
	Magenta       = value.Magenta
	Cyan          = value.Cyan
	White         = value.White
	BrightBlack   = value.BrightBlack
	BrightRed     = value.BrightRed
	BrightGreen   = value.BrightGreen
	BrightYellow  = value.BrightYellow
	BrightBlue    = value.BrightBlue
	BrightMagenta = value.BrightMagenta
	BrightCyan    = value.BrightCyan
	BrightWhite   = value.BrightWhite
)

// Serialize renders s to its canonical ANSI SGR escape sequence.
func Serialize(s Style) string { return ansi.Serialize(s) }

// Parse parses the canonical ANSI form Serialize produces. It is the
// exact inverse of Serialize for every Style value; any other SGR
// sequence is rejected as an ErrInvalidEscape.
func Parse(seq string) (Style, error) { return ansi.Parse(seq) }
