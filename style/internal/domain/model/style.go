// Package model holds style's aggregate: Style.
package model

import (
	"github.com/sile/tuinix/style/internal/domain/value"
)

// Style is an immutable record of terminal text attributes and colors.
//
// Zero value: Style{} is Reset — no attributes set, no colors set — a
// valid, commonly used value (it is in fact the Reset constant).
//
// Every setter returns a new Style; Style is never mutated in place,
// so it is safe to share between goroutines.
type Style struct {
	bold          bool
	italic        bool
	underline     bool
	blink         bool
	reverse       bool
	dim           bool
	strikethrough bool

	hasFg bool
	fg    value.Color
	hasBg bool
	bg    value.Color
}

// Reset is the all-default Style: no attributes, no colors.
var Reset = Style{}

// New returns the default Style (an alias for Reset, spelled as a
// constructor for readability at call sites).
func New() Style {
	return Reset
}

// Bold returns a copy of s with the bold attribute set to on.
func (s Style) Bold() Style { s.bold = true; return s }

// Italic returns a copy of s with the italic attribute set to on.
func (s Style) Italic() Style { s.italic = true; return s }

// Underline returns a copy of s with the underline attribute set to on.
func (s Style) Underline() Style { s.underline = true; return s }

// Blink returns a copy of s with the blink attribute set to on.
func (s Style) Blink() Style { s.blink = true; return s }

// Reverse returns a copy of s with the reverse-video attribute set to on.
func (s Style) Reverse() Style { s.reverse = true; return s }

// Dim returns a copy of s with the dim attribute set to on.
func (s Style) Dim() Style { s.dim = true; return s }

// Strikethrough returns a copy of s with the strikethrough attribute set to on.
func (s Style) Strikethrough() Style { s.strikethrough = true; return s }

// FgColor returns a copy of s with the foreground color set to c.
func (s Style) FgColor(c value.Color) Style { s.hasFg = true; s.fg = c; return s }

// BgColor returns a copy of s with the background color set to c.
func (s Style) BgColor(c value.Color) Style { s.hasBg = true; s.bg = c; return s }

// IsBold reports whether the bold attribute is set.
func (s Style) IsBold() bool { return s.bold }

// IsItalic reports whether the italic attribute is set.
func (s Style) IsItalic() bool { return s.italic }

// IsUnderline reports whether the underline attribute is set.
func (s Style) IsUnderline() bool { return s.underline }

// IsBlink reports whether the blink attribute is set.
func (s Style) IsBlink() bool { return s.blink }

// IsReverse reports whether the reverse-video attribute is set.
func (s Style) IsReverse() bool { return s.reverse }

// IsDim reports whether the dim attribute is set.
func (s Style) IsDim() bool { return s.dim }

// IsStrikethrough reports whether the strikethrough attribute is set.
func (s Style) IsStrikethrough() bool { return s.strikethrough }

// FgColorValue returns the foreground color and whether one is set.
func (s Style) FgColorValue() (value.Color, bool) { return s.fg, s.hasFg }

// BgColorValue returns the background color and whether one is set.
func (s Style) BgColorValue() (value.Color, bool) { return s.bg, s.hasBg }

// Equals reports whether s and other represent the same style. Style
// is a plain comparable struct, so this is equivalent to ==; the
// method exists so callers needn't know that.
func (s Style) Equals(other Style) bool {
	return s == other
}

// IsEmpty reports whether s is the Reset style (no attributes, no colors).
func (s Style) IsEmpty() bool {
	return s == Reset
}

// FromComponents constructs a Style directly from its component flags and colors.
// Used by the ansi codec to rebuild a Style when parsing; application
// code should prefer New() + builder methods.
func FromComponents(bold, italic, underline, blink, reverse, dim, strikethrough bool, fg value.Color, hasFg bool, bg value.Color, hasBg bool) Style {
	return Style{
		bold: bold, italic: italic, underline: underline, blink: blink,
		reverse: reverse, dim: dim, strikethrough: strikethrough,
		fg: fg, hasFg: hasFg, bg: bg, hasBg: hasBg,
	}
}
