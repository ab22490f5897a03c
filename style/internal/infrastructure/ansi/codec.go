// Package ansi renders a Style to, and parses one back from, its
// canonical ANSI SGR escape sequence. Serialization and parsing are
// infrastructure concerns — the domain model (model.Style) only knows
// its own attribute bits and colors, not the wire format.
package ansi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sile/tuinix/style/internal/domain/model"
	"github.com/sile/tuinix/style/internal/domain/value"
)

// Serialize renders s to its canonical ANSI SGR escape sequence:
//
//	ESC[0(;1)(;2)(;3)(;4)(;5)(;7)(;9)(;38;2;R;G;B)(;48;2;R;G;B)m
//
// The leading "0" always appears: every style carries an implicit
// reset, so two Serialize outputs applied back to back never leave
// stale attributes from the first behind. The seven attribute codes
// appear, when set, in the fixed numeric order 1,2,3,4,5,7,9 (bold,
// dim, italic, underline, blink, reverse, strikethrough) — this fixed
// order, not struct field order, is what makes the form canonical and
// Parse its exact inverse.
func Serialize(s model.Style) string {
	var b strings.Builder
	b.WriteString("\x1b[0")

	if s.IsBold() {
		b.WriteString(";1")
	}
	if s.IsDim() {
		b.WriteString(";2")
	}
	if s.IsItalic() {
		b.WriteString(";3")
	}
	if s.IsUnderline() {
		b.WriteString(";4")
	}
	if s.IsBlink() {
		b.WriteString(";5")
	}
	if s.IsReverse() {
		b.WriteString(";7")
	}
	if s.IsStrikethrough() {
		b.WriteString(";9")
	}
	if fg, ok := s.FgColorValue(); ok {
		fmt.Fprintf(&b, ";38;2;%d;%d;%d", fg.R, fg.G, fg.B)
	}
	if bg, ok := s.BgColorValue(); ok {
		fmt.Fprintf(&b, ";48;2;%d;%d;%d", bg.R, bg.G, bg.B)
	}
	b.WriteByte('m')
	return b.String()
}

// ErrInvalidEscape is returned by Parse when given a sequence Serialize
// could not have produced: an unsupported SGR number, a malformed RGB
// triple, or a form missing the leading "0" reset.
type ErrInvalidEscape struct {
	Sequence string
	Reason   string
}

func (e *ErrInvalidEscape) Error() string {
	return fmt.Sprintf("invalid style escape %q: %s", e.Sequence, e.Reason)
}

// Parse parses the canonical ANSI form Serialize produces, and is its
// exact inverse for every Style value. Any other SGR sequence —
// including syntactically valid ones this package never emits, such as
// a lone ";1" without the leading "0" — is rejected as an
// ErrInvalidEscape.
func Parse(seq string) (model.Style, error) {
	const prefix = "\x1b["
	const suffix = "m"

	if !strings.HasPrefix(seq, prefix) || !strings.HasSuffix(seq, suffix) {
		return model.Style{}, &ErrInvalidEscape{Sequence: seq, Reason: "missing CSI prefix or 'm' terminator"}
	}
	body := seq[len(prefix) : len(seq)-len(suffix)]
	if body == "" {
		return model.Style{}, &ErrInvalidEscape{Sequence: seq, Reason: "empty SGR body"}
	}

	parts := strings.Split(body, ";")
	if parts[0] != "0" {
		return model.Style{}, &ErrInvalidEscape{Sequence: seq, Reason: "missing leading reset code 0"}
	}

	var bold, italic, underline, blink, reverse, dim, strikethrough bool
	var fg, bg value.Color
	var hasFg, hasBg bool

	i := 1
	for i < len(parts) {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			return model.Style{}, &ErrInvalidEscape{Sequence: seq, Reason: "non-numeric SGR code " + parts[i]}
		}

		switch code {
		case 1:
			bold = true
			i++
		case 2:
			dim = true
			i++
		case 3:
			italic = true
			i++
		case 4:
			underline = true
			i++
		case 5:
			blink = true
			i++
		case 7:
			reverse = true
			i++
		case 9:
			strikethrough = true
			i++
		case 38, 48:
			c, consumed, err := parseTrueColor(parts[i:], seq)
			if err != nil {
				return model.Style{}, err
			}
			if code == 38 {
				hasFg, fg = true, c
			} else {
				hasBg, bg = true, c
			}
			i += consumed
		default:
			return model.Style{}, &ErrInvalidEscape{
				Sequence: seq,
				Reason:   fmt.Sprintf("unsupported SGR code %d", code),
			}
		}
	}

	return model.FromComponents(bold, italic, underline, blink, reverse, dim, strikethrough, fg, hasFg, bg, hasBg), nil
}

// parseTrueColor parses the "38;2;R;G;B" or "48;2;R;G;B" tail starting
// at parts[0] == "38"/"48", returning the color and the number of
// leading parts consumed (always 5: code, "2", R, G, B).
func parseTrueColor(parts []string, seq string) (value.Color, int, error) {
	if len(parts) < 5 || parts[1] != "2" {
		return value.Color{}, 0, &ErrInvalidEscape{Sequence: seq, Reason: "expected ';2;R;G;B' true-color triple"}
	}
	r, err1 := strconv.Atoi(parts[2])
	g, err2 := strconv.Atoi(parts[3])
	b, err3 := strconv.Atoi(parts[4])
	if err1 != nil || err2 != nil || err3 != nil || r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return value.Color{}, 0, &ErrInvalidEscape{Sequence: seq, Reason: "malformed RGB triple"}
	}
	return value.RGB(uint8(r), uint8(g), uint8(b)), 5, nil
}
