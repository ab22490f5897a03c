// Package parser implements the stateless byte-stream decoder: bytes
// in, an optional event plus a consumed prefix length out. It never
// blocks and never allocates buffers of its own — see
// input/internal/application for the buffered adapter that owns the
// byte source.
package parser

import (
	"unicode/utf8"

	"github.com/sile/tuinix/input/internal/domain/value"
)

// controlChar maps a C0 control byte (1..0x1F, excluding the
// specially-handled Enter/Tab) to the lowercase letter it represents
// when Ctrl is held, e.g. 0x01 -> 'a'.
func controlChar(b byte) rune {
	return rune(b + 0x60)
}

// Parse decodes the leading event from data, if any. It returns
// (nil, 0) when data is too short to disambiguate, (nil, n>0) when
// the leading bytes were invalid or unrecognized and should be
// discarded, and (event, n>0) on a complete decode. Parse never
// returns consumed > len(data).
func Parse(data []byte) (*value.Event, int) {
	if len(data) == 0 {
		return nil, 0
	}

	b := data[0]

	switch {
	case b == 0x0D:
		return keyEvent(value.NewKey(value.CodeEnter, false, false, false)), 1
	case b == 0x09:
		return keyEvent(value.NewKey(value.CodeTab, false, false, false)), 1
	case b < 0x20 && b != 0x1B:
		return keyEvent(value.NewCharKey(controlChar(b), true, false, false)), 1
	case b >= 0x20 && b < 0x7F:
		return keyEvent(value.NewCharKey(rune(b), false, false, false)), 1
	case b == 0x7F:
		return keyEvent(value.NewKey(value.CodeBackspace, false, false, false)), 1
	case b == 0x1B:
		return parseEscape(data)
	default:
		return parseUTF8(data)
	}
}

// parseEscape handles every form that begins with ESC (0x1B).
func parseEscape(data []byte) (*value.Event, int) {
	if len(data) < 2 {
		return nil, 0
	}

	switch data[1] {
	case '[':
		return parseCSI(data)
	case 'O':
		return parseSS3(data)
	default:
		return parseEscapeOther(data)
	}
}

// parseSS3 handles ESC O X, the alternative arrow/Home/End prefix
// some terminals emit.
func parseSS3(data []byte) (*value.Event, int) {
	if len(data) < 3 {
		return nil, 0
	}
	code, ok := ss3Code(data[2])
	if !ok {
		return nil, 3
	}
	return keyEvent(value.NewKey(code, false, false, false)), 3
}

func ss3Code(x byte) (value.KeyCode, bool) {
	switch x {
	case 'A':
		return value.CodeUp, true
	case 'B':
		return value.CodeDown, true
	case 'C':
		return value.CodeRight, true
	case 'D':
		return value.CodeLeft, true
	case 'H':
		return value.CodeHome, true
	case 'F':
		return value.CodeEnd, true
	default:
		return 0, false
	}
}

// parseEscapeOther handles ESC followed by anything but '[' or 'O':
// Alt-prefixed characters (and, per the standalone ESC policy, a
// lone Key Escape when the second byte fits no recognized form).
func parseEscapeOther(data []byte) (*value.Event, int) {
	second := data[1]

	switch {
	case second == 0x0D:
		return keyEvent(value.NewKey(value.CodeEnter, false, true, false)), 2
	case second == 0x09:
		return keyEvent(value.NewKey(value.CodeTab, false, true, false)), 2
	case second < 0x20:
		return keyEvent(value.NewCharKey(controlChar(second), true, true, false)), 2
	case second >= 0x20 && second < 0x7F:
		return keyEvent(value.NewCharKey(rune(second), false, true, false)), 2
	case second == 0x7F:
		return keyEvent(value.NewKey(value.CodeBackspace, false, true, false)), 2
	default:
		// Neither a recognized escape prefix nor a printable byte:
		// report the standalone ESC and leave the second byte for the
		// next Parse call.
		return keyEvent(value.NewKey(value.CodeEscape, false, false, false)), 1
	}
}

// parseUTF8 decodes a multi-byte UTF-8 codepoint starting at data[0],
// which must have its high bit set.
func parseUTF8(data []byte) (*value.Event, int) {
	width := utf8RuneLen(data[0])
	if width == 0 {
		return nil, 1
	}
	if len(data) < width {
		return nil, 0
	}
	r, size := utf8.DecodeRune(data[:width])
	if r == utf8.RuneError && size != width {
		return nil, 1
	}
	return keyEvent(value.NewCharKey(r, false, false, false)), width
}

// utf8RuneLen returns the expected total byte length of a UTF-8
// sequence from its leading byte, or 0 if the leading bits are not a
// valid leading byte.
func utf8RuneLen(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

func keyEvent(k value.KeyEvent) *value.Event {
	e := value.NewKeyEvent(k)
	return &e
}

func mouseEvent(m value.MouseEvent) *value.Event {
	e := value.NewMouseEvent(m)
	return &e
}
