package parser

import "github.com/sile/tuinix/input/internal/domain/value"

// parseCSI handles everything beginning ESC [ (data[0]==0x1B,
// data[1]=='['). rest is the bytes following that two-byte prefix.
func parseCSI(data []byte) (*value.Event, int) {
	rest := data[2:]
	if len(rest) == 0 {
		return nil, 0
	}

	switch rest[0] {
	case 'A':
		return keyEvent(value.NewKey(value.CodeUp, false, false, false)), 3
	case 'B':
		return keyEvent(value.NewKey(value.CodeDown, false, false, false)), 3
	case 'C':
		return keyEvent(value.NewKey(value.CodeRight, false, false, false)), 3
	case 'D':
		return keyEvent(value.NewKey(value.CodeLeft, false, false, false)), 3
	case 'H':
		return keyEvent(value.NewKey(value.CodeHome, false, false, false)), 3
	case 'F':
		return keyEvent(value.NewKey(value.CodeEnd, false, false, false)), 3
	case 'Z':
		return keyEvent(value.NewKey(value.CodeBackTab, false, false, false)), 3
	case '<':
		return parseSGRMouse(rest)
	case 'M':
		return parseX10Mouse(rest)
	default:
		if rest[0] >= '1' && rest[0] <= '8' {
			return parseFunctionKey(rest)
		}
		return discardUnrecognizedCSI(rest)
	}
}

// parseFunctionKey handles the digit-prefixed CSI forms: `N~`
// (Home/Insert/Delete/End/PageUp/PageDown), the modified variants
// `N;m~` for those keys, and the modified-arrow form `1;mX`.
func parseFunctionKey(rest []byte) (*value.Event, int) {
	if len(rest) < 2 {
		return nil, 0
	}

	// Modified arrow: "1;mX", X in A..D. "1;m~" falls through to the
	// modified function-key form below.
	if rest[0] == '1' && rest[1] == ';' {
		if len(rest) < 4 {
			return nil, 0
		}
		if rest[3] != '~' {
			code, ok := arrowCode(rest[3])
			if !ok {
				return discardUnrecognizedCSI(rest)
			}
			ctrl, alt, shift := decodeModifier(rest[2])
			return keyEvent(value.NewKey(code, ctrl, alt, shift)), 2 + 4
		}
	}

	if rest[1] == '~' {
		code, ok := functionKeyCode(rest[0])
		if !ok {
			return discardUnrecognizedCSI(rest)
		}
		return keyEvent(value.NewKey(code, false, false, false)), 2 + 2
	}

	if rest[1] == ';' {
		if len(rest) < 4 {
			return nil, 0
		}
		if rest[3] != '~' {
			return discardUnrecognizedCSI(rest)
		}
		code, ok := functionKeyCode(rest[0])
		if !ok {
			return discardUnrecognizedCSI(rest)
		}
		ctrl, alt, shift := decodeModifier(rest[2])
		return keyEvent(value.NewKey(code, ctrl, alt, shift)), 2 + 4
	}

	return discardUnrecognizedCSI(rest)
}

func arrowCode(x byte) (value.KeyCode, bool) {
	switch x {
	case 'A':
		return value.CodeUp, true
	case 'B':
		return value.CodeDown, true
	case 'C':
		return value.CodeRight, true
	case 'D':
		return value.CodeLeft, true
	default:
		return 0, false
	}
}

func functionKeyCode(digit byte) (value.KeyCode, bool) {
	switch digit {
	case '1', '7':
		return value.CodeHome, true
	case '2':
		return value.CodeInsert, true
	case '3':
		return value.CodeDelete, true
	case '4', '8':
		return value.CodeEnd, true
	case '5':
		return value.CodePageUp, true
	case '6':
		return value.CodePageDown, true
	default:
		return 0, false
	}
}

// decodeModifier turns the CSI modifier digit m (an ASCII digit,
// m = 1 + shift?1 + alt?2 + ctrl?4) into booleans.
func decodeModifier(m byte) (ctrl, alt, shift bool) {
	bits := int(m-'0') - 1
	shift = bits&1 != 0
	alt = bits&2 != 0
	ctrl = bits&4 != 0
	return
}

// discardUnrecognizedCSI scans for a CSI final byte (0x40-0x7E) to
// find how many bytes the unrecognized sequence occupies, so they can
// be discarded without disturbing whatever follows. If no final byte
// is found within the available data, the sequence is treated as
// incomplete rather than invalid.
func discardUnrecognizedCSI(rest []byte) (*value.Event, int) {
	const scanLimit = 32
	limit := len(rest)
	if limit > scanLimit {
		limit = scanLimit
	}
	for i := 0; i < limit; i++ {
		if rest[i] >= 0x40 && rest[i] <= 0x7E {
			return nil, 2 + i + 1
		}
	}
	if len(rest) < scanLimit {
		return nil, 0
	}
	// Pathological input with no final byte in range: drop what was scanned.
	return nil, 2 + limit
}
