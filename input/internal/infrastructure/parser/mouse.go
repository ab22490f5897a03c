package parser

import (
	"strconv"
	"strings"

	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/input/internal/domain/value"
)

// decodeButtonCode splits a combined SGR/X10 button code into its
// base button (with the modifier and motion bits masked off) and
// modifier/drag flags. Both dialects share this bit layout once the
// X10 byte has had 0x20 subtracted from it.
func decodeButtonCode(code int) (base int, shift, alt, ctrl, drag bool) {
	shift = code&0x04 != 0
	alt = code&0x08 != 0
	ctrl = code&0x10 != 0
	drag = code&0x20 != 0
	base = code & 0x63 // bits 0,1 (button select) and 5,6 (motion/scroll)
	return
}

func baseButtonToMouseButton(base int) value.MouseButton {
	switch base & 0x03 {
	case 0:
		return value.MouseButtonLeft
	case 1:
		return value.MouseButtonMiddle
	case 2:
		return value.MouseButtonRight
	default:
		return value.MouseButtonNone
	}
}

// parseSGRMouse handles the `<b;x;y(M|m)` body of an SGR mouse
// report. rest[0] == '<'.
func parseSGRMouse(rest []byte) (*value.Event, int) {
	termIdx := -1
	for i := 1; i < len(rest); i++ {
		if rest[i] == 'M' || rest[i] == 'm' {
			termIdx = i
			break
		}
	}
	if termIdx == -1 {
		if len(rest) > 32 {
			// No terminator within a generous bound: discard to avoid
			// stalling forever on garbage.
			return nil, 2 + len(rest)
		}
		return nil, 0
	}

	body := string(rest[1:termIdx])
	isPress := rest[termIdx] == 'M'
	consumed := 2 + termIdx + 1

	parts := strings.Split(body, ";")
	if len(parts) != 3 {
		return nil, consumed
	}
	code, err1 := strconv.Atoi(parts[0])
	x, err2 := strconv.Atoi(parts[1])
	y, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, consumed
	}

	base, shift, alt, ctrl, drag := decodeButtonCode(code)
	ev := value.MouseEvent{
		Position: geometry.RowCol(satSub(y, 1), satSub(x, 1)),
		Drag:     drag,
		Shift:    shift,
		Alt:      alt,
		Ctrl:     ctrl,
	}

	switch base {
	case 64:
		ev.Kind = value.MouseEventScroll
		ev.Button = value.MouseButtonWheelUp
	case 65:
		ev.Kind = value.MouseEventScroll
		ev.Button = value.MouseButtonWheelDown
	default:
		ev.Button = baseButtonToMouseButton(base)
		if isPress {
			ev.Kind = value.MouseEventPress
		} else {
			ev.Kind = value.MouseEventRelease
		}
	}

	return mouseEvent(ev), consumed
}

// parseX10Mouse handles the legacy `M b x y` form. rest[0] == 'M',
// requiring three more bytes.
func parseX10Mouse(rest []byte) (*value.Event, int) {
	if len(rest) < 4 {
		return nil, 0
	}
	b := int(rest[1]) - 0x20
	x := int(rest[2])
	y := int(rest[3])
	consumed := 2 + 4

	base, shift, alt, ctrl, drag := decodeButtonCode(b)
	ev := value.MouseEvent{
		Position: geometry.RowCol(satSub(y, 33), satSub(x, 33)),
		Drag:     drag,
		Shift:    shift,
		Alt:      alt,
		Ctrl:     ctrl,
	}

	switch {
	case base == 64:
		ev.Kind = value.MouseEventScroll
		ev.Button = value.MouseButtonWheelUp
	case base == 65:
		ev.Kind = value.MouseEventScroll
		ev.Button = value.MouseButtonWheelDown
	case base&0x03 == 3:
		ev.Kind = value.MouseEventRelease
		ev.Button = value.MouseButtonNone
	default:
		ev.Kind = value.MouseEventPress
		ev.Button = baseButtonToMouseButton(base)
	}

	return mouseEvent(ev), consumed
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
