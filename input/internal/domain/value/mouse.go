package value

import "github.com/sile/tuinix/geometry"

// MouseButton identifies which button a mouse event concerns.
type MouseButton int

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonWheelUp
	MouseButtonWheelDown
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonRight:
		return "Right"
	case MouseButtonWheelUp:
		return "WheelUp"
	case MouseButtonWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// IsWheel reports whether b is one of the scroll buttons.
func (b MouseButton) IsWheel() bool {
	return b == MouseButtonWheelUp || b == MouseButtonWheelDown
}

// MouseEventKind classifies a MouseEvent.
type MouseEventKind int

const (
	MouseEventPress MouseEventKind = iota
	MouseEventRelease
	MouseEventScroll
)

func (k MouseEventKind) String() string {
	switch k {
	case MouseEventPress:
		return "Press"
	case MouseEventRelease:
		return "Release"
	case MouseEventScroll:
		return "Scroll"
	default:
		return "Unknown"
	}
}

// MouseEvent is a single decoded mouse report.
type MouseEvent struct {
	Kind     MouseEventKind
	Button   MouseButton
	Position geometry.Position
	Drag     bool // motion-while-held, SGR bit 0x20
	Ctrl     bool
	Alt      bool
	Shift    bool
}

// Equals reports whether two mouse events are identical.
func (m MouseEvent) Equals(other MouseEvent) bool {
	return m == other
}
