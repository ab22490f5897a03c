// Package value holds the keyboard and mouse event types the input
// parser produces.
package value

// KeyCode identifies a non-character key, or the sentinel CodeChar for
// any key that carries a printable rune (see KeyEvent.Char).
type KeyCode int

const (
	// CodeChar indicates the event carries a printable rune in
	// KeyEvent.Char.
	CodeChar KeyCode = iota
	CodeEnter
	CodeTab
	CodeBackTab
	CodeBackspace
	CodeEscape
	CodeUp
	CodeDown
	CodeRight
	CodeLeft
	CodeHome
	CodeEnd
	CodeInsert
	CodeDelete
	CodePageUp
	CodePageDown
)

// String names the key code for diagnostics.
func (c KeyCode) String() string {
	switch c {
	case CodeChar:
		return "Char"
	case CodeEnter:
		return "Enter"
	case CodeTab:
		return "Tab"
	case CodeBackTab:
		return "BackTab"
	case CodeBackspace:
		return "Backspace"
	case CodeEscape:
		return "Escape"
	case CodeUp:
		return "Up"
	case CodeDown:
		return "Down"
	case CodeRight:
		return "Right"
	case CodeLeft:
		return "Left"
	case CodeHome:
		return "Home"
	case CodeEnd:
		return "End"
	case CodeInsert:
		return "Insert"
	case CodeDelete:
		return "Delete"
	case CodePageUp:
		return "PageUp"
	case CodePageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single decoded keypress.
type KeyEvent struct {
	Code  KeyCode
	Char  rune // valid only when Code == CodeChar
	Ctrl  bool
	Alt   bool
	Shift bool
}

// NewCharKey creates a KeyEvent carrying a printable rune.
func NewCharKey(r rune, ctrl, alt, shift bool) KeyEvent {
	return KeyEvent{Code: CodeChar, Char: r, Ctrl: ctrl, Alt: alt, Shift: shift}
}

// NewKey creates a KeyEvent for a named key code.
func NewKey(code KeyCode, ctrl, alt, shift bool) KeyEvent {
	return KeyEvent{Code: code, Ctrl: ctrl, Alt: alt, Shift: shift}
}

// Equals reports whether two key events are identical.
func (k KeyEvent) Equals(other KeyEvent) bool {
	return k == other
}
