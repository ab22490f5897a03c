// Package input decodes the terminal's raw stdin byte stream into
// keyboard and mouse events.
//
// # Overview
//
// Parse is the stateless core: bytes in, an optional event and a
// consumed-byte count out. Reader wraps it with a growable buffer so
// callers can feed it a real byte source (or bytes they read
// themselves) without worrying about partial escape sequences split
// across reads.
//
// # Architecture
//
//   - internal/domain/value         — KeyEvent, MouseEvent, Event
//   - internal/infrastructure/parser — the stateless byte decoder
//   - internal/application          — Reader, the buffered adapter
//   - input.go (this file)          — public facade
package input

import (
	"io"

	"github.com/sile/tuinix/input/internal/application"
	"github.com/sile/tuinix/input/internal/domain/value"
	"github.com/sile/tuinix/input/internal/infrastructure/parser"
)

// KeyCode identifies a non-character key.
type KeyCode = value.KeyCode

const (
	CodeChar     = value.CodeChar
	CodeEnter    = value.CodeEnter
	CodeTab      = value.CodeTab
	CodeBackTab  = value.CodeBackTab
	CodeBackspace = value.CodeBackspace
	CodeEscape   = value.CodeEscape
	CodeUp       = value.CodeUp
	CodeDown     = value.CodeDown
	CodeRight    = value.CodeRight
	CodeLeft     = value.CodeLeft
	CodeHome     = value.CodeHome
	CodeEnd      = value.CodeEnd
	CodeInsert   = value.CodeInsert
	CodeDelete   = value.CodeDelete
	CodePageUp   = value.CodePageUp
	CodePageDown = value.CodePageDown
)

// KeyEvent is a single decoded keypress.
type KeyEvent = value.KeyEvent

// MouseButton identifies which button a mouse event concerns.
type MouseButton = value.MouseButton

const (
	MouseButtonNone       = value.MouseButtonNone
	MouseButtonLeft       = value.MouseButtonLeft
	MouseButtonMiddle     = value.MouseButtonMiddle
	MouseButtonRight      = value.MouseButtonRight
	MouseButtonWheelUp    = value.MouseButtonWheelUp
	MouseButtonWheelDown  = value.MouseButtonWheelDown
)

// MouseEventKind classifies a MouseEvent.
type MouseEventKind = value.MouseEventKind

const (
	MouseEventPress   = value.MouseEventPress
	MouseEventRelease = value.MouseEventRelease
	MouseEventScroll  = value.MouseEventScroll
)

// MouseEvent is a single decoded mouse report.
type MouseEvent = value.MouseEvent

// EventKind discriminates the shape of an Event.
type EventKind = value.EventKind

const (
	EventKindKey   = value.EventKindKey
	EventKindMouse = value.EventKindMouse
)

// Event is the parser's result type: exactly one of Key or Mouse is
// meaningful, selected by Kind.
type Event = value.Event

// Reader is a buffered adapter that feeds Parse from a byte source.
// It applies no ESC-delay heuristic: a lone buffered ESC byte stays
// buffered until a later byte arrives and decides how it is parsed.
type Reader = application.Reader

// NewReader creates a Reader over source.
func NewReader(source io.Reader) *Reader {
	return application.NewReader(source)
}

// Parse decodes the leading event from data, if any. See the package
// doc for the (event, consumed) contract.
func Parse(data []byte) (*Event, int) {
	return parser.Parse(data)
}
