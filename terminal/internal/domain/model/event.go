// Package model holds the terminal owner's value types: the Event sum
// that adds a Resize case on top of input's Key/Mouse events, and the
// exported error kinds.
package model

import (
	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/input"
)

// EventKind discriminates the shape of an Event.
type EventKind int

const (
	EventKindKey EventKind = iota
	EventKindMouse
	EventKindResize
)

func (k EventKind) String() string {
	switch k {
	case EventKindKey:
		return "Key"
	case EventKindMouse:
		return "Mouse"
	case EventKindResize:
		return "Resize"
	default:
		return "Unknown"
	}
}

// Event is what PollEvent returns: a keyboard or mouse event decoded
// from stdin, or a Resize carrying the terminal's freshly-queried
// size. Exactly the field named by Kind is meaningful.
type Event struct {
	Kind  EventKind
	Key   input.KeyEvent
	Mouse input.MouseEvent
	Size  geometry.Size
}

// NewKeyEvent wraps a decoded key as a terminal Event.
func NewKeyEvent(k input.KeyEvent) Event {
	return Event{Kind: EventKindKey, Key: k}
}

// NewMouseEvent wraps a decoded mouse report as a terminal Event.
func NewMouseEvent(m input.MouseEvent) Event {
	return Event{Kind: EventKindMouse, Mouse: m}
}

// NewResizeEvent reports a window-size change.
func NewResizeEvent(size geometry.Size) Event {
	return Event{Kind: EventKindResize, Size: size}
}

// FromInputEvent lifts a parsed input.Event (Key or Mouse) into a
// terminal Event.
func FromInputEvent(ev *input.Event) Event {
	if ev.Kind == input.EventKindMouse {
		return NewMouseEvent(ev.Mouse)
	}
	return NewKeyEvent(ev.Key)
}
