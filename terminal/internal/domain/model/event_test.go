package model

import (
	"testing"

	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/input"
)

func TestNewResizeEvent(t *testing.T) {
	ev := NewResizeEvent(geometry.NewSize(24, 80))
	if ev.Kind != EventKindResize {
		t.Fatalf("got kind %v", ev.Kind)
	}
	if ev.Size != geometry.NewSize(24, 80) {
		t.Errorf("got size %+v", ev.Size)
	}
}

func TestFromInputEventKey(t *testing.T) {
	src := &input.Event{Kind: input.EventKindKey, Key: input.KeyEvent{Code: input.CodeChar, Char: 'q'}}
	ev := FromInputEvent(src)
	if ev.Kind != EventKindKey || ev.Key.Char != 'q' {
		t.Errorf("got %+v", ev)
	}
}

func TestFromInputEventMouse(t *testing.T) {
	src := &input.Event{Kind: input.EventKindMouse, Mouse: input.MouseEvent{Kind: input.MouseEventPress}}
	ev := FromInputEvent(src)
	if ev.Kind != EventKindMouse || ev.Mouse.Kind != input.MouseEventPress {
		t.Errorf("got %+v", ev)
	}
}

func TestEventKindString(t *testing.T) {
	cases := map[EventKind]string{
		EventKindKey:    "Key",
		EventKindMouse:  "Mouse",
		EventKindResize: "Resize",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", kind, got, want)
		}
	}
}
