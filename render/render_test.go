package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sile/tuinix/frame"
	"github.com/sile/tuinix/geometry"
)

func TestDrawFirstCallRendersEverything(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	f := frame.NewFrame(geometry.NewSize(1, 3), nil)
	f.Write([]byte("abc"))

	if err := r.Draw(f.Finalize(), geometry.ZeroPosition, true); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	if !strings.Contains(got, "\x1b[2J") {
		t.Errorf("expected the first draw to clear the screen: %q", got)
	}
	for _, want := range []string{"a", "b", "c"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q: %q", want, got)
		}
	}
}

func TestDrawSecondCallOnlyEmitsChanges(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	f1 := frame.NewFrame(geometry.NewSize(1, 3), nil)
	f1.Write([]byte("abc"))
	r.Draw(f1.Finalize(), geometry.ZeroPosition, false)

	buf.Reset()

	f2 := frame.NewFrame(geometry.NewSize(1, 3), nil)
	f2.Write([]byte("aXc"))
	if err := r.Draw(f2.Finalize(), geometry.ZeroPosition, false); err != nil {
		t.Fatal(err)
	}

	got := buf.String()
	if !strings.Contains(got, "X") {
		t.Errorf("expected the changed cell to be emitted: %q", got)
	}
	if strings.Contains(got, "a") || strings.Contains(got, "c") {
		t.Errorf("unchanged cells should not be re-emitted: %q", got)
	}
}

func TestDrawHidesCursorWhenNotVisible(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	f := frame.NewFrame(geometry.NewSize(1, 1), nil)
	r.Draw(f.Finalize(), geometry.ZeroPosition, false)

	if !strings.Contains(buf.String(), "\x1b[?25l") {
		t.Error("expected cursor to be hidden")
	}
}

func TestResetForcesFullRedrawOnNextDraw(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	f := frame.NewFrame(geometry.NewSize(1, 2), nil)
	f.Write([]byte("ab"))
	r.Draw(f.Finalize(), geometry.ZeroPosition, false)

	if err := r.Reset(); err != nil {
		t.Fatal(err)
	}

	buf.Reset()
	r.Draw(f.Finalize(), geometry.ZeroPosition, false)

	got := buf.String()
	if !strings.Contains(got, "a") || !strings.Contains(got, "b") {
		t.Errorf("expected a full redraw after Reset, got %q", got)
	}
}
