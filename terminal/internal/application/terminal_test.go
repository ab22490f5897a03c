package application

import (
	"os"
	"sync/atomic"
	"testing"

	"github.com/sile/tuinix/terminal/internal/domain/model"
)

func TestNewFailsWhenAlreadyAcquired(t *testing.T) {
	if !atomic.CompareAndSwapInt32(&acquired, 0, 1) {
		t.Fatal("latch should have been free")
	}
	defer atomic.StoreInt32(&acquired, 0)

	_, err := New()
	if _, ok := err.(model.ErrAlreadyAcquired); !ok {
		t.Fatalf("got %v, want ErrAlreadyAcquired", err)
	}
}

func TestIsTerminalFalseForPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if isTerminal(r.Fd()) {
		t.Error("a pipe should not be reported as a terminal")
	}
}

func TestNewAndCloseRoundTrip(t *testing.T) {
	if !isTerminal(os.Stdin.Fd()) {
		t.Skip("not running in a terminal")
	}

	term, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if term.Size().Rows <= 0 {
		t.Errorf("got size %+v", term.Size())
	}
	if err := term.Close(); err != nil {
		t.Fatal(err)
	}
	if atomic.LoadInt32(&acquired) != 0 {
		t.Error("latch should be cleared after Close")
	}
}
