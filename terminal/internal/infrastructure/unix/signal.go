package unix

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// SignalPipe relays SIGWINCH onto a pipe so it can sit next to the
// input FD in a select-based readiness wait. Go gives no
// async-signal-safe handler hook of its own; os/signal's internal
// delivery already does the single-write-to-a-pipe dance for us, so
// the relay goroutine below only has to forward the notification.
type SignalPipe struct {
	readFD  int
	writeFD int
	notify  chan os.Signal
	done    chan struct{}
}

// NewSignalPipe creates the pipe and starts relaying SIGWINCH onto it.
func NewSignalPipe() (*SignalPipe, error) {
	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		return nil, err
	}

	p := &SignalPipe{
		readFD:  fds[0],
		writeFD: fds[1],
		notify:  make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	signal.Notify(p.notify, syscall.SIGWINCH)
	go p.relay()
	return p, nil
}

func (p *SignalPipe) relay() {
	for {
		select {
		case <-p.notify:
			unix.Write(p.writeFD, []byte{0})
		case <-p.done:
			return
		}
	}
}

// ReadFD is the file descriptor to watch for readiness.
func (p *SignalPipe) ReadFD() int { return p.readFD }

// Drain reads and discards exactly one pending byte.
func (p *SignalPipe) Drain() error {
	var b [1]byte
	_, err := unix.Read(p.readFD, b[:])
	return err
}

// Close stops the relay and closes both pipe ends.
func (p *SignalPipe) Close() error {
	signal.Stop(p.notify)
	close(p.done)
	err1 := unix.Close(p.readFD)
	err2 := unix.Close(p.writeFD)
	if err1 != nil {
		return err1
	}
	return err2
}
