package unix

import (
	"time"

	"golang.org/x/sys/unix"
)

// Readiness reports which watched descriptors became ready.
type Readiness struct {
	Input  bool
	Signal bool
}

// WaitReadiness blocks until inputFD or signalFD is ready to read, or
// timeout elapses. A negative timeout blocks indefinitely. EINTR
// restarts the wait against the residual of a monotonic deadline
// rather than surfacing to the caller.
func WaitReadiness(inputFD, signalFD int, timeout time.Duration) (Readiness, error) {
	deadline, hasDeadline := deadlineFor(timeout)

	for {
		var remaining time.Duration
		if hasDeadline {
			remaining = time.Until(deadline)
			if remaining <= 0 {
				return Readiness{}, nil
			}
		}

		rfds := &unix.FdSet{}
		fdSet(rfds, inputFD)
		fdSet(rfds, signalFD)
		nfd := inputFD
		if signalFD > nfd {
			nfd = signalFD
		}

		var tv *unix.Timeval
		if hasDeadline {
			t := unix.NsecToTimeval(remaining.Nanoseconds())
			tv = &t
		}

		n, err := unix.Select(nfd+1, rfds, nil, nil, tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return Readiness{}, err
		}
		if n == 0 {
			return Readiness{}, nil
		}
		return Readiness{Input: fdIsSet(rfds, inputFD), Signal: fdIsSet(rfds, signalFD)}, nil
	}
}

func deadlineFor(timeout time.Duration) (time.Time, bool) {
	if timeout < 0 {
		return time.Time{}, false
	}
	return time.Now().Add(timeout), true
}

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
