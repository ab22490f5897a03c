package unix

import "golang.org/x/sys/unix"

// SetNonblock puts fd into non-blocking mode, for callers that want
// to drive the terminal's descriptors from their own event loop.
func SetNonblock(fd int) error {
	return unix.SetNonblock(fd, true)
}

// IsRetryable reports whether err is EAGAIN/EWOULDBLOCK or EINTR: the
// two conditions an external poller should treat as "try again",
// rather than a genuine failure.
func IsRetryable(err error) bool {
	return err == unix.EAGAIN || err == unix.EINTR
}
