// Package unix wraps the raw OS calls the terminal owner needs:
// termios get/set, window-size query, the SIGWINCH self-pipe, and a
// select-based readiness wait.
package unix

import "golang.org/x/sys/unix"

// Termios is a snapshot of terminal attributes, opaque to callers
// beyond save/restore.
type Termios = unix.Termios

// GetTermios snapshots the current terminal attributes for fd.
func GetTermios(fd int) (*Termios, error) {
	return unix.IoctlGetTermios(fd, unix.TCGETS)
}

// SetTermios applies t to fd with TCSAFLUSH: the change takes effect
// once all queued output has been written, and any queued but unread
// input is discarded.
func SetTermios(fd int, t *Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCSETSF, t)
}

// SetRaw derives raw-mode attributes from saved and applies them to
// fd: no break/CR-NL translation/parity/strip/flow-control on input,
// no output post-processing, 8-bit chars with no parity, no
// echo/canonical-mode/extended-input/signal generation, and
// one-byte-at-a-time reads with no inter-byte timeout.
func SetRaw(fd int, saved *Termios) error {
	raw := *saved
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	return unix.IoctlSetTermios(fd, unix.TCSETSF, &raw)
}
