package unix

import (
	"golang.org/x/sys/unix"

	"github.com/sile/tuinix/geometry"
)

// WindowSize queries the current terminal dimensions for fd via
// ioctl(TIOCGWINSZ).
func WindowSize(fd int) (geometry.Size, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return geometry.Size{}, err
	}
	return geometry.NewSize(int(ws.Row), int(ws.Col)), nil
}
