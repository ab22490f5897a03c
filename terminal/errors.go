package terminal

import "github.com/sile/tuinix/terminal/internal/domain/model"

// ErrAlreadyAcquired is returned by New when a Terminal already exists
// in this process.
type ErrAlreadyAcquired = model.ErrAlreadyAcquired

// ErrNotATerminal is returned by New when stdin or stdout is not a
// TTY.
type ErrNotATerminal = model.ErrNotATerminal

// ErrOsCall wraps a failing termios/ioctl/pipe/select/read/write call.
type ErrOsCall = model.ErrOsCall

// ErrUnexpectedEOF is returned when stdin yields zero bytes mid-read.
type ErrUnexpectedEOF = model.ErrUnexpectedEOF
