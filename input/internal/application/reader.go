// Package application provides the buffered adapter that feeds the
// stateless byte parser from a real byte source.
package application

import (
	"io"

	"github.com/sile/tuinix/input/internal/domain/value"
	"github.com/sile/tuinix/input/internal/infrastructure/parser"
)

const defaultReadChunk = 1024

// Reader owns a byte source and a growable buffer, repeatedly
// parsing and refilling until a complete event emerges.
type Reader struct {
	source io.Reader
	data   []byte
	filled int
}

// NewReader creates a Reader over source with a default-sized buffer.
func NewReader(source io.Reader) *Reader {
	return &Reader{source: source, data: make([]byte, defaultReadChunk)}
}

// Source returns the underlying byte source, so callers can extract
// its file descriptor (e.g. by type-asserting to *os.File) for use
// with an external readiness poller.
func (r *Reader) Source() io.Reader {
	return r.source
}

// ReadEvent blocks, reading from the source as needed, until a
// complete event is decoded. A zero-byte read from the source is
// end-of-stream and is reported as io.ErrUnexpectedEOF, per the
// buffered-reader contract.
func (r *Reader) ReadEvent() (*value.Event, error) {
	for {
		if ev, ok := r.tryParseBuffered(); ok {
			return ev, nil
		}

		if r.filled == len(r.data) {
			r.grow()
		}
		n, err := r.source.Read(r.data[r.filled:])
		if n == 0 && (err == nil || err == io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		if err != nil {
			return nil, err
		}
		r.filled += n
	}
}

// ParseBuffered attempts to decode an event purely from bytes already
// buffered, without touching the source. It is the entry point the
// terminal's multiplexed event loop uses to drain buffered input
// before blocking on readiness, and the one that lets an external
// poller supply bytes the caller already read.
func (r *Reader) ParseBuffered() (*value.Event, bool) {
	return r.tryParseBuffered()
}

// Feed appends externally-read bytes to the buffer, for callers that
// read stdin themselves (e.g. via an external poller) rather than
// through ReadEvent.
func (r *Reader) Feed(b []byte) {
	for r.filled+len(b) > len(r.data) {
		r.grow()
	}
	copy(r.data[r.filled:], b)
	r.filled += len(b)
}

func (r *Reader) tryParseBuffered() (*value.Event, bool) {
	for r.filled > 0 {
		ev, consumed := parser.Parse(r.data[:r.filled])
		if consumed > 0 {
			r.shift(consumed)
		}
		if ev != nil {
			return ev, true
		}
		if consumed == 0 {
			return nil, false
		}
	}
	return nil, false
}

func (r *Reader) shift(n int) {
	copy(r.data, r.data[n:r.filled])
	r.filled -= n
}

func (r *Reader) grow() {
	next := make([]byte, len(r.data)*2)
	copy(next, r.data[:r.filled])
	r.data = next
}
