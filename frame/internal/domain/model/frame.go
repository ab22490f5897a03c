package model

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/sile/tuinix/geometry"
	"github.com/sile/tuinix/style"
)

// WidthEstimator reports the display width, in terminal columns, of a
// single rune. A width of 0 causes the frame's text sink to drop the
// rune entirely (used for control characters); the default estimator
// never reports widths above 1 — wide-character support requires an
// application-supplied estimator (see frame/internal/domain/service).
type WidthEstimator interface {
	Width(r rune) int
}

// DefaultWidthEstimator is the trivial estimator: control characters
// have width 0 (dropped), everything else width 1.
type DefaultWidthEstimator struct{}

// Width implements WidthEstimator.
func (DefaultWidthEstimator) Width(r rune) int {
	if r < 0x20 || r == 0x7F {
		return 0
	}
	return 1
}

// PositionedCell pairs a Position with the Cell the frame's enumeration
// reports there — either a cell the caller actually wrote, or a blank
// synthesized for an unwritten position.
type PositionedCell struct {
	Position geometry.Position
	Cell     Cell
}

// ErrInvalidStyleEscape is the panic value raised when the frame's text
// sink encounters an escape sequence the style package cannot parse.
// Per the frame's contract, only sequences style.Serialize itself
// produces are ever expected to appear in the stream; anything else is
// a caller bug, not a recoverable I/O condition, so it is raised out of
// the write path rather than returned as an error.
type ErrInvalidStyleEscape struct {
	Sequence string
	Cause    error
}

func (e *ErrInvalidStyleEscape) Error() string {
	return fmt.Sprintf("frame: invalid style escape %q written to frame: %v", e.Sequence, e.Cause)
}

func (e *ErrInvalidStyleEscape) Unwrap() error { return e.Cause }

// Frame is a coordinate-addressed, sparsely-populated grid of styled
// cells. Occupied positions are kept in row-major sorted order so that
// composition can locate, in O(log n), the one cell whose shadow might
// cover a target position — an unordered map would force a linear scan.
//
// Zero value: not usable; always construct with NewFrame.
type Frame struct {
	size geometry.Size

	// positions is kept sorted in row-major order; cells holds the
	// corresponding styled content. Together they are the frame's
	// ordered position -> cell map.
	positions []geometry.Position
	cells     map[geometry.Position]Cell

	cursorTail   geometry.Position
	currentStyle style.Style

	// pendingEscape accumulates an in-progress style escape sequence,
	// including the leading ESC, until a terminating ASCII letter.
	pendingEscape []rune

	// pendingUTF8 carries incomplete trailing UTF-8 bytes across Write
	// calls so callers may write in arbitrarily small chunks.
	pendingUTF8 []byte

	estimator WidthEstimator
}

// NewFrame creates an empty Frame of the given size. A nil estimator
// defaults to DefaultWidthEstimator.
func NewFrame(size geometry.Size, estimator WidthEstimator) *Frame {
	if estimator == nil {
		estimator = DefaultWidthEstimator{}
	}
	return &Frame{
		size:      size,
		cells:     make(map[geometry.Position]Cell),
		estimator: estimator,
	}
}

// Size returns the frame's size.
func (f *Frame) Size() geometry.Size { return f.size }

// Cursor returns the next write position (cursorTail). It may lie at
// or past the right/bottom edge, meaning further writes on that
// line/frame are silently discarded.
func (f *Frame) Cursor() geometry.Position { return f.cursorTail }

// Write implements io.Writer, treating p as a stream of UTF-8 text
// interleaved with embedded style escape sequences (see writeRune for
// the per-codepoint text-sink rules). Write never returns a non-nil
// error for malformed UTF-8 — an invalid leading byte is treated as a
// single dropped byte — but panics with *ErrInvalidStyleEscape if an
// embedded escape sequence cannot be parsed as a Style, per the
// frame's contract that only sequences this library itself produces
// are expected to appear.
func (f *Frame) Write(p []byte) (int, error) {
	total := len(p)
	data := p
	if len(f.pendingUTF8) > 0 {
		data = append(append([]byte(nil), f.pendingUTF8...), p...)
		f.pendingUTF8 = nil
	}

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			if !utf8.FullRune(data) {
				// Incomplete trailing sequence: stash and wait for more bytes.
				f.pendingUTF8 = append([]byte(nil), data...)
				data = nil
				break
			}
			// A genuinely invalid byte: drop it and continue.
			data = data[1:]
			continue
		}
		f.writeRune(r)
		data = data[size:]
	}

	return total, nil
}

// writeRune applies the text-sink contract to a single decoded codepoint.
func (f *Frame) writeRune(r rune) {
	if len(f.pendingEscape) > 0 {
		f.pendingEscape = append(f.pendingEscape, r)
		if isASCIILetter(r) {
			seq := string(f.pendingEscape)
			f.pendingEscape = nil
			parsed, err := style.Parse(seq)
			if err != nil {
				panic(&ErrInvalidStyleEscape{Sequence: seq, Cause: err})
			}
			f.currentStyle = parsed
		}
		return
	}

	switch r {
	case 0x1B: // ESC: enter in-escape state.
		f.pendingEscape = []rune{r}
		return
	case '\n':
		f.cursorTail = geometry.RowCol(f.cursorTail.Row+1, 0)
		return
	}

	w := f.estimator.Width(r)
	if w == 0 {
		return
	}

	if f.cursorTail.Row < f.size.Rows && f.cursorTail.Col+w <= f.size.Cols {
		f.placeCell(f.cursorTail, NewCell(f.currentStyle, w, r))
	}
	f.cursorTail.Col += w
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// Draw composes src into f with its top-left corner at into. Cells
// the source actually wrote (not synthesized blanks) are copied;
// overlapping partial cells in f are cleared first. f's cursor is
// never touched by composition.
func (f *Frame) Draw(into geometry.Position, src *Frame) {
	for _, srcPos := range src.positions {
		cell := src.cells[srcPos]
		target := into.Add(srcPos)
		if !f.size.Contains(target) {
			continue
		}
		f.clearOverlap(target, cell.Width)
		f.placeCell(target, cell)
	}
}

// placeCell clears any positions the new cell's own shadow would
// collide with, then inserts it.
func (f *Frame) placeCell(pos geometry.Position, cell Cell) {
	f.clearOverlap(pos, cell.Width)
	f.insertAt(pos, cell)
}

// clearOverlap removes whatever occupies [target, target+width) on
// target's row, including a wide cell that starts before target but
// whose shadow extends into it.
func (f *Frame) clearOverlap(target geometry.Position, width int) {
	idx, found := f.findIndex(target)
	candidate := idx
	if !found {
		candidate = idx - 1
	}
	if candidate >= 0 && candidate < len(f.positions) {
		cp := f.positions[candidate]
		if cp.Row == target.Row && cp.Col <= target.Col {
			c := f.cells[cp]
			if c.Width > 1 && cp.Col+c.Width > target.Col {
				f.removeAt(cp)
			}
		}
	}
	for i := 0; i < width; i++ {
		f.removeAt(geometry.RowCol(target.Row, target.Col+i))
	}
}

// findIndex returns the index in the sorted positions slice at which
// pos is found, or would be inserted.
func (f *Frame) findIndex(pos geometry.Position) (idx int, found bool) {
	idx = sort.Search(len(f.positions), func(i int) bool {
		return !f.positions[i].Less(pos)
	})
	found = idx < len(f.positions) && f.positions[idx] == pos
	return
}

func (f *Frame) insertAt(pos geometry.Position, cell Cell) {
	idx, found := f.findIndex(pos)
	if found {
		f.cells[pos] = cell
		return
	}
	f.positions = append(f.positions, geometry.Position{})
	copy(f.positions[idx+1:], f.positions[idx:])
	f.positions[idx] = pos
	f.cells[pos] = cell
}

func (f *Frame) removeAt(pos geometry.Position) {
	idx, found := f.findIndex(pos)
	if !found {
		return
	}
	delete(f.cells, pos)
	f.positions = append(f.positions[:idx], f.positions[idx+1:]...)
}

// Chars enumerates every position in the frame's size, row-major: a
// real cell where one was written (its shadow positions skipped), or
// a synthesized blank styled with the last real cell's style seen so
// far, falling back to the frame's current pen style from cursorTail
// onward.
func (f *Frame) Chars() []PositionedCell {
	result := make([]PositionedCell, 0, f.size.Rows*f.size.Cols)
	lastStyle := f.currentStyle
	posIdx := 0

	for row := 0; row < f.size.Rows; row++ {
		for col := 0; col < f.size.Cols; {
			p := geometry.RowCol(row, col)
			if posIdx < len(f.positions) && f.positions[posIdx] == p {
				cell := f.cells[p]
				result = append(result, PositionedCell{Position: p, Cell: cell})
				lastStyle = cell.Style
				col += cell.Width
				posIdx++
				continue
			}

			st := lastStyle
			if !p.Less(f.cursorTail) {
				st = f.currentStyle
			}
			result = append(result, PositionedCell{Position: p, Cell: Blank(st)})
			col++
		}
	}

	return result
}

// Finalize returns an independent copy of f whose width estimator is
// the default fixed one, ready to be handed to the renderer. This
// strips the frame from whatever estimator the caller built it with,
// so the renderer only ever deals with one concrete representation.
func (f *Frame) Finalize() *Frame {
	clone := &Frame{
		size:         f.size,
		positions:    append([]geometry.Position(nil), f.positions...),
		cells:        make(map[geometry.Position]Cell, len(f.cells)),
		cursorTail:   f.cursorTail,
		currentStyle: f.currentStyle,
		estimator:    DefaultWidthEstimator{},
	}
	for k, v := range f.cells {
		clone.cells[k] = v
	}
	return clone
}
