package buffer

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// ErrCapacityExceeded is returned when a mutation would grow a bounded buffer
// past its maximum length. The buffer is left unchanged.
var ErrCapacityExceeded = errors.New("buffer: capacity exceeded")

// DefaultMaxLen is the default maximum length of a bounded line, in bytes.
const DefaultMaxLen = 4096

// Range is a half-open byte range: [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

func (r Range) IsEmpty() bool { return r.Start == r.End }

func orderedRange(a, b int) Range {
	if a <= b {
		return Range{Start: a, End: b}
	}
	return Range{Start: b, End: a}
}

// Direction tells which side of the cursor text was removed from.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func mustCount(n int) {
	if n < 1 {
		panic(fmt.Sprintf("buffer: repeat count %d < 1", n))
	}
}

func mustBoundary(text string, off int) {
	if !grapheme.IsBoundary(text, off) {
		panic(fmt.Sprintf("buffer: offset %d is not a grapheme boundary of a %d-byte text", off, len(text)))
	}
}

func mustRange(text string, r Range) {
	if r.Start > r.End {
		panic(fmt.Sprintf("buffer: unordered range [%d, %d)", r.Start, r.End))
	}
	mustBoundary(text, r.Start)
	mustBoundary(text, r.End)
}
