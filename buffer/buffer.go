package buffer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// Options fixes the capacity policy of a Buffer at construction.
type Options struct {
	// MaxLen bounds the text length in bytes. Zero means unbounded.
	MaxLen int
}

// Bounded returns options for a buffer that never grows past maxLen bytes.
func Bounded(maxLen int) Options { return Options{MaxLen: maxLen} }

// Unbounded returns options for a buffer that grows without limit.
func Unbounded() Options { return Options{} }

// IsBounded reports whether the options carry a capacity limit.
func (o Options) IsBounded() bool { return o.MaxLen > 0 }

// Buffer is the edited text and its cursor position.
//
// The cursor is a byte offset that always lies on a grapheme boundary.
type Buffer struct {
	text    string
	pos     int
	version uint64

	opt      Options
	listener Listener
}

// New returns a buffer holding text with the cursor at 0. Text longer than a
// bounded capacity is cut at the last grapheme boundary that fits.
func New(text string, opt Options) *Buffer {
	if opt.MaxLen < 0 {
		opt.MaxLen = 0
	}
	if opt.IsBounded() {
		text = grapheme.Truncate(text, opt.MaxLen)
	}
	return &Buffer{text: text, opt: opt}
}

func (b *Buffer) Text() string { return b.text }

func (b *Buffer) String() string { return b.text }

func (b *Buffer) Options() Options { return b.opt }

// Version increments whenever the text or the cursor changes.
func (b *Buffer) Version() uint64 { return b.version }

// Pos returns the cursor byte offset.
func (b *Buffer) Pos() int { return b.pos }

// SetPos moves the cursor. pos must be a grapheme boundary within the text.
func (b *Buffer) SetPos(pos int) {
	mustBoundary(b.text, pos)
	b.setPos(pos)
}

// Len returns the text length in bytes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) IsEmpty() bool { return b.text == "" }

// Update replaces the whole text and sets the cursor. pos must be a grapheme
// boundary of text. For a bounded buffer, text is cut at the last boundary
// that fits and the cursor is clamped to the new end.
func (b *Buffer) Update(text string, pos int) {
	mustBoundary(text, pos)
	if b.opt.IsBounded() {
		text = grapheme.Truncate(text, b.opt.MaxLen)
		if pos > len(text) {
			pos = len(text)
		}
	}
	b.replaceRange(Range{Start: 0, End: len(b.text)}, text)
	b.setPos(pos)
}

// GraphemeAtCursor returns the grapheme right after the cursor.
func (b *Buffer) GraphemeAtCursor() (string, bool) {
	return grapheme.At(b.text, b.pos)
}

// NextPos returns the position n graphemes after the cursor, stopping at the
// end of the text. It fails when the cursor is already at the end.
func (b *Buffer) NextPos(n int) (int, bool) {
	mustCount(n)
	return grapheme.Next(b.text, b.pos, n)
}

// PrevPos returns the position n graphemes before the cursor, stopping at 0.
// It fails when the cursor is already at 0.
func (b *Buffer) PrevPos(n int) (int, bool) {
	mustCount(n)
	return grapheme.Prev(b.text, b.pos, n)
}

// IsEndOfInput reports whether only whitespace follows the cursor.
func (b *Buffer) IsEndOfInput() bool {
	return b.pos >= len(strings.TrimRightFunc(b.text, unicode.IsSpace))
}

// DisplayColumn returns the terminal cell column of the cursor within its
// line.
func (b *Buffer) DisplayColumn() int {
	return grapheme.Width(b.text[b.lineStart(b.pos):b.pos])
}

// GoString keeps %#v output readable in test failures.
func (b *Buffer) GoString() string {
	return fmt.Sprintf("buffer.Buffer{text: %q, pos: %d}", b.text, b.pos)
}

func (b *Buffer) fits(newLen int) bool {
	return !b.opt.IsBounded() || newLen <= b.opt.MaxLen
}

func (b *Buffer) setPos(pos int) {
	if pos == b.pos {
		return
	}
	b.pos = pos
	b.version++
}

// lineStart returns the offset of the first byte of the line holding pos.
func (b *Buffer) lineStart(pos int) int {
	return strings.LastIndexByte(b.text[:pos], '\n') + 1
}

// lineEnd returns the offset of the newline ending the line holding pos, or
// the text length on the last line. A CR before the newline stays outside
// the line so the result is a grapheme boundary.
func (b *Buffer) lineEnd(pos int) int {
	i := strings.IndexByte(b.text[pos:], '\n')
	if i < 0 {
		return len(b.text)
	}
	return trimCR(b.text, pos, pos+i)
}

func trimCR(text string, start, end int) int {
	if end > start && text[end-1] == '\r' {
		return end - 1
	}
	return end
}
