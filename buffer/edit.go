package buffer

import (
	"strings"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// Insert inserts ch repeated n times at the cursor and moves the cursor past
// it. It reports whether the text was appended at the end of the buffer.
func (b *Buffer) Insert(ch rune, n int) (bool, error) {
	mustCount(n)
	return b.insertText(strings.Repeat(string(ch), n))
}

// InsertText inserts text repeated n times at the cursor (yank/paste) and
// moves the cursor past it. Empty text is a no-op.
func (b *Buffer) InsertText(text string, n int) (bool, error) {
	mustCount(n)
	if text == "" {
		return false, nil
	}
	if !b.fits(len(b.text) + len(text)*n) {
		return false, ErrCapacityExceeded
	}
	return b.insertText(strings.Repeat(text, n))
}

func (b *Buffer) insertText(s string) (bool, error) {
	if !b.fits(len(b.text) + len(s)) {
		return false, ErrCapacityExceeded
	}
	at := b.pos
	appended := b.insertAt(at, s)
	b.setPos(grapheme.Ceil(b.text, at+len(s)))
	return appended, nil
}

// YankPop replaces the yankSize bytes before the cursor, which must be the
// text of the previous yank, with text.
func (b *Buffer) YankPop(yankSize int, text string) (bool, error) {
	start := b.pos - yankSize
	mustRange(b.text, Range{Start: start, End: b.pos})
	if text == "" {
		return false, nil
	}
	if !b.fits(len(b.text) - yankSize + len(text)) {
		return false, ErrCapacityExceeded
	}
	end := b.pos
	b.drain(Range{Start: start, End: end}, Backward)
	b.setPos(start)
	return b.insertText(text)
}

// Delete removes n graphemes after the cursor without moving it (the Delete
// key) and returns the removed text.
func (b *Buffer) Delete(n int) (string, bool) {
	return b.Kill(CharForward(n))
}

// Backspace removes n graphemes before the cursor.
func (b *Buffer) Backspace(n int) bool {
	_, ok := b.Kill(CharBackward(n))
	return ok
}

// KillLine kills from the cursor to the end of the line, or the newline when
// the cursor already sits at the end of a line.
func (b *Buffer) KillLine() bool {
	_, ok := b.Kill(LineEnd)
	return ok
}

// KillBuffer kills from the cursor to the end of the buffer.
func (b *Buffer) KillBuffer() bool {
	_, ok := b.Kill(BufferEnd)
	return ok
}

// DiscardLine kills from the start of the line to the cursor, or the
// preceding newline when the cursor already sits at the start of a line.
func (b *Buffer) DiscardLine() bool {
	_, ok := b.Kill(LineStart)
	return ok
}

// DiscardBuffer kills from the start of the buffer to the cursor.
func (b *Buffer) DiscardBuffer() bool {
	_, ok := b.Kill(BufferStart)
	return ok
}

// DeletePrevWord kills n words backward, leaving the cursor at the start of
// the killed text.
func (b *Buffer) DeletePrevWord(w Word, n int) bool {
	_, ok := b.Kill(WordBackward(n, w))
	return ok
}

// DeleteWord kills from the cursor to the start or end of the nth word.
func (b *Buffer) DeleteWord(at At, w Word, n int) bool {
	_, ok := b.Kill(WordForward(n, at, w))
	return ok
}

// DeleteTo kills the range covered by a character search.
func (b *Buffer) DeleteTo(cs CharSearch, n int) bool {
	_, ok := b.Kill(SearchChar(n, cs))
	return ok
}

// DeleteRange removes r and moves the cursor to r.Start.
func (b *Buffer) DeleteRange(r Range) {
	mustRange(b.text, r)
	b.drain(r, Forward)
	b.setPos(grapheme.Floor(b.text, r.Start))
}

// Replace replaces r with text and moves the cursor to the end of text.
func (b *Buffer) Replace(r Range, text string) error {
	mustRange(b.text, r)
	if !b.fits(len(b.text) - r.Len() + len(text)) {
		return ErrCapacityExceeded
	}
	b.replaceRange(r, text)
	b.setPos(grapheme.Ceil(b.text, r.Start+len(text)))
	return nil
}
