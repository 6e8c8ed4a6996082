package buffer

import "github.com/iw2rmb/lineedit/internal/grapheme"

// Resolve returns the byte range m covers from the cursor without changing
// the buffer. It fails on an empty buffer, when the motion finds no target,
// or when the covered range is empty.
func (b *Buffer) Resolve(m Movement) (Range, bool) {
	if b.IsEmpty() {
		return Range{}, false
	}
	r, ok := b.resolve(m)
	if !ok || r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// Copy returns the text covered by m without changing the buffer.
func (b *Buffer) Copy(m Movement) (string, bool) {
	r, ok := b.Resolve(m)
	if !ok {
		return "", false
	}
	return b.text[r.Start:r.End], true
}

// Kill removes the text covered by m, leaves the cursor at the start of the
// removed range and returns the removed text.
//
// At a line boundary, killing to the line end removes the newline, killing to
// the line start removes the preceding newline and killing an empty whole
// line removes its newline.
func (b *Buffer) Kill(m Movement) (string, bool) {
	r, ok := b.killRange(m)
	if !ok {
		return "", false
	}
	dir := Forward
	if r.End == b.pos && r.Start < b.pos {
		dir = Backward
	}
	if m.Kind != MoveCharForward && m.Kind != MoveCharBackward {
		b.startKill()
		defer b.stopKill()
	}
	killed := b.drain(r, dir)
	b.setPos(grapheme.Floor(b.text, r.Start))
	return killed, true
}

func (b *Buffer) killRange(m Movement) (Range, bool) {
	if b.IsEmpty() {
		return Range{}, false
	}
	switch m.Kind {
	case MoveLineEnd:
		if b.pos < len(b.text) && b.pos == b.lineEnd(b.pos) {
			next, _ := b.NextPos(1)
			return Range{Start: b.pos, End: next}, true
		}
	case MoveLineStart:
		if b.pos > 0 && b.pos == b.lineStart(b.pos) {
			prev, _ := b.PrevPos(1)
			return Range{Start: prev, End: b.pos}, true
		}
	case MoveWholeLine:
		start := b.lineStart(b.pos)
		if start == b.lineEnd(b.pos) && start < len(b.text) {
			next, _ := grapheme.Next(b.text, start, 1)
			return Range{Start: start, End: next}, true
		}
	}
	return b.Resolve(m)
}

func (b *Buffer) resolve(m Movement) (Range, bool) {
	switch m.Kind {
	case MoveWholeLine:
		return Range{Start: b.lineStart(b.pos), End: b.lineEnd(b.pos)}, true
	case MoveWholeBuffer:
		return Range{Start: 0, End: len(b.text)}, true
	case MoveCharSearch:
		return b.searchCharRange(m.Search, m.count())
	case MoveLineUp:
		return b.linesUp(m.count())
	case MoveLineDown:
		return b.linesDown(m.count())
	}
	target, ok := b.target(m)
	if !ok {
		return Range{}, false
	}
	return orderedRange(b.pos, target), true
}
