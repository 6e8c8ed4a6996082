package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// MoveTo moves the cursor to the target of m and reports whether the cursor
// changed. WholeLine and WholeBuffer describe ranges, not positions, and never
// move the cursor.
func (b *Buffer) MoveTo(m Movement) bool {
	target, ok := b.target(m)
	if !ok || target == b.pos {
		return false
	}
	b.setPos(target)
	return true
}

func (b *Buffer) MoveForward(n int) bool { return b.MoveTo(CharForward(n)) }

func (b *Buffer) MoveBackward(n int) bool { return b.MoveTo(CharBackward(n)) }

func (b *Buffer) MoveHome() bool { return b.MoveTo(LineStart) }

func (b *Buffer) MoveEnd() bool { return b.MoveTo(LineEnd) }

func (b *Buffer) MoveBufferStart() bool { return b.MoveTo(BufferStart) }

func (b *Buffer) MoveBufferEnd() bool { return b.MoveTo(BufferEnd) }

func (b *Buffer) MoveToPrevWord(w Word, n int) bool { return b.MoveTo(WordBackward(n, w)) }

func (b *Buffer) MoveToNextWord(at At, w Word, n int) bool { return b.MoveTo(WordForward(n, at, w)) }

func (b *Buffer) MoveToLineUp(n int) bool { return b.MoveTo(LineUp(n)) }

func (b *Buffer) MoveToLineDown(n int) bool { return b.MoveTo(LineDown(n)) }

// MoveToChar moves the cursor to the nth match of a character search.
func (b *Buffer) MoveToChar(cs CharSearch, n int) bool { return b.MoveTo(SearchChar(n, cs)) }

func (b *Buffer) target(m Movement) (int, bool) {
	switch m.Kind {
	case MoveLineStart:
		return b.lineStart(b.pos), true
	case MoveLineEnd:
		return b.lineEnd(b.pos), true
	case MoveFirstPrintable:
		return b.firstPrintable(), true
	case MoveWordBackward:
		return b.prevWordPos(b.pos, m.Word, m.count())
	case MoveWordForward:
		return b.nextWordPos(b.pos, m.At, m.Word, m.count())
	case MoveCharSearch:
		return b.searchCharPos(m.Search, m.count())
	case MoveCharBackward:
		return b.PrevPos(m.count())
	case MoveCharForward:
		return b.NextPos(m.count())
	case MoveLineUp:
		return b.lineUpPos(m.count())
	case MoveLineDown:
		return b.lineDownPos(m.count())
	case MoveBufferStart:
		return 0, true
	case MoveBufferEnd:
		return len(b.text), true
	default:
		return 0, false
	}
}

// firstPrintable returns the first non-blank grapheme of the cursor line, or
// the line end when the line is blank.
func (b *Buffer) firstPrintable() int {
	start := b.lineStart(b.pos)
	end := b.lineEnd(b.pos)
	for _, c := range grapheme.Indices(b.text[start:end]) {
		if !grapheme.IsSpace(c.Text) {
			return start + c.Offset
		}
	}
	return end
}

// prevWordPos walks left from pos to the start of the nth word. Running out
// of text lands on 0.
func (b *Buffer) prevWordPos(pos int, w Word, n int) (int, bool) {
	if pos == 0 {
		return 0, false
	}
	gs := grapheme.Indices(b.text[:pos])
	i := len(gs)
	for ; n > 0; n-- {
		j := i - 1
		for j > 0 && !IsWordStart(w, gs[j-1].Text, gs[j].Text) {
			j--
		}
		if j <= 0 {
			return 0, true
		}
		i = j
	}
	return gs[i].Offset, true
}

// nextWordPos walks right from pos to the start or end of the nth word.
//
// When the words run out, AfterWordEnd (and the Emacs dialect) land at the
// end of the text; WordStart and BeforeWordEnd land on the last grapheme.
func (b *Buffer) nextWordPos(pos int, at At, w Word, n int) (int, bool) {
	if pos >= len(b.text) {
		return 0, false
	}
	gs := grapheme.Indices(b.text[pos:])
	afterEnd := at == AfterWordEnd || w == AlphanumericOnly

	cur := 0
	if at == BeforeWordEnd {
		cur = 1
	}
	found := -1
	for ; n > 0; n-- {
		found = -1
		for k := cur; k+1 < len(gs); k++ {
			if at == WordStart {
				if IsWordStart(w, gs[k].Text, gs[k+1].Text) {
					found = k + 1
					break
				}
				continue
			}
			if IsWordEnd(w, gs[k].Text, gs[k+1].Text) {
				if afterEnd {
					found = k + 1
				} else {
					found = k
				}
				break
			}
		}
		if found < 0 {
			break
		}
		cur = found
		if at == BeforeWordEnd {
			cur++
		}
	}
	if found >= 0 {
		return pos + gs[found].Offset, true
	}
	if afterEnd {
		return len(b.text), true
	}
	last := len(gs) - 1
	if last <= 0 || cur > last {
		return 0, false
	}
	return pos + gs[last].Offset, true
}

// lineUpPos keeps the grapheme column of the cursor n lines up. Lines that
// are too short put the cursor at their end.
func (b *Buffer) lineUpPos(n int) (int, bool) {
	off := strings.LastIndexByte(b.text[:b.pos], '\n')
	if off < 0 {
		return 0, false
	}
	column := grapheme.Count(b.text[off+1 : b.pos])

	destStart := strings.LastIndexByte(b.text[:off], '\n') + 1
	destEnd := off
	for i := 1; i < n; i++ {
		if destStart == 0 {
			break
		}
		destEnd = destStart - 1
		destStart = strings.LastIndexByte(b.text[:destEnd], '\n') + 1
	}
	return b.columnIn(destStart, trimCR(b.text, destStart, destEnd), column), true
}

func (b *Buffer) lineDownPos(n int) (int, bool) {
	off := strings.IndexByte(b.text[b.pos:], '\n')
	if off < 0 {
		return 0, false
	}
	column := grapheme.Count(b.text[b.lineStart(b.pos):b.pos])

	destStart := b.pos + off + 1
	destEnd := b.lineEnd(destStart)
	for i := 1; i < n; i++ {
		if destEnd == len(b.text) {
			break
		}
		destStart = strings.IndexByte(b.text[destEnd:], '\n') + destEnd + 1
		destEnd = b.lineEnd(destStart)
	}
	return b.columnIn(destStart, destEnd, column), true
}

func (b *Buffer) columnIn(start, end, column int) int {
	if off, ok := grapheme.Nth(b.text[start:end], column); ok {
		return start + off
	}
	return end
}

// linesUp returns the range covering the cursor line and the n lines above
// it, including the newline that ends the cursor line.
func (b *Buffer) linesUp(n int) (Range, bool) {
	off := strings.LastIndexByte(b.text[:b.pos], '\n')
	if off < 0 {
		return Range{}, false
	}
	start := off + 1
	end := len(b.text)
	if i := strings.IndexByte(b.text[b.pos:], '\n'); i >= 0 {
		end = b.pos + i + 1
	}
	for ; n > 0; n-- {
		prev := strings.LastIndexByte(b.text[:start-1], '\n')
		if prev < 0 {
			start = 0
			break
		}
		start = prev + 1
	}
	return Range{Start: start, End: end}, true
}

// linesDown returns the range covering the cursor line and the n lines below
// it, starting at the newline that precedes the cursor line.
func (b *Buffer) linesDown(n int) (Range, bool) {
	off := strings.IndexByte(b.text[b.pos:], '\n')
	if off < 0 {
		return Range{}, false
	}
	end := b.pos + off + 1
	start := strings.LastIndexByte(b.text[:b.pos], '\n')
	if start < 0 {
		start = 0
	} else if start > 0 && b.text[start-1] == '\r' {
		start--
	}
	for ; n > 0; n-- {
		next := strings.IndexByte(b.text[end:], '\n')
		if next < 0 {
			end = len(b.text)
			break
		}
		end += next + 1
	}
	return Range{Start: start, End: end}, true
}

// searchMatch finds the grapheme whose base rune is cs.Char: the nth one
// after the grapheme under the cursor for forward searches, the nth one left
// of the cursor for backward searches. With fewer than n matches the
// farthest one wins.
func (b *Buffer) searchMatch(cs CharSearch, n int) (grapheme.Cluster, bool) {
	var match grapheme.Cluster
	found := false
	if cs.backward() {
		gs := grapheme.Indices(b.text[:b.pos])
		for i := len(gs) - 1; i >= 0 && n > 0; i-- {
			if baseRune(gs[i].Text) == cs.Char {
				match, found = gs[i], true
				n--
			}
		}
		return match, found
	}

	cc, ok := b.GraphemeAtCursor()
	if !ok {
		return match, false
	}
	shift := b.pos + len(cc)
	for _, c := range grapheme.Indices(b.text[shift:]) {
		if n == 0 {
			break
		}
		if baseRune(c.Text) == cs.Char {
			match, found = grapheme.Cluster{Offset: shift + c.Offset, Text: c.Text}, true
			n--
		}
	}
	return match, found
}

// searchCharPos returns the cursor target of a character search.
func (b *Buffer) searchCharPos(cs CharSearch, n int) (int, bool) {
	match, ok := b.searchMatch(cs, n)
	if !ok {
		return 0, false
	}
	switch cs.Kind {
	case SearchBackwardTo, SearchForwardTo:
		return match.Offset, true
	case SearchBackwardAfterChar:
		return match.End(), true
	default:
		p, _ := grapheme.Prev(b.text, match.Offset, 1)
		return p, true
	}
}

// searchCharRange returns the range a character search covers when used as
// an operator: f includes the match, t stops before it, F covers the match up
// to the cursor, T stops after it.
func (b *Buffer) searchCharRange(cs CharSearch, n int) (Range, bool) {
	match, ok := b.searchMatch(cs, n)
	if !ok {
		return Range{}, false
	}
	switch cs.Kind {
	case SearchForwardTo:
		return Range{Start: b.pos, End: match.End()}, true
	case SearchForwardBefore:
		return Range{Start: b.pos, End: match.Offset}, true
	case SearchBackwardTo:
		return Range{Start: match.Offset, End: b.pos}, true
	default:
		return Range{Start: match.End(), End: b.pos}, true
	}
}

func baseRune(g string) rune {
	r, _ := utf8.DecodeRuneInString(g)
	return r
}
