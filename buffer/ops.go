package buffer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// WordAction is a case change applied by EditWord.
type WordAction uint8

const (
	Capitalize WordAction = iota
	Lowercase
	Uppercase
)

// TransposeChars swaps the grapheme before the cursor with the one at the
// cursor, or the last two graphemes when the cursor is at the end. The cursor
// ends past the swapped pair.
func (b *Buffer) TransposeChars() bool {
	if b.pos == 0 || grapheme.Count(b.text) < 2 {
		return false
	}
	mid := b.pos
	if mid == len(b.text) {
		mid, _ = grapheme.Prev(b.text, mid, 1)
	}
	start, _ := grapheme.Prev(b.text, mid, 1)
	second, _ := grapheme.At(b.text, mid)
	end := mid + len(second)

	b.replaceRange(Range{Start: start, End: end}, second+b.text[start:mid])
	b.setPos(grapheme.Ceil(b.text, end))
	return true
}

// TransposeWords swaps the word before the cursor with the nth word after
// it, using the IdentifierLike dialect. The cursor ends after the second
// word. Overlapping or unordered words are rejected.
func (b *Buffer) TransposeWords(n int) bool {
	mustCount(n)
	const w = IdentifierLike

	w2End, ok := b.nextWordPos(b.pos, AfterWordEnd, w, n)
	if !ok {
		w2End = b.pos
	}
	w2Beg, ok := b.prevWordPos(w2End, w, 1)
	if !ok {
		w2Beg = w2End
	}
	w1Beg, ok := b.prevWordPos(w2Beg, w, n)
	if !ok {
		w1Beg = w2Beg
	}
	w1End, ok := b.nextWordPos(w1Beg, AfterWordEnd, w, 1)
	if !ok {
		w1End = w1Beg
	}
	if w1Beg == w2Beg || w2Beg < w1End {
		return false
	}

	w1 := b.text[w1Beg:w1End]
	w2 := b.text[w2Beg:w2End]
	between := b.text[w1End:w2Beg]
	b.replaceRange(Range{Start: w1Beg, End: w2End}, w2+between+w1)
	b.setPos(grapheme.Ceil(b.text, w2End))
	return true
}

// EditWord changes the case of the next word, skipping anything that is not
// a letter or digit first, and moves the cursor past it. It reports false
// when no word follows the cursor.
func (b *Buffer) EditWord(a WordAction) (bool, error) {
	start := -1
	for _, c := range grapheme.Indices(b.text[b.pos:]) {
		if isAlnum(c.Text) {
			start = b.pos + c.Offset
			break
		}
	}
	if start < 0 {
		return false, nil
	}
	end, ok := b.nextWordPos(start, AfterWordEnd, AlphanumericOnly, 1)
	if !ok || end == start {
		return false, nil
	}

	word := b.text[start:end]
	result := applyCase(a, word)
	if !b.fits(len(b.text) - len(word) + len(result)) {
		return false, ErrCapacityExceeded
	}
	b.replaceRange(Range{Start: start, End: end}, result)
	b.setPos(grapheme.Ceil(b.text, start+len(result)))
	return true, nil
}

func applyCase(a WordAction, word string) string {
	upper := cases.Upper(language.Und)
	lower := cases.Lower(language.Und)
	switch a {
	case Uppercase:
		return upper.String(word)
	case Lowercase:
		return lower.String(word)
	default:
		first, _ := grapheme.At(word, 0)
		return upper.String(first) + lower.String(word[len(first):])
	}
}

// Indent adds amount spaces to the start of every line touched by m, or with
// dedent removes up to amount leading spaces or tabs from each of them.
// The cursor keeps its place in the text.
func (b *Buffer) Indent(m Movement, amount int, dedent bool) error {
	if amount <= 0 {
		return nil
	}
	start, end := b.indentSpan(m)
	lines := strings.Split(b.text[start:end], "\n")

	pos := b.pos
	index := start
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if dedent {
			lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			deleting := len(grapheme.Truncate(lead, amount))
			if pos >= index {
				if pos-index < deleting {
					pos = index
				} else {
					pos -= deleting
				}
			}
			sb.WriteString(line[deleting:])
			index += len(line) + 1 - deleting
			continue
		}
		if pos >= index {
			pos += amount
		}
		sb.WriteString(strings.Repeat(" ", amount))
		sb.WriteString(line)
		index += amount + len(line) + 1
	}

	out := sb.String()
	if !b.fits(len(b.text) - (end - start) + len(out)) {
		return ErrCapacityExceeded
	}
	b.replaceRange(Range{Start: start, End: end}, out)
	b.setPos(grapheme.Floor(b.text, pos))
	return nil
}

// indentSpan widens the range of m to the whole lines it touches. Motions
// that stay on the cursor line select just that line.
func (b *Buffer) indentSpan(m Movement) (int, int) {
	start, end := b.pos, b.pos
	switch m.Kind {
	case MoveBufferEnd:
		end = len(b.text)
	case MoveWholeBuffer:
		start, end = 0, len(b.text)
	case MoveBufferStart:
		start = 0
	case MoveWordBackward:
		if p, ok := b.prevWordPos(b.pos, m.Word, m.count()); ok {
			start = p
		}
	case MoveWordForward:
		if p, ok := b.nextWordPos(b.pos, m.At, m.Word, m.count()); ok {
			end = p
		}
	case MoveLineUp:
		if r, ok := b.linesUp(m.count()); ok {
			start = r.Start
		}
	case MoveLineDown:
		if r, ok := b.linesDown(m.count()); ok {
			end = r.End
			if end > 0 && b.text[end-1] == '\n' {
				end--
			}
		}
	}
	return b.lineStart(start), b.lineEnd(end)
}
