package buffer

import "fmt"

// At selects where a forward word motion stops.
type At uint8

const (
	// WordStart stops at the start of the next word (vi w).
	WordStart At = iota
	// BeforeWordEnd stops on the last grapheme of the word (vi e).
	BeforeWordEnd
	// AfterWordEnd stops just past the word (Emacs forward-word).
	AfterWordEnd
)

// SearchKind is the flavour of a vi character search.
type SearchKind uint8

const (
	SearchForwardTo         SearchKind = iota // f
	SearchForwardBefore                       // t
	SearchBackwardTo                          // F
	SearchBackwardAfterChar                   // T
)

// CharSearch searches the line for a single character.
type CharSearch struct {
	Kind SearchKind
	Char rune
}

func ForwardTo(c rune) CharSearch         { return CharSearch{Kind: SearchForwardTo, Char: c} }
func ForwardBefore(c rune) CharSearch     { return CharSearch{Kind: SearchForwardBefore, Char: c} }
func BackwardTo(c rune) CharSearch        { return CharSearch{Kind: SearchBackwardTo, Char: c} }
func BackwardAfterChar(c rune) CharSearch { return CharSearch{Kind: SearchBackwardAfterChar, Char: c} }

// Opposite returns the same search in the other direction (vi ,).
func (cs CharSearch) Opposite() CharSearch {
	switch cs.Kind {
	case SearchForwardTo:
		return BackwardTo(cs.Char)
	case SearchForwardBefore:
		return BackwardAfterChar(cs.Char)
	case SearchBackwardTo:
		return ForwardTo(cs.Char)
	default:
		return ForwardBefore(cs.Char)
	}
}

func (cs CharSearch) backward() bool {
	return cs.Kind == SearchBackwardTo || cs.Kind == SearchBackwardAfterChar
}

// MovementKind enumerates the motions a Movement can describe.
type MovementKind uint8

const (
	MoveWholeLine MovementKind = iota // range only
	MoveLineStart
	MoveLineEnd
	MoveFirstPrintable
	MoveWordBackward
	MoveWordForward
	MoveCharSearch
	MoveCharBackward
	MoveCharForward
	MoveLineUp
	MoveLineDown
	MoveWholeBuffer // range only
	MoveBufferStart
	MoveBufferEnd
)

var movementKindNames = [...]string{
	MoveWholeLine:      "whole-line",
	MoveLineStart:      "line-start",
	MoveLineEnd:        "line-end",
	MoveFirstPrintable: "first-printable",
	MoveWordBackward:   "word-backward",
	MoveWordForward:    "word-forward",
	MoveCharSearch:     "char-search",
	MoveCharBackward:   "char-backward",
	MoveCharForward:    "char-forward",
	MoveLineUp:         "line-up",
	MoveLineDown:       "line-down",
	MoveWholeBuffer:    "whole-buffer",
	MoveBufferStart:    "buffer-start",
	MoveBufferEnd:      "buffer-end",
}

func (k MovementKind) String() string {
	if int(k) < len(movementKindNames) {
		return movementKindNames[k]
	}
	return fmt.Sprintf("MovementKind(%d)", uint8(k))
}

// Movement describes a motion independently of whether it is used to move
// the cursor, copy text or kill it. Count, At, Word and Search are only
// meaningful for the kinds that take them.
type Movement struct {
	Kind   MovementKind
	Count  int
	At     At
	Word   Word
	Search CharSearch
}

var (
	WholeLine      = Movement{Kind: MoveWholeLine}
	LineStart      = Movement{Kind: MoveLineStart}
	LineEnd        = Movement{Kind: MoveLineEnd}
	FirstPrintable = Movement{Kind: MoveFirstPrintable}
	WholeBuffer    = Movement{Kind: MoveWholeBuffer}
	BufferStart    = Movement{Kind: MoveBufferStart}
	BufferEnd      = Movement{Kind: MoveBufferEnd}
)

func WordBackward(n int, w Word) Movement {
	return Movement{Kind: MoveWordBackward, Count: n, Word: w}
}

func WordForward(n int, at At, w Word) Movement {
	return Movement{Kind: MoveWordForward, Count: n, At: at, Word: w}
}

func SearchChar(n int, cs CharSearch) Movement {
	return Movement{Kind: MoveCharSearch, Count: n, Search: cs}
}

func CharBackward(n int) Movement { return Movement{Kind: MoveCharBackward, Count: n} }

func CharForward(n int) Movement { return Movement{Kind: MoveCharForward, Count: n} }

func LineUp(n int) Movement { return Movement{Kind: MoveLineUp, Count: n} }

func LineDown(n int) Movement { return Movement{Kind: MoveLineDown, Count: n} }

// Counted reports whether the movement carries a repeat count.
func (m Movement) Counted() bool {
	switch m.Kind {
	case MoveWordBackward, MoveWordForward, MoveCharSearch,
		MoveCharBackward, MoveCharForward, MoveLineUp, MoveLineDown:
		return true
	default:
		return false
	}
}

// Redo replays the movement with a new repeat count. A count <= 0 keeps the
// previous one; movements without a count are returned unchanged.
func (m Movement) Redo(n int) Movement {
	if n > 0 && m.Counted() {
		m.Count = n
	}
	return m
}

func (m Movement) count() int {
	mustCount(m.Count)
	return m.Count
}

func (m Movement) String() string {
	switch m.Kind {
	case MoveWordBackward:
		return fmt.Sprintf("%s(%d, %s)", m.Kind, m.Count, m.Word)
	case MoveWordForward:
		return fmt.Sprintf("%s(%d, %d, %s)", m.Kind, m.Count, m.At, m.Word)
	case MoveCharSearch:
		return fmt.Sprintf("%s(%d, %d %q)", m.Kind, m.Count, m.Search.Kind, m.Search.Char)
	}
	if m.Counted() {
		return fmt.Sprintf("%s(%d)", m.Kind, m.Count)
	}
	return m.Kind.String()
}
