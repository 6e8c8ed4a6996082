package buffer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/lineedit/internal/grapheme"
)

// Word selects the rule set that decides what a word is.
type Word uint8

const (
	// WhitespaceDelimited treats any run of non-blank graphemes as a word
	// (vi W, B, E).
	WhitespaceDelimited Word = iota
	// AlphanumericOnly treats runs of letters and digits as words (Emacs).
	AlphanumericOnly
	// IdentifierLike treats runs of letters, digits and '_' as words, and
	// runs of other non-blank graphemes as separate words (vi w, b, e).
	IdentifierLike
)

func (w Word) String() string {
	switch w {
	case WhitespaceDelimited:
		return "big"
	case AlphanumericOnly:
		return "emacs"
	case IdentifierLike:
		return "vi"
	default:
		return fmt.Sprintf("Word(%d)", uint8(w))
	}
}

// ParseWord parses a dialect name as produced by Word.String.
func ParseWord(s string) (Word, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big", "whitespace":
		return WhitespaceDelimited, nil
	case "emacs", "alphanumeric":
		return AlphanumericOnly, nil
	case "vi", "identifier":
		return IdentifierLike, nil
	default:
		return 0, fmt.Errorf("buffer: unknown word dialect %q", s)
	}
}

// IsWordStart reports whether a word starts at cur, given the grapheme prev
// right before it.
func IsWordStart(w Word, prev, cur string) bool {
	return (!isWordChar(w, prev) && isWordChar(w, cur)) ||
		(w == IdentifierLike && !isOtherChar(prev) && isOtherChar(cur))
}

// IsWordEnd reports whether a word ends at cur, given the grapheme next right
// after it.
func IsWordEnd(w Word, cur, next string) bool {
	return (!isWordChar(w, next) && isWordChar(w, cur)) ||
		(w == IdentifierLike && !isOtherChar(next) && isOtherChar(cur))
}

func isWordChar(w Word, g string) bool {
	switch w {
	case AlphanumericOnly:
		return isAlnum(g)
	case IdentifierLike:
		return isIdentChar(g)
	default:
		return g != "" && !grapheme.HasSpace(g)
	}
}

// isAlnum accepts a letter or digit base rune followed by letters, digits or
// combining marks, so decomposed accents stay inside the word.
func isAlnum(g string) bool {
	if g == "" {
		return false
	}
	base, size := utf8.DecodeRuneInString(g)
	if !unicode.IsLetter(base) && !unicode.IsNumber(base) {
		return false
	}
	for _, r := range g[size:] {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.Is(unicode.M, r) {
			return false
		}
	}
	return true
}

func isIdentChar(g string) bool {
	return g == "_" || isAlnum(g)
}

func isOtherChar(g string) bool {
	return g != "" && !grapheme.HasSpace(g) && !isIdentChar(g)
}
