// Package grapheme centralizes grapheme cluster segmentation over byte
// offsets. Every cursor and range computation in the module goes through
// these helpers so that offsets always land on cluster boundaries.
package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster and its byte offset in the segmented text.
type Cluster struct {
	Offset int
	Text   string
}

// End returns the byte offset just past the cluster.
func (c Cluster) End() int { return c.Offset + len(c.Text) }

// Indices returns the grapheme clusters of text with their byte offsets.
func Indices(text string) []Cluster {
	if text == "" {
		return nil
	}
	out := make([]Cluster, 0, utf8.RuneCountInString(text))
	off := 0
	state := -1
	for len(text) > 0 {
		var c string
		c, text, _, state = uniseg.StepString(text, state)
		out = append(out, Cluster{Offset: off, Text: c})
		off += len(c)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// At returns the cluster starting at byte offset pos.
func At(text string, pos int) (string, bool) {
	if pos < 0 || pos >= len(text) {
		return "", false
	}
	c, _, _, _ := uniseg.StepString(text[pos:], -1)
	return c, true
}

// Next returns the offset reached after stepping over n clusters from pos.
// Stepping stops early at the end of text. It fails only when pos is already
// at the end.
func Next(text string, pos, n int) (int, bool) {
	if pos < 0 || pos >= len(text) {
		return pos, false
	}
	rest := text[pos:]
	state := -1
	for i := 0; i < n && len(rest) > 0; i++ {
		var c string
		c, rest, _, state = uniseg.StepString(rest, state)
		pos += len(c)
	}
	return pos, true
}

// Prev returns the offset reached after stepping back over n clusters from
// pos. Stepping stops early at 0. It fails only when pos is 0.
func Prev(text string, pos, n int) (int, bool) {
	if pos <= 0 || pos > len(text) {
		return pos, false
	}
	cs := Indices(text[:pos])
	k := len(cs) - n
	if k < 0 {
		k = 0
	}
	return cs[k].Offset, true
}

// Nth returns the byte offset of the nth (0-based) cluster of text.
func Nth(text string, n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	off := 0
	state := -1
	for i := 0; len(text) > 0; i++ {
		if i == n {
			return off, true
		}
		var c string
		c, text, _, state = uniseg.StepString(text, state)
		off += len(c)
	}
	return 0, false
}

// IsBoundary reports whether off is a cluster boundary of text. Both 0 and
// len(text) are boundaries.
func IsBoundary(text string, off int) bool {
	if off < 0 || off > len(text) {
		return false
	}
	if off == 0 || off == len(text) {
		return true
	}
	pos := 0
	rest := text
	state := -1
	for len(rest) > 0 && pos < off {
		var c string
		c, rest, _, state = uniseg.StepString(rest, state)
		pos += len(c)
	}
	return pos == off
}

// Floor returns the largest cluster boundary of text that is <= off.
func Floor(text string, off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(text) {
		return len(text)
	}
	pos := 0
	rest := text
	state := -1
	for len(rest) > 0 {
		var c string
		c, rest, _, state = uniseg.StepString(rest, state)
		if pos+len(c) > off {
			return pos
		}
		pos += len(c)
	}
	return pos
}

// Ceil returns the smallest cluster boundary of text that is >= off.
func Ceil(text string, off int) int {
	if off <= 0 {
		return 0
	}
	if off >= len(text) {
		return len(text)
	}
	pos := 0
	rest := text
	state := -1
	for len(rest) > 0 && pos < off {
		var c string
		c, rest, _, state = uniseg.StepString(rest, state)
		pos += len(c)
	}
	return pos
}

// Truncate returns the longest cluster-aligned prefix of text that is at
// most max bytes long.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	if max <= 0 {
		return ""
	}
	end := 0
	rest := text
	state := -1
	for len(rest) > 0 {
		var c string
		c, rest, _, state = uniseg.StepString(rest, state)
		if end+len(c) > max {
			break
		}
		end += len(c)
	}
	return text[:end]
}

// Width returns the terminal cell width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// HasSpace reports whether any rune in cluster is Unicode whitespace.
func HasSpace(cluster string) bool {
	for _, r := range cluster {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}
