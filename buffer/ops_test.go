package buffer

import (
	"errors"
	"testing"
)

func TestTransposeChars(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		pos      int
		wantText string
		wantPos  int
	}{
		{"middle", "abc", 1, "bac", 2},
		{"end swaps last two", "abc", 3, "acb", 3},
		{"wide graphemes", "a日", 1, "日a", 4},
		{"clusters", "x" + family, 1, family + "x", 1 + len(family)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := at(tc.text, tc.pos)
			if !b.TransposeChars() {
				t.Fatalf("TransposeChars reported no change")
			}
			if b.Text() != tc.wantText || b.Pos() != tc.wantPos {
				t.Fatalf("got %#v, want text=%q pos=%d", b, tc.wantText, tc.wantPos)
			}
		})
	}
}

func TestTransposeChars_Rejected(t *testing.T) {
	if at("abc", 0).TransposeChars() {
		t.Fatalf("nothing before the cursor")
	}
	if at("a", 1).TransposeChars() {
		t.Fatalf("single grapheme")
	}
}

func TestTransposeChars_SwapTwiceRestores(t *testing.T) {
	b := at("abcd", 2)
	if !b.TransposeChars() || b.Text() != "acbd" || b.Pos() != 3 {
		t.Fatalf("first swap: %#v", b)
	}
	b.SetPos(2)
	if !b.TransposeChars() || b.Text() != "abcd" {
		t.Fatalf("second swap: %#v", b)
	}
}

func TestTransposeWords(t *testing.T) {
	b := at("foo bar", 4)
	if !b.TransposeWords(1) {
		t.Fatalf("TransposeWords reported no change")
	}
	if b.Text() != "bar foo" || b.Pos() != 7 {
		t.Fatalf("got %#v", b)
	}

	b = at("aa bb cc", 3)
	if !b.TransposeWords(1) || b.Text() != "bb aa cc" || b.Pos() != 5 {
		t.Fatalf("got %#v", b)
	}
}

func TestTransposeWords_RejectedLeavesBufferUnchanged(t *testing.T) {
	b := at("foo bar", 0)
	v := b.Version()
	if b.TransposeWords(1) {
		t.Fatalf("no word before the cursor")
	}
	if b.Text() != "foo bar" || b.Pos() != 0 || b.Version() != v {
		t.Fatalf("rejected transpose mutated the buffer: %#v", b)
	}
	mustPanic(t, "TransposeWords(0)", func() { b.TransposeWords(0) })
}

func TestEditWord(t *testing.T) {
	b := at("  hello world", 0)
	if ok, err := b.EditWord(Capitalize); !ok || err != nil {
		t.Fatalf("capitalize=(%v,%v)", ok, err)
	}
	if b.Text() != "  Hello world" || b.Pos() != 7 {
		t.Fatalf("got %#v", b)
	}
	if ok, err := b.EditWord(Uppercase); !ok || err != nil {
		t.Fatalf("uppercase=(%v,%v)", ok, err)
	}
	if b.Text() != "  Hello WORLD" || b.Pos() != 13 {
		t.Fatalf("got %#v", b)
	}
	if ok, _ := b.EditWord(Lowercase); ok {
		t.Fatalf("no word left after the cursor")
	}

	cases := []struct {
		action WordAction
		in     string
		want   string
	}{
		{Lowercase, "FOO", "foo"},
		{Capitalize, "hELLO", "Hello"},
		{Uppercase, "stra\u00dfe", "STRASSE"},
		{Capitalize, "\u00e9t\u00c9", "\u00c9t\u00e9"},
	}
	for _, tc := range cases {
		b := at(tc.in, 0)
		if ok, err := b.EditWord(tc.action); !ok || err != nil {
			t.Fatalf("EditWord(%q)=(%v,%v)", tc.in, ok, err)
		}
		if b.Text() != tc.want || b.Pos() != len(tc.want) {
			t.Fatalf("got %#v, want %q", b, tc.want)
		}
	}
}

func TestEditWord_CapacityExceeded(t *testing.T) {
	// U+0149 uppercases to two runes and three bytes.
	b := New("\u0149", Bounded(2))
	if _, err := b.EditWord(Uppercase); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err=%v, want ErrCapacityExceeded", err)
	}
	if b.Text() != "\u0149" || b.Pos() != 0 {
		t.Fatalf("rejected edit mutated the buffer: %#v", b)
	}
}

func TestIndent(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		pos      int
		m        Movement
		amount   int
		dedent   bool
		wantText string
		wantPos  int
	}{
		{"whole buffer", "a\nb", 0, WholeBuffer, 2, false, "  a\n  b", 2},
		{"current line", "a\nb", 2, WholeLine, 2, false, "a\n  b", 4},
		{"line down", "a\nb\nc", 0, LineDown(1), 2, false, "  a\n  b\nc", 2},
		{"line up", "a\nb\nc", 4, LineUp(1), 2, false, "a\n  b\n  c", 8},
		{"dedent", "    a\n  b", 5, WholeBuffer, 3, true, " a\nb", 2},
		{"dedent cursor in blanks", "    a", 1, WholeLine, 4, true, "a", 0},
		{"dedent without indentation", "a\nb", 1, WholeBuffer, 2, true, "a\nb", 1},
		{"dedent keeps carriage returns", "  x\r\n\r\n  y", 0, WholeBuffer, 2, true, "x\r\n\r\ny", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := at(tc.text, tc.pos)
			if err := b.Indent(tc.m, tc.amount, tc.dedent); err != nil {
				t.Fatalf("indent: %v", err)
			}
			if b.Text() != tc.wantText || b.Pos() != tc.wantPos {
				t.Fatalf("got %#v, want text=%q pos=%d", b, tc.wantText, tc.wantPos)
			}
		})
	}
}

func TestIndent_CapacityExceeded(t *testing.T) {
	b := New("ab", Bounded(4))
	if err := b.Indent(WholeLine, 3, false); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("err=%v, want ErrCapacityExceeded", err)
	}
	if b.Text() != "ab" {
		t.Fatalf("rejected indent mutated the buffer: %#v", b)
	}
}
