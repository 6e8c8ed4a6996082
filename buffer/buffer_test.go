package buffer

import (
	"strings"
	"testing"
)

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467\u200d\U0001F466"

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNew_Defaults(t *testing.T) {
	b := New("hello", Options{})
	if b.Text() != "hello" || b.String() != "hello" {
		t.Fatalf("text=%q, want %q", b.Text(), "hello")
	}
	if b.Pos() != 0 || b.Len() != 5 || b.IsEmpty() {
		t.Fatalf("pos=%d len=%d empty=%v", b.Pos(), b.Len(), b.IsEmpty())
	}
	if b.Options().IsBounded() {
		t.Fatalf("zero options must be unbounded")
	}
	if !New("", Unbounded()).IsEmpty() {
		t.Fatalf("empty buffer must report IsEmpty")
	}
}

func TestNew_BoundedTruncatesOnGraphemeBoundary(t *testing.T) {
	b := New("ab"+family, Bounded(5))
	if got := b.Text(); got != "ab" {
		t.Fatalf("text=%q, want %q", got, "ab")
	}
	if !b.Options().IsBounded() || b.Options().MaxLen != 5 {
		t.Fatalf("options=%+v, want bounded 5", b.Options())
	}
}

func TestUpdate_ReplacesTextAndCursor(t *testing.T) {
	b := New("old", Unbounded())
	b.Update("new text", 4)
	if b.Text() != "new text" || b.Pos() != 4 {
		t.Fatalf("text=%q pos=%d, want %q 4", b.Text(), b.Pos(), "new text")
	}

	bounded := New("", Bounded(2))
	bounded.Update("abc", 3)
	if bounded.Text() != "ab" || bounded.Pos() != 2 {
		t.Fatalf("bounded text=%q pos=%d, want %q 2", bounded.Text(), bounded.Pos(), "ab")
	}

	mustPanic(t, "Update past end", func() { b.Update("ab", 3) })
	mustPanic(t, "Update mid grapheme", func() { b.Update("e\u0301", 1) })
}

func TestSetPos_Preconditions(t *testing.T) {
	b := New("xe\u0301", Unbounded())
	b.SetPos(1)
	if b.Pos() != 1 {
		t.Fatalf("pos=%d, want 1", b.Pos())
	}
	mustPanic(t, "SetPos mid grapheme", func() { b.SetPos(2) })
	mustPanic(t, "SetPos negative", func() { b.SetPos(-1) })
	mustPanic(t, "SetPos past end", func() { b.SetPos(5) })
}

func TestVersion_IncrementsOnEffectiveChange(t *testing.T) {
	b := New("ab", Unbounded())
	v0 := b.Version()

	b.SetPos(1)
	v1 := b.Version()
	if v1 == v0 {
		t.Fatalf("expected version bump on cursor move")
	}

	b.SetPos(1)
	if b.Version() != v1 {
		t.Fatalf("no-op SetPos must not bump version")
	}

	if _, err := b.Insert('x', 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if b.Version() <= v1 {
		t.Fatalf("expected version bump on insert")
	}

	v2 := b.Version()
	b.Copy(WholeBuffer)
	if b.Version() != v2 {
		t.Fatalf("copy must not bump version")
	}
}

func TestGraphemeAtCursor_AndNextPrev(t *testing.T) {
	b := New("a"+family+"c", Unbounded())
	b.SetPos(1)
	if g, ok := b.GraphemeAtCursor(); !ok || g != family {
		t.Fatalf("grapheme=(%q,%v), want family", g, ok)
	}
	if p, ok := b.NextPos(1); !ok || p != 1+len(family) {
		t.Fatalf("NextPos(1)=(%d,%v), want %d", p, ok, 1+len(family))
	}
	if p, ok := b.NextPos(9); !ok || p != b.Len() {
		t.Fatalf("NextPos(9)=(%d,%v), want end", p, ok)
	}
	if p, ok := b.PrevPos(1); !ok || p != 0 {
		t.Fatalf("PrevPos(1)=(%d,%v), want 0", p, ok)
	}

	b.SetPos(b.Len())
	if _, ok := b.GraphemeAtCursor(); ok {
		t.Fatalf("no grapheme at end")
	}
	if _, ok := b.NextPos(1); ok {
		t.Fatalf("NextPos at end must fail")
	}
	mustPanic(t, "NextPos(0)", func() { b.NextPos(0) })
}

func TestIsEndOfInput(t *testing.T) {
	b := New("abc  \n", Unbounded())
	b.SetPos(3)
	if !b.IsEndOfInput() {
		t.Fatalf("only blanks follow the cursor")
	}
	b.SetPos(2)
	if b.IsEndOfInput() {
		t.Fatalf("text follows the cursor")
	}
}

func TestDisplayColumn_UsesCellWidthWithinLine(t *testing.T) {
	b := New("x\n日本語", Unbounded())
	b.SetPos(b.Len())
	if got := b.DisplayColumn(); got != 6 {
		t.Fatalf("column=%d, want 6", got)
	}
	b.SetPos(5)
	if got := b.DisplayColumn(); got != 2 {
		t.Fatalf("column=%d, want 2", got)
	}
	b.SetPos(1)
	if got := b.DisplayColumn(); got != 1 {
		t.Fatalf("column=%d, want 1", got)
	}
}

func TestGoString_ShowsTextAndCursor(t *testing.T) {
	b := New("ab", Unbounded())
	b.SetPos(1)
	if got := b.GoString(); !strings.Contains(got, `"ab"`) || !strings.Contains(got, "pos: 1") {
		t.Fatalf("GoString=%q", got)
	}
}
