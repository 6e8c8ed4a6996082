package grapheme

import "testing"

const family = "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"

func TestIndicesAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"
	got := Indices(text)
	if len(got) != 4 {
		t.Fatalf("indices len=%d, want %d", len(got), 4)
	}
	if got[1].Text != "e\u0301" || got[1].Offset != 1 {
		t.Fatalf("indices[1]=%+v, want e+acute at 1", got[1])
	}
	if got[2].Text != family || got[2].Offset != 4 {
		t.Fatalf("indices[2]=%+v, want family emoji at 4", got[2])
	}
	if got[3].Offset != 4+len(family) || got[3].End() != len(text) {
		t.Fatalf("indices[3]=%+v, want last cluster at end", got[3])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
	if Indices("") != nil || Count("") != 0 {
		t.Fatalf("empty text must have no clusters")
	}
}

func TestNextPrev_StepByClusters(t *testing.T) {
	text := "a" + "e\u0301" + family + "b"

	if got, ok := Next(text, 0, 2); !ok || got != 4 {
		t.Fatalf("Next(0,2)=(%d,%v), want (4,true)", got, ok)
	}
	if got, ok := Next(text, 4, 10); !ok || got != len(text) {
		t.Fatalf("Next past end=(%d,%v), want (%d,true)", got, ok, len(text))
	}
	if _, ok := Next(text, len(text), 1); ok {
		t.Fatalf("Next at end must fail")
	}

	if got, ok := Prev(text, len(text), 2); !ok || got != 4 {
		t.Fatalf("Prev(end,2)=(%d,%v), want (4,true)", got, ok)
	}
	if got, ok := Prev(text, 4, 10); !ok || got != 0 {
		t.Fatalf("Prev clamps=(%d,%v), want (0,true)", got, ok)
	}
	if _, ok := Prev(text, 0, 1); ok {
		t.Fatalf("Prev at start must fail")
	}
}

func TestAtAndNth(t *testing.T) {
	text := "x" + family + "y"
	if got, ok := At(text, 1); !ok || got != family {
		t.Fatalf("At(1)=(%q,%v), want family", got, ok)
	}
	if _, ok := At(text, len(text)); ok {
		t.Fatalf("At(end) must fail")
	}
	if off, ok := Nth(text, 2); !ok || off != 1+len(family) {
		t.Fatalf("Nth(2)=(%d,%v), want (%d,true)", off, ok, 1+len(family))
	}
	if _, ok := Nth(text, 3); ok {
		t.Fatalf("Nth past end must fail")
	}
}

func TestIsBoundary(t *testing.T) {
	text := "a" + "e\u0301" + "b"
	cases := []struct {
		off  int
		want bool
	}{
		{0, true},
		{1, true},
		{2, false}, // between e and the combining accent
		{3, false},
		{4, true},
		{5, true},
		{6, false},
		{-1, false},
	}
	for _, tc := range cases {
		if got := IsBoundary(text, tc.off); got != tc.want {
			t.Fatalf("IsBoundary(%d)=%v, want %v", tc.off, got, tc.want)
		}
	}
}

func TestFloorCeil_SnapToClusterEdges(t *testing.T) {
	text := "a" + "e\u0301" + "b"
	if got := Floor(text, 2); got != 1 {
		t.Fatalf("Floor(2)=%d, want 1", got)
	}
	if got := Ceil(text, 2); got != 4 {
		t.Fatalf("Ceil(2)=%d, want 4", got)
	}
	if got := Floor(text, 4); got != 4 {
		t.Fatalf("Floor on boundary=%d, want 4", got)
	}
	if got := Ceil(text, 1); got != 1 {
		t.Fatalf("Ceil on boundary=%d, want 1", got)
	}
	if Floor(text, -3) != 0 || Ceil(text, 99) != len(text) {
		t.Fatalf("out of range offsets must clamp")
	}
}

func TestTruncate_NeverSplitsCluster(t *testing.T) {
	text := "ab" + family
	if got := Truncate(text, 5); got != "ab" {
		t.Fatalf("truncate=%q, want %q", got, "ab")
	}
	if got := Truncate(text, 100); got != text {
		t.Fatalf("truncate no-op=%q", got)
	}
	if got := Truncate(text, 0); got != "" {
		t.Fatalf("truncate to zero=%q", got)
	}
}

func TestWidth(t *testing.T) {
	if got := Width("abc"); got != 3 {
		t.Fatalf("width=%d, want 3", got)
	}
	if got := Width("日本"); got != 4 {
		t.Fatalf("wide width=%d, want 4", got)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty should not be space")
	}
	if !HasSpace("a b") || HasSpace("ab") {
		t.Fatalf("HasSpace mismatch")
	}
}
