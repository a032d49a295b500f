package rope

import "testing"

func TestFromStringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"single line", "hello"},
		{"multi line", "a\nb\nc"},
		{"unicode", "héllo 世界 🎉"},
		{"trailing newline", "a\nb\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := FromString(tt.input)
			if r.String() != tt.input {
				t.Errorf("String() = %q, want %q", r.String(), tt.input)
			}
			if r.Len() != len(tt.input) {
				t.Errorf("Len() = %d, want %d", r.Len(), len(tt.input))
			}
		})
	}
}

func TestLineCountAndText(t *testing.T) {
	r := FromString("one\ntwo\nthree")
	if got := r.LineCount(); got != 3 {
		t.Fatalf("LineCount() = %d, want 3", got)
	}
	for i, want := range []string{"one", "two", "three"} {
		if got := r.LineText(uint32(i)); got != want {
			t.Errorf("LineText(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestEmptyDocumentHasOneLine(t *testing.T) {
	r := New()
	if got := r.LineCount(); got != 1 {
		t.Errorf("LineCount() on empty rope = %d, want 1", got)
	}
	if got := r.LineText(0); got != "" {
		t.Errorf("LineText(0) on empty rope = %q, want empty", got)
	}
}

func TestPointOffsetRoundTrip(t *testing.T) {
	r := FromString("héllo\nworld\n")
	for _, p := range []Point{{0, 0}, {0, 1}, {0, 5}, {1, 0}, {1, 5}} {
		off := r.ByteOffsetAt(p)
		got := r.PointAt(off)
		if got != p {
			t.Errorf("round trip for %v: offset=%d got=%v", p, off, got)
		}
	}
}

func TestInsertDeleteReplace(t *testing.T) {
	r := FromString("hello world")

	r2 := r.Insert(5, ",")
	if r2.String() != "hello, world" {
		t.Fatalf("Insert = %q", r2.String())
	}
	// Original unchanged — ropes are immutable.
	if r.String() != "hello world" {
		t.Fatalf("original rope mutated: %q", r.String())
	}

	r3 := r2.Delete(5, 6)
	if r3.String() != "hello world" {
		t.Fatalf("Delete = %q", r3.String())
	}

	r4 := r3.Replace(0, 5, "goodbye")
	if r4.String() != "goodbye world" {
		t.Fatalf("Replace = %q", r4.String())
	}
}

func TestApplyThenInverseIsIdentity(t *testing.T) {
	// Invariant 4: applying an edit then its inverse restores the rope.
	r := FromString("the quick brown fox")
	start, end := 4, 9
	old := r.Slice(start, end)

	edited := r.Replace(start, end, "slow")
	newEnd := start + len("slow")
	restored := edited.Replace(start, newEnd, old)

	if restored.String() != r.String() {
		t.Fatalf("apply+inverse = %q, want %q", restored.String(), r.String())
	}
}

func TestGraphemeBoundaries(t *testing.T) {
	r := FromString("a🎉b")
	// "a" (1 byte) + emoji (4 bytes) + "b" (1 byte)
	if got := r.GraphemeBoundaryAfter(1); got != 5 {
		t.Errorf("GraphemeBoundaryAfter(1) = %d, want 5", got)
	}
	if got := r.GraphemeBoundaryBefore(5); got != 1 {
		t.Errorf("GraphemeBoundaryBefore(5) = %d, want 1", got)
	}
}

func TestWordBoundaries(t *testing.T) {
	r := FromString("foo.bar baz")
	if got := r.WordBoundaryAfter(0); got != 3 {
		t.Errorf("WordBoundaryAfter(0) = %d, want 3", got)
	}
	if got := r.WordBoundaryBefore(11); got != 8 {
		t.Errorf("WordBoundaryBefore(11) = %d, want 8", got)
	}
}

func TestDetectLineBreak(t *testing.T) {
	if DetectLineBreak("a\r\nb") != LineBreakCRLF {
		t.Error("expected CRLF detection")
	}
	if DetectLineBreak("a\nb") != LineBreakLF {
		t.Error("expected LF detection")
	}
	if DetectLineBreak("no break here") != LineBreakLF {
		t.Error("expected LF default")
	}
}
