package selection

import (
	"testing"

	"github.com/lilypad-editor/core/internal/rope"
)

func cur(line, col uint32) rope.Range {
	return rope.NewCursorRange(rope.Point{Line: line, Col: col})
}

func TestMoveGraphemeForwardWrapsToNextLine(t *testing.T) {
	rp := rope.FromString("ab\ncd")
	rng := cur(0, 2)
	got := MoveGrapheme(rp, rng, true, false)
	want := rope.Point{Line: 1, Col: 0}
	if got.End != want {
		t.Fatalf("want wrap to %v, got %v", want, got.End)
	}
}

func TestMoveGraphemeBackwardWrapsToPreviousLineEnd(t *testing.T) {
	rp := rope.FromString("ab\ncd")
	rng := cur(1, 0)
	got := MoveGrapheme(rp, rng, false, false)
	want := rope.Point{Line: 0, Col: 2}
	if got.End != want {
		t.Fatalf("want wrap to %v, got %v", want, got.End)
	}
}

func TestMoveGraphemeClampedAtDocumentStart(t *testing.T) {
	rp := rope.FromString("ab")
	rng := cur(0, 0)
	got := MoveGrapheme(rp, rng, false, false)
	if got.End != (rope.Point{Line: 0, Col: 0}) {
		t.Fatalf("want no movement at document start, got %v", got.End)
	}
}

func TestMoveGraphemeExpandingPreservesAnchor(t *testing.T) {
	rp := rope.FromString("abc")
	rng := cur(0, 0)
	got := MoveGrapheme(rp, rng, true, true)
	if got.Start != (rope.Point{Line: 0, Col: 0}) {
		t.Fatalf("expanding move must preserve anchor, got start %v", got.Start)
	}
	if got.End != (rope.Point{Line: 0, Col: 1}) {
		t.Fatalf("want end advanced by one grapheme, got %v", got.End)
	}
}

func TestHomeFirstPressGoesToIndent(t *testing.T) {
	rp := rope.FromString("  foo")
	rng := cur(0, 5)
	got := Home(rp, rng, false)
	if got.End.Col != 2 {
		t.Fatalf("want first non-whitespace col 2, got %d", got.End.Col)
	}
}

func TestHomeSecondPressGoesToColumnZero(t *testing.T) {
	rp := rope.FromString("  foo")
	rng := cur(0, 2)
	got := Home(rp, rng, false)
	if got.End.Col != 0 {
		t.Fatalf("want second press to col 0, got %d", got.End.Col)
	}
}

func TestEndGoesToLastColumn(t *testing.T) {
	rp := rope.FromString("foo\nbar")
	rng := cur(0, 0)
	got := End(rp, rng, false)
	if got.End.Col != 3 {
		t.Fatalf("want col 3 at end of 'foo', got %d", got.End.Col)
	}
}

func TestMoveVerticalClampsColumn(t *testing.T) {
	rp := rope.FromString("abcdef\nxy")
	rng := cur(0, 5)
	got := MoveVertical(rp, rng, true, false)
	if got.End != (rope.Point{Line: 1, Col: 2}) {
		t.Fatalf("want column clamped to line length 2, got %v", got.End)
	}
}

func TestMoveVerticalNoStickyColumn(t *testing.T) {
	rp := rope.FromString("abcdef\nxy\nabcdef")
	rng := cur(0, 5)
	mid := MoveVertical(rp, rng, true, false)
	back := MoveVertical(rp, mid, true, false)
	if back.End.Col != 2 {
		t.Fatalf("want clamped column 2 on line 2 (no sticky column), got %d", back.End.Col)
	}
}

func TestDocumentStartAndEnd(t *testing.T) {
	rp := rope.FromString("abc\ndefgh")
	got := DocumentStart(cur(1, 2), false)
	if got.End != (rope.Point{Line: 0, Col: 0}) {
		t.Fatalf("want (0,0), got %v", got.End)
	}
	got = DocumentEnd(rp, cur(0, 0), false)
	if got.End != (rope.Point{Line: 1, Col: 5}) {
		t.Fatalf("want last line last col, got %v", got.End)
	}
}

func TestMoveWordForwardCrossesLineBoundary(t *testing.T) {
	rp := rope.FromString("abc\ndef")
	got := MoveWord(rp, cur(0, 0), true, false)
	if got.End.Line != 1 {
		t.Fatalf("want forward word movement to cross into line 1, got %v", got.End)
	}
}

func TestMoveWordBackwardDoesNotCrossLineBoundary(t *testing.T) {
	rp := rope.FromString("abc\ndef")
	got := MoveWord(rp, cur(1, 0), false, false)
	if got.End.Line != 1 || got.End.Col != 0 {
		t.Fatalf("backward word movement must not cross lines, got %v", got.End)
	}
}
