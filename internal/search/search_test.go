package search

import (
	"reflect"
	"testing"

	"github.com/lilypad-editor/core/internal/rope"
)

func pt(line, col uint32) rope.Point { return rope.Point{Line: line, Col: col} }

func TestSearchFindsNonOverlappingMatches(t *testing.T) {
	rp := rope.FromString("abcabcabc")
	got := Search(rp, "abc")
	want := []rope.Range{
		{Start: pt(0, 0), End: pt(0, 3)},
		{Start: pt(0, 3), End: pt(0, 6)},
		{Start: pt(0, 6), End: pt(0, 9)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSearchAcrossLines(t *testing.T) {
	rp := rope.FromString("foo\nbar\nfoo")
	got := Search(rp, "foo")
	want := []rope.Range{
		{Start: pt(0, 0), End: pt(0, 3)},
		{Start: pt(2, 0), End: pt(2, 3)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSearchNoMatch(t *testing.T) {
	rp := rope.FromString("hello world")
	if got := Search(rp, "xyz"); got != nil {
		t.Fatalf("want nil for no matches, got %+v", got)
	}
}

func TestSearchEmptyPattern(t *testing.T) {
	rp := rope.FromString("hello")
	if got := Search(rp, ""); got != nil {
		t.Fatalf("want nil for empty pattern, got %+v", got)
	}
}

func TestSearchInRangeRestrictsToBounds(t *testing.T) {
	rp := rope.FromString("foo foo foo")
	bounds := rope.Range{Start: pt(0, 4), End: pt(0, 11)}
	got := SearchInRange(rp, "foo", bounds)
	want := []rope.Range{
		{Start: pt(0, 4), End: pt(0, 7)},
		{Start: pt(0, 8), End: pt(0, 11)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestCursorNextStartsAtFirstMatch(t *testing.T) {
	matches := []rope.Range{
		{Start: pt(0, 0), End: pt(0, 1)},
		{Start: pt(0, 1), End: pt(0, 2)},
	}
	c := NewCursor(matches)
	got, ok := c.Next()
	if !ok || got != matches[0] {
		t.Fatalf("want the first Next to select the first match, got %+v ok=%v", got, ok)
	}
}

func TestCursorNextWrapsAround(t *testing.T) {
	matches := []rope.Range{
		{Start: pt(0, 0), End: pt(0, 1)},
		{Start: pt(0, 1), End: pt(0, 2)},
	}
	c := NewCursor(matches)
	c.Next() // matches[0]
	c.Next() // matches[1]
	got, ok := c.Next()
	if !ok || got != matches[0] {
		t.Fatalf("want Next to wrap to the first match, got %+v ok=%v", got, ok)
	}
}

func TestCursorPrevWrapsAround(t *testing.T) {
	matches := []rope.Range{
		{Start: pt(0, 0), End: pt(0, 1)},
		{Start: pt(0, 1), End: pt(0, 2)},
	}
	c := NewCursor(matches)
	got, ok := c.Prev()
	if !ok || got != matches[1] {
		t.Fatalf("want Prev on a fresh cursor to wrap to the last match, got %+v ok=%v", got, ok)
	}
}
