package search

import "github.com/lilypad-editor/core/internal/rope"

// Search returns every non-overlapping occurrence of pattern in rp, in
// document order, using Boyer-Moore-Horspool. An empty pattern matches
// nothing.
func Search(rp rope.Rope, pattern string) []rope.Range {
	return SearchInRange(rp, pattern, rope.Range{Start: rope.Point{}, End: rp.PointAt(rp.Len())})
}

// SearchInRange is Search restricted to the byte span covered by
// bounds, used when a host limits search to the current selection.
func SearchInRange(rp rope.Rope, pattern string, bounds rope.Range) []rope.Range {
	if pattern == "" {
		return nil
	}

	ordered := bounds.Ordered()
	lo := rp.ByteOffsetAt(ordered.Start)
	hi := rp.ByteOffsetAt(ordered.End)
	if lo >= hi {
		return nil
	}

	text := rp.Slice(lo, hi)
	shift := badCharShift(pattern)

	var matches []rope.Range
	n, m := len(text), len(pattern)
	i := 0
	for i+m <= n {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			j--
		}
		if j < 0 {
			matches = append(matches, rope.Range{
				Start: rp.PointAt(lo + i),
				End:   rp.PointAt(lo + i + m),
			})
			i += m
			continue
		}
		last := text[i+m-1]
		i += shift[last]
	}
	return matches
}

// badCharShift builds the Horspool skip table: for every byte value,
// how far to slide the pattern when the text's final aligned byte
// doesn't match, based on that byte's rightmost position in pattern
// excluding pattern's own last byte.
func badCharShift(pattern string) [256]int {
	var shift [256]int
	m := len(pattern)
	for i := range shift {
		shift[i] = m
	}
	for i := 0; i < m-1; i++ {
		shift[pattern[i]] = m - 1 - i
	}
	return shift
}

// Cursor tracks the currently selected match in a search popup, with
// wrap-around Next/Prev navigation per §4.J.
type Cursor struct {
	Matches    []rope.Range
	Index      int
	WillScroll bool
}

// NewCursor returns a Cursor over matches, positioned before the
// first one so that the first Next call selects match 0.
func NewCursor(matches []rope.Range) *Cursor {
	return &Cursor{Matches: matches, Index: -1, WillScroll: len(matches) > 0}
}

// Current returns the currently selected match and whether one exists.
func (c *Cursor) Current() (rope.Range, bool) {
	if len(c.Matches) == 0 || c.Index < 0 {
		return rope.Range{}, false
	}
	return c.Matches[c.Index], true
}

// Next advances to the next match, wrapping to the first after the last.
func (c *Cursor) Next() (rope.Range, bool) {
	if len(c.Matches) == 0 {
		return rope.Range{}, false
	}
	c.Index = (c.Index + 1) % len(c.Matches)
	c.WillScroll = true
	return c.Current()
}

// Prev moves to the previous match, wrapping to the last before the first.
func (c *Cursor) Prev() (rope.Range, bool) {
	if len(c.Matches) == 0 {
		return rope.Range{}, false
	}
	if c.Index < 0 {
		c.Index = len(c.Matches) - 1
	} else {
		c.Index = (c.Index - 1 + len(c.Matches)) % len(c.Matches)
	}
	c.WillScroll = true
	return c.Current()
}
