package rope

import "github.com/rivo/uniseg"

// GraphemeBoundaryBefore returns the byte offset of the start of the
// grapheme cluster ending at offset, used for horizontal-grapheme
// movement and delete-one-left so that combining marks and emoji
// sequences move as a single unit instead of one rune at a time.
func (r Rope) GraphemeBoundaryBefore(offset int) int {
	if offset <= 0 {
		return 0
	}
	lineStart := r.LineStartOffset(r.PointAt(offset).Line)
	seg := r.text[lineStart:offset]
	if seg == "" {
		return lineStart
	}

	last := 0
	gr := uniseg.NewGraphemes(r.text[lineStart:])
	for gr.Next() {
		start, end := gr.Positions()
		if lineStart+end >= offset {
			if lineStart+start >= offset {
				break
			}
			return lineStart + start
		}
		last = end
	}
	return lineStart + last
}

// GraphemeBoundaryAfter returns the byte offset of the end of the
// grapheme cluster starting at offset.
func (r Rope) GraphemeBoundaryAfter(offset int) int {
	if offset >= len(r.text) {
		return len(r.text)
	}
	gr := uniseg.NewGraphemes(r.text[offset:])
	if gr.Next() {
		_, end := gr.Positions()
		return offset + end
	}
	return len(r.text)
}

// WordBoundaryBefore returns the byte offset of the start of the
// previous word relative to offset: skip non-alphanumerics backward,
// then alphanumerics backward, matching spec §4.F's "Horizontal word"
// movement.
func (r Rope) WordBoundaryBefore(offset int) int {
	i := offset
	i = skipBackwardWhile(r.text, i, func(rn rune) bool { return !isWordRune(rn) })
	i = skipBackwardWhile(r.text, i, isWordRune)
	return i
}

// WordBoundaryAfter returns the byte offset of the end of the next
// word relative to offset, mirroring WordBoundaryBefore forward. This
// may cross a line boundary (spec allows that only in the forward
// direction).
func (r Rope) WordBoundaryAfter(offset int) int {
	i := offset
	i = skipForwardWhile(r.text, i, func(rn rune) bool { return !isWordRune(rn) && rn != '\n' })
	i = skipForwardWhile(r.text, i, isWordRune)
	return i
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func skipBackwardWhile(s string, i int, pred func(rune) bool) int {
	for i > 0 {
		r, size := decodeLastRune(s[:i])
		if size == 0 || !pred(r) {
			break
		}
		i -= size
	}
	return i
}

func skipForwardWhile(s string, i int, pred func(rune) bool) int {
	for i < len(s) {
		r, size := decodeRune(s[i:])
		if size == 0 || !pred(r) {
			break
		}
		i += size
	}
	return i
}
