package selection

import "github.com/lilypad-editor/core/internal/rope"

// move applies a movement to rng: a non-expanding movement collapses
// the range to the new point, discarding the old anchor; an expanding
// one keeps rng.Start as the anchor and moves End (§4.F).
func move(rng rope.Range, newPoint rope.Point, expanding bool) rope.Range {
	if expanding {
		return rope.Range{Start: rng.Start, End: newPoint}
	}
	return rope.NewCursorRange(newPoint)
}

// MoveGrapheme moves rng.End by one grapheme cluster, wrapping across
// line boundaries at the document edges. Line ends are handled here:
// rope.GraphemeBoundaryBefore stops at the start of its line, and the
// forward case steps to the next line's start itself rather than
// calling rope.GraphemeBoundaryAfter at a line end.
func MoveGrapheme(rp rope.Rope, rng rope.Range, forward, expanding bool) rope.Range {
	p := rng.End
	offset := rp.ByteOffsetAt(p)

	var newPoint rope.Point
	if forward {
		lineEnd := rp.LineEndOffset(p.Line)
		switch {
		case offset < lineEnd:
			newPoint = rp.PointAt(rp.GraphemeBoundaryAfter(offset))
		case p.Line+1 < rp.LineCount():
			newPoint = rope.Point{Line: p.Line + 1, Col: 0}
		default:
			newPoint = p
		}
	} else {
		lineStart := rp.LineStartOffset(p.Line)
		switch {
		case offset > lineStart:
			newPoint = rp.PointAt(rp.GraphemeBoundaryBefore(offset))
		case p.Line > 0:
			prev := p.Line - 1
			newPoint = rope.Point{Line: prev, Col: rp.LineLenChars(prev)}
		default:
			newPoint = p
		}
	}
	return move(rng, newPoint, expanding)
}

// hopToNextLineWordEnd continues a forward word scan onto the line
// after fromLine, landing at that line's start if it is itself blank.
func hopToNextLineWordEnd(rp rope.Rope, fromLine uint32) rope.Point {
	candidate := rope.Point{Line: fromLine + 1, Col: 0}
	candOffset := rp.ByteOffsetAt(candidate)
	advanced := rp.WordBoundaryAfter(candOffset)
	if advanced == candOffset {
		return candidate
	}
	return rp.PointAt(advanced)
}

// MoveWord moves rng.End to the start of the previous word or the end
// of the next word. Only the forward direction crosses a line
// boundary, per §4.F.
func MoveWord(rp rope.Rope, rng rope.Range, forward, expanding bool) rope.Range {
	p := rng.End
	var newPoint rope.Point

	if forward {
		offset := rp.ByteOffsetAt(p)
		lineEnd := rp.LineEndOffset(p.Line)
		switch {
		case offset < lineEnd:
			newPoint = rp.PointAt(rp.WordBoundaryAfter(offset))
			if rp.ByteOffsetAt(newPoint) == lineEnd && p.Line+1 < rp.LineCount() {
				newPoint = hopToNextLineWordEnd(rp, p.Line)
			}
		case p.Line+1 < rp.LineCount():
			newPoint = hopToNextLineWordEnd(rp, p.Line)
		default:
			newPoint = p
		}
	} else {
		offset := rp.ByteOffsetAt(p)
		lineStart := rp.LineStartOffset(p.Line)
		if offset <= lineStart {
			newPoint = p
		} else {
			newOffset := rp.WordBoundaryBefore(offset)
			if newOffset < lineStart {
				newOffset = lineStart
			}
			newPoint = rp.PointAt(newOffset)
		}
	}
	return move(rng, newPoint, expanding)
}
