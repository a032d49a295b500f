package edit

import "github.com/lilypad-editor/core/internal/rope"

// Backspace implements §4.G's delete-one rule. pseudo, if present, is
// the active pseudo-selection range (selection.Pseudo); it is only
// honored for horizontal-grapheme-left deletes.
func Backspace(rp rope.Rope, rng rope.Range, stacks *Stacks, pseudo *rope.Range, horizontalGraphemeLeft bool) (*TextEdit, rope.Range) {
	if horizontalGraphemeLeft && pseudo != nil {
		stacks.Clear()
		return deleteRange(rp, *pseudo)
	}

	if !rng.IsCursor() {
		return deleteRange(rp, rng.Ordered())
	}

	line := rng.End.Line
	indent := uint32(lineIndentWidth(rp.LineText(line)))
	if rng.End.Col == indent && indent > 0 {
		amount := unindentAmount(indent)
		start := rope.Point{Line: line, Col: indent - amount}
		delRange := rope.Range{Start: start, End: rope.Point{Line: line, Col: indent}}
		return deleteRange(rp, delRange)
	}

	if paired, ok := stacks.popPaired(); ok && paired {
		stacks.popIgnore()
		offset := rp.ByteOffsetAt(rng.End)
		start := rp.PointAt(rp.GraphemeBoundaryBefore(offset))
		endOffset := rp.GraphemeBoundaryAfter(offset)
		end := rp.PointAt(endOffset)
		return deleteRange(rp, rope.Range{Start: start, End: end})
	}

	offset := rp.ByteOffsetAt(rng.End)
	var target rope.Point
	if horizontalGraphemeLeft {
		target = rp.PointAt(rp.GraphemeBoundaryBefore(offset))
		return deleteRange(rp, rope.Range{Start: target, End: rng.End})
	}
	target = rp.PointAt(rp.GraphemeBoundaryAfter(offset))
	return deleteRange(rp, rope.Range{Start: rng.End, End: target})
}

func deleteRange(rp rope.Rope, r rope.Range) (*TextEdit, rope.Range) {
	ordered := r.Ordered()
	if ordered.Start == ordered.End {
		return nil, rope.NewCursorRange(ordered.Start)
	}
	edit := &TextEdit{Text: "", Range: ordered, NewEnd: ordered.Start, Origin: OriginLocal}
	return edit, rope.NewCursorRange(ordered.Start)
}

func unindentAmount(curIndent uint32) uint32 {
	rem := curIndent % TAB
	if rem == 0 {
		return TAB
	}
	return rem
}
