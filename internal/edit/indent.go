package edit

import (
	"strings"

	"github.com/lilypad-editor/core/internal/rope"
)

// Indent expands rng to whole lines and adds a re-aligning indent
// step to each, per §4.G.
func Indent(rp rope.Rope, rng rope.Range) (*TextEdit, rope.Range) {
	start, end := wholeLineRange(rp, rng)
	return buildLineEdit(rp, rng, start, end, indentTransform(rp, start, end, true))
}

// Unindent removes a step of indentation from each whole line in rng.
func Unindent(rp rope.Rope, rng rope.Range) (*TextEdit, rope.Range) {
	start, end := wholeLineRange(rp, rng)
	return buildLineEdit(rp, rng, start, end, indentTransform(rp, start, end, false))
}

func wholeLineRange(rp rope.Rope, rng rope.Range) (start, end uint32) {
	ordered := rng.Ordered()
	return ordered.Start.Line, ordered.End.Line
}

// indentTransform returns the replacement text for lines [start, end]
// with each line's indentation adjusted, plus the per-line column
// deltas needed to keep the caller's selection anchored to code.
func indentTransform(rp rope.Rope, start, end uint32, grow bool) func() (string, []int) {
	return func() (string, []int) {
		var b strings.Builder
		deltas := make([]int, 0, end-start+1)
		for line := start; line <= end; line++ {
			text := rp.LineText(line)
			width := lineIndentWidth(text)
			var delta int
			if grow {
				inc := TAB - (width % TAB)
				b.WriteString(strings.Repeat(" ", inc))
				delta = inc
			} else {
				dec := unindentAmount(uint32(width))
				if int(dec) > width {
					dec = uint32(width)
				}
				delta = -int(dec)
			}
			if !grow {
				trimmed := text
				if -delta <= len(trimmed) {
					trimmed = trimmed[-delta:]
				}
				b.WriteString(trimmed)
			} else {
				b.WriteString(text)
			}
			if line < end {
				b.WriteByte('\n')
			}
			deltas = append(deltas, delta)
		}
		return b.String(), deltas
	}
}

func buildLineEdit(rp rope.Rope, rng rope.Range, start, end uint32, transform func() (string, []int)) (*TextEdit, rope.Range) {
	text, deltas := transform()

	delStart := rope.Point{Line: start, Col: 0}
	delEnd := rope.Point{Line: end, Col: rp.LineLenChars(end)}
	editRange := rope.Range{Start: delStart, End: delEnd}

	ordered := rng.Ordered()
	newStart := adjustColumnForIndent(rp, ordered.Start, start, deltas)
	newEnd := adjustColumnForIndent(rp, ordered.End, start, deltas)

	edit := &TextEdit{Text: text, Range: editRange, NewEnd: newEnd, Origin: OriginLocal}
	return edit, rope.Range{Start: newStart, End: newEnd}
}

// adjustColumnForIndent applies a line's indent delta to a selection
// endpoint, but only if that endpoint lies in the code portion of its
// line (or the whole line is whitespace) — matching §4.G's rule that
// indent-region offsets move with the indent only there.
func adjustColumnForIndent(rp rope.Rope, p rope.Point, firstLine uint32, deltas []int) rope.Point {
	idx := int(p.Line) - int(firstLine)
	if idx < 0 || idx >= len(deltas) {
		return p
	}
	line := rp.LineText(p.Line)
	indentRunes := len(line) - len(strings.TrimLeft(line, " \t"))
	if int(p.Col) < indentRunes && !isWhitespaceLine(line) {
		return p
	}
	delta := deltas[idx]
	newCol := int(p.Col) + delta
	if newCol < 0 {
		newCol = 0
	}
	return rope.Point{Line: p.Line, Col: uint32(newCol)}
}
