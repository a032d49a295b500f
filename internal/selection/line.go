package selection

import (
	"unicode"

	"github.com/lilypad-editor/core/internal/rope"
)

// Home implements smart-home: the first press moves to the line's
// first non-whitespace column; a second press from there moves to
// column 0 (§4.F).
func Home(rp rope.Rope, rng rope.Range, expanding bool) rope.Range {
	p := rng.End
	firstNonWS := firstNonWhitespaceCol(rp.LineText(p.Line))

	target := firstNonWS
	if p.Col == firstNonWS {
		target = 0
	}
	return move(rng, rope.Point{Line: p.Line, Col: target}, expanding)
}

// End moves to the last non-linebreak column of the line.
func End(rp rope.Rope, rng rope.Range, expanding bool) rope.Range {
	p := rng.End
	return move(rng, rope.Point{Line: p.Line, Col: rp.LineLenChars(p.Line)}, expanding)
}

func firstNonWhitespaceCol(line string) uint32 {
	col := uint32(0)
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return col
		}
		col++
	}
	return col
}

// MoveVertical moves up or down one line, retaining the column
// clamped to the target line's length. There is no cross-session
// sticky column (§4.F).
func MoveVertical(rp rope.Rope, rng rope.Range, down, expanding bool) rope.Range {
	p := rng.End
	var target uint32
	if down {
		if p.Line+1 >= rp.LineCount() {
			return move(rng, p, expanding)
		}
		target = p.Line + 1
	} else {
		if p.Line == 0 {
			return move(rng, p, expanding)
		}
		target = p.Line - 1
	}
	newPoint := rp.ClampPoint(rope.Point{Line: target, Col: p.Col})
	return move(rng, newPoint, expanding)
}

// DocumentStart returns (0, 0).
func DocumentStart(rng rope.Range, expanding bool) rope.Range {
	return move(rng, rope.Point{Line: 0, Col: 0}, expanding)
}

// DocumentEnd returns the last line's last column.
func DocumentEnd(rp rope.Rope, rng rope.Range, expanding bool) rope.Range {
	last := rp.LineCount() - 1
	return move(rng, rope.Point{Line: last, Col: rp.LineLenChars(last)}, expanding)
}
