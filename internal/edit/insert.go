package edit

import (
	"strings"
	"unicode"

	"github.com/lilypad-editor/core/internal/rope"
)

var closers = map[rune]rune{
	'\'': '\'',
	'"':  '"',
	'(':  ')',
	'[':  ']',
	'{':  '}',
}

func isOpener(r rune) bool {
	_, ok := closers[r]
	return ok
}

func isQuote(r rune) bool { return r == '\'' || r == '"' }

// InsertCharacter implements §4.G's insert-character rules for a
// single typed Unicode cluster.
func InsertCharacter(rp rope.Rope, rng rope.Range, stacks *Stacks, ch string) (*TextEdit, rope.Range) {
	r := []rune(ch)
	if len(r) == 0 {
		return nil, rng
	}
	lead := r[0]

	if !rng.IsCursor() {
		return insertOverSelection(rng, ch)
	}

	offset := rp.ByteOffsetAt(rng.End)
	before, after := rp.SurroundingChars(offset)

	if top, ok := stacks.peekIgnore(); ok && top == lead && len(r) == 1 {
		stacks.popIgnore()
		stacks.popPaired()
		newPoint := rp.PointAt(rp.GraphemeBoundaryAfter(offset))
		return nil, rope.NewCursorRange(newPoint)
	}

	if len(r) == 1 && isOpener(lead) {
		insertPair := shouldInsertPair(lead, before, after)
		text := ch
		if insertPair {
			text = ch + string(closers[lead])
			stacks.pushIgnore(closers[lead])
			stacks.pushPaired(true)
		} else if len(stacks.PairedDelete) > 0 {
			stacks.pushPaired(false)
		}
		edit := &TextEdit{Text: text, Range: rng, Origin: OriginLocal}
		at := rp.PointAt(offset)
		newPoint := rope.Point{Line: at.Line, Col: at.Col + uint32(len(r))}
		edit.NewEnd = newPoint
		return edit, rope.NewCursorRange(newPoint)
	}

	if len(stacks.PairedDelete) > 0 {
		stacks.pushPaired(false)
	}
	edit := &TextEdit{Text: ch, Range: rng, Origin: OriginLocal}
	at := rp.PointAt(offset)
	newPoint := rope.Point{Line: at.Line, Col: at.Col + uint32(len(r))}
	edit.NewEnd = newPoint
	return edit, rope.NewCursorRange(newPoint)
}

func shouldInsertPair(opener, before, after rune) bool {
	if isQuote(opener) {
		neighborAlnum := unicode.IsLetter(before) || unicode.IsDigit(before) ||
			unicode.IsLetter(after) || unicode.IsDigit(after)
		if neighborAlnum && before != 'f' && before != 'F' {
			return false
		}
		if before == opener || after == opener {
			return false
		}
		return true
	}
	return !(unicode.IsLetter(after) || unicode.IsDigit(after))
}

func insertOverSelection(rng rope.Range, ch string) (*TextEdit, rope.Range) {
	ordered := rng.Ordered()
	edit := &TextEdit{Text: ch, Range: ordered, Origin: OriginLocal}
	newPoint := rope.Point{Line: ordered.Start.Line, Col: ordered.Start.Col + uint32(len([]rune(ch)))}
	if strings.Contains(ch, "\n") {
		// Multi-line paste-like insert: caller recomputes NewEnd from
		// the rope after applying; leave a best-effort same-line value.
		newPoint = ordered.Start
	}
	edit.NewEnd = newPoint
	return edit, rope.NewCursorRange(newPoint)
}
