package edit

import (
	"strings"
	"unicode"

	"github.com/lilypad-editor/core/internal/rope"
)

// InsertNewline implements §4.G's insert-newline rule, including the
// braces-hug-body special case for brace-scope languages.
func InsertNewline(rp rope.Rope, rng rope.Range, newScopeChar byte, braceScope bool, lb rope.LineBreak) (*TextEdit, rope.Range) {
	ordered := rng.Ordered()
	line := ordered.Start.Line
	indent := lineIndentWidth(rp.LineText(line))

	offset := rp.ByteOffsetAt(ordered.Start)
	before, after := rp.SurroundingChars(offset)

	indentInc := 0
	if (newScopeChar == ':' || newScopeChar == '{') && before == rune(newScopeChar) {
		indentInc = 1
	}

	seq := lb.Sequence()

	if braceScope && newScopeChar == '{' && before == '{' && after == '}' {
		deeper := strings.Repeat(" ", indent+TAB)
		shallower := strings.Repeat(" ", indent)
		text := seq + deeper + seq + shallower
		edit := &TextEdit{Text: text, Range: rng, Origin: OriginLocal}
		newPoint := rope.Point{Line: line + 1, Col: uint32(len(deeper))}
		edit.NewEnd = newPoint
		return edit, rope.NewCursorRange(newPoint)
	}

	newIndent := indent
	if indentInc > 0 {
		newIndent += TAB
	}
	text := seq + strings.Repeat(" ", newIndent)
	edit := &TextEdit{Text: text, Range: rng, Origin: OriginLocal}
	newPoint := rope.Point{Line: line + 1, Col: uint32(newIndent)}
	edit.NewEnd = newPoint
	return edit, rope.NewCursorRange(newPoint)
}

func lineIndentWidth(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		if r == '\t' {
			n += TAB
		} else {
			n++
		}
	}
	return n
}

func isWhitespaceLine(line string) bool {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
