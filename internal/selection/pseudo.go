package selection

import (
	"github.com/lilypad-editor/core/internal/rope"
	"github.com/lilypad-editor/core/internal/syntax"
)

// IsStringNode reports whether a grammar node type is a string
// literal for the active language, mirroring lang.Binding.IsStringNode
// without this package depending on lang directly.
type IsStringNode func(nodeType string) bool

// Pseudo finds the string-literal pseudo-selection at a cursor, per
// §4.F: when the selection is a cursor and the character immediately
// to its left is a quote, walk to the deepest node at that point and
// then up to the nearest string-bound ancestor.
func Pseudo(rp rope.Rope, cur syntax.Cursor, rng rope.Range, isString IsStringNode) (rope.Range, bool) {
	if !rng.IsCursor() {
		return rope.Range{}, false
	}
	offset := rp.ByteOffsetAt(rng.End)
	before, _ := rp.SurroundingChars(offset)
	if before != '\'' && before != '"' {
		return rope.Range{}, false
	}

	node := cur.NamedDescendantAt(uint32(offset))
	for !node.IsNull() {
		if isString(node.Type()) {
			start := rp.PointAt(int(node.StartByte()))
			end := rp.PointAt(int(node.EndByte()))
			return rope.Range{Start: start, End: end}, true
		}
		node = node.Parent()
	}
	return rope.Range{}, false
}
