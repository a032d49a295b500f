package block

import "github.com/lilypad-editor/core/internal/syntax"

// Categorize maps a grammar node type to a category, mirroring
// lang.Binding.Categorize without this package importing lang (lang
// imports block for Category; the reverse would cycle).
type Categorize func(nodeType string) (Category, bool)

// LineCol converts a syntax point (row, byte column) to a character
// column for a given row, and reports whether a line is blank
// (whitespace-only). Supplied by the owning Source so this package
// never depends on rope directly.
type LineCol func(row uint32, byteCol uint32) uint32

// IsBlankLine reports whether the given 0-based line contains only
// whitespace (or is past the end of the document).
type IsBlankLine func(line uint32) bool

// IndentCol returns the character column of the first non-whitespace
// rune on the given 0-based line (i.e. its indent width), used to
// tell a comment that starts a line from one that follows code on
// the same line.
type IndentCol func(line uint32) uint32

// Build runs the five-step pipeline from a syntax cursor into a Tree,
// per §4.C.
func Build(cur syntax.Cursor, categorize Categorize, col LineCol, blank IsBlankLine, indent IndentCol, braceScope bool) *Tree {
	roots := fold(cur.Root(), categorize, col)
	roots = mergeComments(roots, blank, indent)
	roots = insertDividers(roots, blank)
	roots = mergeGeneric(roots)
	if braceScope {
		adjustColumns(roots)
	}
	return &Tree{Roots: roots}
}

// fold implements step 1: pre-order walk, categorize or lift.
func fold(n syntax.Node, categorize Categorize, col LineCol) []*Block {
	if n.IsNull() {
		return nil
	}
	var children []*Block
	count := n.NamedChildCount()
	for i := uint32(0); i < count; i++ {
		children = append(children, fold(n.NamedChild(i), categorize, col)...)
	}

	cat, ok := categorize(n.Type())
	if !ok {
		return children
	}

	start := n.StartPoint()
	end := n.EndPoint()
	startCol := col(start.Row, start.Column)
	endCol := col(end.Row, end.Column)
	// Saturating subtraction: a multi-line construct whose end column
	// is 0 must not underflow.
	var minEndCol uint32
	if endCol > 0 {
		minEndCol = endCol - 1
	}
	c := startCol
	if minEndCol < c {
		c = minEndCol
	}

	height := end.Row - start.Row + 1

	return []*Block{{
		Line:     start.Row,
		Col:      c,
		Height:   height,
		Category: cat,
		Children: children,
	}}
}

// mergeComments implements step 2, recursing into surviving blocks'
// children. A comment with code preceding it on its own line (i.e.
// not starting at the line's indent) is a same-line comment and is
// discarded outright, never merged.
func mergeComments(blocks []*Block, blank IsBlankLine, indent IndentCol) []*Block {
	out := make([]*Block, 0, len(blocks))
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if b.Category == Comment {
			if b.Col != indent(b.Line) {
				continue
			}
			if i+1 < len(blocks) {
				next := blocks[i+1]
				if b.Line+b.Height == next.Line && next.Category != Divider {
					next.Line = b.Line
					next.Height = b.Height + next.Height
					continue
				}
			}
		}
		if b.Category != Comment {
			b.Children = mergeComments(b.Children, blank, indent)
		}
		out = append(out, b)
	}
	return out
}

// insertDividers implements step 3: find maximal runs of ≥2
// consecutive blank lines and insert a Divider sentinel into the
// deepest enclosing block (in sibling order by line).
func insertDividers(blocks []*Block, blank IsBlankLine) []*Block {
	for _, b := range blocks {
		b.Children = insertDividers(b.Children, blank)
	}

	lo, hi := treeLineRange(blocks)
	if hi <= lo {
		return blocks
	}

	var dividerLines []uint32
	run := uint32(0)
	for line := lo; line < hi; line++ {
		if blank(line) {
			run++
		} else {
			if run >= 2 {
				dividerLines = append(dividerLines, line-run)
			}
			run = 0
		}
	}
	if run >= 2 {
		dividerLines = append(dividerLines, hi-run)
	}

	for _, line := range dividerLines {
		blocks = insertDividerAt(blocks, line)
	}
	return blocks
}

// insertDividerAt places a Divider sentinel at line into the deepest
// sibling list whose span contains it, in source order.
func insertDividerAt(siblings []*Block, line uint32) []*Block {
	for _, b := range siblings {
		if b.Category != Divider && line >= b.Line && line < b.EndLine() {
			b.Children = insertDividerAt(b.Children, line)
			return siblings
		}
	}

	div := &Block{Line: line, Category: Divider}
	idx := len(siblings)
	for i, b := range siblings {
		if b.Line > line {
			idx = i
			break
		}
	}
	out := make([]*Block, 0, len(siblings)+1)
	out = append(out, siblings[:idx]...)
	out = append(out, div)
	out = append(out, siblings[idx:]...)
	return out
}

func treeLineRange(blocks []*Block) (lo, hi uint32) {
	first := true
	for _, b := range blocks {
		if b.Category == Divider {
			continue
		}
		if first {
			lo, hi = b.Line, b.EndLine()
			first = false
			continue
		}
		if b.Line < lo {
			lo = b.Line
		}
		if b.EndLine() > hi {
			hi = b.EndLine()
		}
	}
	return lo, hi
}

// mergeGeneric implements step 4: collapse each run of consecutive
// Generic siblings into one block, merging whenever the next sibling
// starts at or after the current one's end line, so a gap of blank
// lines between them does not prevent the merge.
func mergeGeneric(blocks []*Block) []*Block {
	out := make([]*Block, 0, len(blocks))
	for i := 0; i < len(blocks); i++ {
		b := blocks[i]
		if b.Category != Generic {
			b.Children = mergeGeneric(b.Children)
			out = append(out, b)
			continue
		}
		for i+1 < len(blocks) && blocks[i+1].Category == Generic && b.EndLine() <= blocks[i+1].Line {
			next := blocks[i+1]
			b = &Block{
				Line:     b.Line,
				Col:      b.Col,
				Height:   next.EndLine() - b.Line,
				Category: Generic,
			}
			i++
		}
		out = append(out, b)
	}
	return out
}

// adjustColumns implements step 5 for brace-scope languages: a
// post-order pass that pulls a block's column up to its shallowest
// child so brace-opening lines visually contain their body.
func adjustColumns(blocks []*Block) uint32 {
	minCol := ^uint32(0)
	for _, b := range blocks {
		if b.Category == Divider {
			continue
		}
		childMin := adjustColumns(b.Children)
		if childMin != ^uint32(0) && b.Col > childMin {
			b.Col = childMin
		}
		if b.Col < minCol {
			minCol = b.Col
		}
	}
	return minCol
}
