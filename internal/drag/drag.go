package drag

import (
	"strings"

	"github.com/lilypad-editor/core/internal/block"
	"github.com/lilypad-editor/core/internal/edit"
	"github.com/lilypad-editor/core/internal/rope"
)

const tab = edit.TAB

// FindBlockAt returns the deepest block in tree whose line range
// contains p, walking through Divider children without ever returning
// one, and requiring p.Col >= block.Col at every level so a click on
// a line's indent selects the enclosing scope rather than a child
// that happens to start further right.
func FindBlockAt(tree *block.Tree, p rope.Point) *block.Block {
	return findIn(tree.Roots, p)
}

func findIn(blocks []*block.Block, p rope.Point) *block.Block {
	for _, b := range blocks {
		if b.IsDivider() {
			continue
		}
		if p.Line < b.Line || p.Line >= b.EndLine() {
			continue
		}
		if p.Col < b.Col {
			continue
		}
		if deeper := findIn(b.Children, p); deeper != nil {
			return deeper
		}
		return b
	}
	return nil
}

// Session holds the state of one active drag, from pointer-down
// through drop.
type Session struct {
	Text        string // normalized block text, always newline-terminated
	SourceStart rope.Point
	SourceEnd   rope.Point
	// OffsetX, OffsetY are the pointer's position relative to the
	// block's top-left, in block-local pixels.
	OffsetX, OffsetY float64
}

// Start begins a drag at pointer p (already converted to a document
// point) over a block in tree, recording the normalized text and the
// delete edit that removes the block's lines from the source.
func Start(rp rope.Rope, tree *block.Tree, p rope.Point, pointerX, pointerY, blockTopLeftX, blockTopLeftY float64) (*Session, *edit.TextEdit, bool) {
	b := FindBlockAt(tree, p)
	if b == nil {
		return nil, nil, false
	}

	start := rope.Point{Line: b.Line, Col: 0}
	end := rope.Point{Line: b.EndLine(), Col: 0}
	if end.Line >= rp.LineCount() {
		end = rope.Point{Line: rp.LineCount() - 1, Col: rp.LineLenChars(rp.LineCount() - 1)}
	}

	raw := rp.Slice(rp.ByteOffsetAt(start), rp.ByteOffsetAt(end))
	text := normalize(raw)

	sess := &Session{
		Text:        text,
		SourceStart: start,
		SourceEnd:   end,
		OffsetX:     pointerX - blockTopLeftX,
		OffsetY:     pointerY - blockTopLeftY,
	}

	delEdit := &edit.TextEdit{Text: "", Range: rope.Range{Start: start, End: end}, NewEnd: start, Origin: edit.OriginLocal}
	return sess, delEdit, true
}

// normalize strips the first line's leading indent from every line of
// raw and guarantees a trailing newline.
func normalize(raw string) string {
	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	if len(lines) == 0 {
		return "\n"
	}
	stripWidth := leadingWhitespaceCount(lines[0])

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(stripLeading(line, stripWidth))
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func stripLeading(line string, n int) string {
	runes := []rune(line)
	lead := 0
	for lead < len(runes) && lead < n && (runes[lead] == ' ' || runes[lead] == '\t') {
		lead++
	}
	return string(runes[lead:])
}

func leadingWhitespaceCount(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		n++
	}
	return n
}

// DropTarget is the result of resolving a pointer position to an
// insertion point.
type DropTarget struct {
	Line         uint32
	AllowedIndent int
}

// ResolveDrop computes the drop line and its allowed indent by
// walking upward from line through whitespace-only lines to the
// nearest code line; the allowed indent is that line's indent, +TAB
// if it ends in the language's new-scope character.
func ResolveDrop(rp rope.Rope, line uint32, newScopeChar byte) DropTarget {
	codeLine := line
	for codeLine > 0 && isWhitespaceLine(rp.LineText(codeLine)) {
		codeLine--
	}
	text := rp.LineText(codeLine)
	allowed := indentWidth(text)
	trimmed := strings.TrimRight(text, " \t")
	if len(trimmed) > 0 && trimmed[len(trimmed)-1] == newScopeChar {
		allowed += tab
	}
	return DropTarget{Line: line, AllowedIndent: allowed}
}

// DropIndent computes the indentation to re-indent dropped text to,
// given the pointer's x pixel position converted to a column and the
// language's brace-vs-colon scoping style.
func DropIndent(target DropTarget, pointerCol int, braceScope bool) int {
	if braceScope {
		return target.AllowedIndent
	}
	snapped := (pointerCol / tab) * tab
	if snapped > target.AllowedIndent {
		return target.AllowedIndent
	}
	return snapped
}

// Drop builds the insertion edit for dropping sess's text at
// target.Line with the given indent. It returns only the edit; the
// cursor position after the drop comes from CursorAfterDrop.
func Drop(rp rope.Rope, sess *Session, target DropTarget, indent int, eof bool) *edit.TextEdit {
	text := reindent(sess.Text, indent)
	if eof && !strings.HasSuffix(rp.String(), "\n") && rp.Len() > 0 {
		text = "\n" + text
	}

	insertAt := rope.Point{Line: target.Line, Col: 0}
	newEnd := endPoint(insertAt, text)

	e := &edit.TextEdit{Text: text, Range: rope.NewCursorRange(insertAt), NewEnd: newEnd, Origin: edit.OriginLocal}
	return e
}

// endPoint computes the point reached after inserting text at start,
// without needing the post-insertion rope.
func endPoint(start rope.Point, text string) rope.Point {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return rope.Point{Line: start.Line, Col: start.Col + uint32(len([]rune(text)))}
	}
	return rope.Point{Line: start.Line + uint32(len(lines)-1), Col: uint32(len([]rune(lines[len(lines)-1])))}
}

// CursorAfterDrop returns the cursor point at the end of the last
// content line of the just-inserted text, landing inside the
// reinserted code rather than on the trailing newline's empty line.
func CursorAfterDrop(e *edit.TextEdit) rope.Point {
	lines := strings.Split(strings.TrimSuffix(e.Text, "\n"), "\n")
	last := lines[len(lines)-1]
	return rope.Point{
		Line: e.Range.Start.Line + uint32(len(lines)-1),
		Col:  uint32(len([]rune(last))),
	}
}

func reindent(text string, indent int) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	pad := strings.Repeat(" ", indent)
	var b strings.Builder
	for i, line := range lines {
		if line != "" {
			b.WriteString(pad)
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteByte('\n')
	return b.String()
}

func isWhitespaceLine(line string) bool {
	for _, r := range line {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

func indentWidth(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' && r != '\t' {
			break
		}
		if r == '\t' {
			n += tab
		} else {
			n++
		}
	}
	return n
}
