package rope

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Errors returned by rope operations.
var (
	ErrOffsetOutOfRange = errors.New("rope: offset out of range")
	ErrRangeInvalid     = errors.New("rope: invalid range")
)

// LineBreak is a line-break style, used only when inserting a new
// line break — detection and all other line-based operations treat
// "\r\n" and "\n" identically.
type LineBreak int

const (
	LineBreakLF LineBreak = iota
	LineBreakCRLF
)

// Sequence returns the literal characters for the line break style.
func (lb LineBreak) Sequence() string {
	if lb == LineBreakCRLF {
		return "\r\n"
	}
	return "\n"
}

// RevisionID identifies a point-in-time revision of a document. A
// Rope does not hold one and nothing regenerates one on mutation;
// NewRevisionID creates a fresh one on request.
type RevisionID struct{ id uuid.UUID }

// NewRevisionID returns a fresh, unique revision identifier.
func NewRevisionID() RevisionID { return RevisionID{id: uuid.New()} }

// String renders the revision id.
func (r RevisionID) String() string { return r.id.String() }

// Equal reports whether two revision ids are identical.
func (r RevisionID) Equal(other RevisionID) bool { return r.id == other.id }

// Rope is the canonical text of a document: an immutable byte buffer
// plus a newline index for fast line lookups. Insert/Delete/Replace
// return a new Rope; the receiver is never modified, so a Rope value
// can be safely shared across goroutines (e.g. a renderer reading
// while the editor actor prepares the next edit).
type Rope struct {
	text string
	nl   newlineIndex
}

// New returns an empty rope.
func New() Rope { return Rope{} }

// FromString builds a rope from existing text.
func FromString(s string) Rope {
	return Rope{text: s, nl: buildNewlineIndex(s)}
}

// String returns the full document text.
func (r Rope) String() string { return r.text }

// Len returns the length of the document in bytes.
func (r Rope) Len() int { return len(r.text) }

// IsEmpty reports whether the rope holds no text.
func (r Rope) IsEmpty() bool { return len(r.text) == 0 }

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() uint32 { return r.nl.lineCount() }

// LineStartOffset returns the byte offset of the start of line.
func (r Rope) LineStartOffset(line uint32) int { return r.nl.lineStart(line, len(r.text)) }

// LineEndOffset returns the byte offset of the end of line, excluding
// its line break.
func (r Rope) LineEndOffset(line uint32) int { return r.nl.lineEnd(line, len(r.text)) }

// LineText returns the text of line, excluding its line break.
func (r Rope) LineText(line uint32) string {
	start, end := r.LineStartOffset(line), r.LineEndOffset(line)
	if start > end || start > len(r.text) {
		return ""
	}
	if end > len(r.text) {
		end = len(r.text)
	}
	return r.text[start:end]
}

// LineLenChars returns the number of characters on line, excluding
// its line break.
func (r Rope) LineLenChars(line uint32) uint32 {
	return uint32(utf8.RuneCountInString(r.LineText(line)))
}

// Slice returns the text in the byte range [start, end).
func (r Rope) Slice(start, end int) string {
	if start < 0 || end > len(r.text) || start > end {
		return ""
	}
	return r.text[start:end]
}

// ByteOffsetAt converts a Point to a byte offset, clamping the column
// to the line's length.
func (r Rope) ByteOffsetAt(p Point) int {
	line := r.LineText(p.Line)
	lineStart := r.LineStartOffset(p.Line)
	return lineStart + charColToByteCol(line, p.Col)
}

// PointAt converts a byte offset to a Point.
func (r Rope) PointAt(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(r.text) {
		offset = len(r.text)
	}
	line := r.nl.lineAt(offset)
	lineStart := r.LineStartOffset(line)
	col := uint32(utf8.RuneCountInString(r.text[lineStart:offset]))
	return Point{Line: line, Col: col}
}

// ClampPoint bounds p.Col to the length of p.Line.
func (r Rope) ClampPoint(p Point) Point {
	if p.Line >= r.LineCount() {
		last := r.LineCount() - 1
		return Point{Line: last, Col: r.LineLenChars(last)}
	}
	maxCol := r.LineLenChars(p.Line)
	if p.Col > maxCol {
		p.Col = maxCol
	}
	return p
}

// Insert returns a new rope with text inserted at offset.
func (r Rope) Insert(offset int, text string) Rope {
	if text == "" {
		return r
	}
	if offset < 0 || offset > len(r.text) {
		offset = clampOffset(offset, len(r.text))
	}
	return FromString(r.text[:offset] + text + r.text[offset:])
}

// Delete returns a new rope with the byte range [start, end) removed.
func (r Rope) Delete(start, end int) Rope {
	start, end = clampRange(start, end, len(r.text))
	if start >= end {
		return r
	}
	return FromString(r.text[:start] + r.text[end:])
}

// Replace returns a new rope with [start, end) replaced by text.
func (r Rope) Replace(start, end int, text string) Rope {
	start, end = clampRange(start, end, len(r.text))
	return FromString(r.text[:start] + text + r.text[end:])
}

func clampOffset(off, maxLen int) int {
	if off < 0 {
		return 0
	}
	if off > maxLen {
		return maxLen
	}
	return off
}

func clampRange(start, end, maxLen int) (int, int) {
	start = clampOffset(start, maxLen)
	end = clampOffset(end, maxLen)
	if start > end {
		start, end = end, start
	}
	return start, end
}

// charColToByteCol converts a character column within line into a
// byte offset, generalizing the teacher's UTF-16 column conversion
// (internal/engine/buffer/buffer.go: utf16ColumnFromString /
// byteOffsetFromUTF16Column) to plain rune counts.
func charColToByteCol(line string, col uint32) int {
	var seen uint32
	for i, r := range line {
		if seen >= col {
			return i
		}
		seen++
		_ = r
	}
	return len(line)
}

// DetectLineBreak returns the line-break style used by the first line
// break found in text, or the platform default (LF) if none is found.
func DetectLineBreak(text string) LineBreak {
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if i > 0 && text[i-1] == '\r' {
				return LineBreakCRLF
			}
			return LineBreakLF
		}
	}
	return LineBreakLF
}

// SurroundingChars returns the rune immediately before and after
// charIdx (a byte offset), used by paired-character insertion and
// pseudo-selection. Either may be utf8.RuneError with size 0 if at a
// document boundary.
func (r Rope) SurroundingChars(byteOffset int) (before, after rune) {
	before, _ = utf8.DecodeLastRuneInString(r.text[:clampOffset(byteOffset, len(r.text))])
	after, _ = utf8.DecodeRuneInString(r.text[clampOffset(byteOffset, len(r.text)):])
	return before, after
}
