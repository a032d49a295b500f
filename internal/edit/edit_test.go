package edit

import (
	"testing"

	"github.com/lilypad-editor/core/internal/rope"
)

func cursorAt(line, col uint32) rope.Range {
	return rope.NewCursorRange(rope.Point{Line: line, Col: col})
}

func TestInsertCharacterInsertsPairForOpenBracket(t *testing.T) {
	rp := rope.FromString("foo()")
	stacks := &Stacks{}
	e, _ := InsertCharacter(rp, cursorAt(0, 4), stacks, "(")
	if e == nil || e.Text != "()" {
		t.Fatalf("want paired insert \"()\", got %+v", e)
	}
	if len(stacks.PairedDelete) != 1 || !stacks.PairedDelete[0] {
		t.Fatalf("want paired-delete stack to record true, got %v", stacks.PairedDelete)
	}
}

func TestInsertCharacterNoPairBeforeAlnum(t *testing.T) {
	rp := rope.FromString("(abc)")
	stacks := &Stacks{}
	e, _ := InsertCharacter(rp, cursorAt(0, 1), stacks, "(")
	if e == nil || e.Text != "(" {
		t.Fatalf("want unpaired insert before alnum, got %+v", e)
	}
}

func TestInsertCharacterTypesThroughIgnoredCloser(t *testing.T) {
	rp := rope.FromString("()")
	stacks := &Stacks{InputIgnore: []rune{')'}, PairedDelete: []bool{true}}
	e, newRng := InsertCharacter(rp, cursorAt(0, 1), stacks, ")")
	if e != nil {
		t.Fatalf("typing through an ignored closer must produce no edit, got %+v", e)
	}
	if newRng.End.Col != 2 {
		t.Fatalf("want cursor to advance past the closer, got %v", newRng.End)
	}
	if len(stacks.InputIgnore) != 0 {
		t.Fatalf("want input-ignore popped, got %v", stacks.InputIgnore)
	}
}

func TestInsertCharacterQuoteNoDoublePairInsideTriple(t *testing.T) {
	rp := rope.FromString(`""`)
	stacks := &Stacks{}
	e, _ := InsertCharacter(rp, cursorAt(0, 1), stacks, `"`)
	if e == nil || e.Text != `"` {
		t.Fatalf("want no pair insert between two existing quotes, got %+v", e)
	}
}

func TestBackspaceUnindentsAtIndentBoundary(t *testing.T) {
	rp := rope.FromString("    foo")
	stacks := &Stacks{}
	e, newRng := Backspace(rp, cursorAt(0, 4), stacks, nil, true)
	if e == nil {
		t.Fatalf("want an unindent edit at the indent boundary")
	}
	if e.Range.Start.Col != 0 || e.Range.End.Col != 4 {
		t.Fatalf("want full 4-space unindent, got range %+v", e.Range)
	}
	if newRng.End.Col != 0 {
		t.Fatalf("want cursor moved to col 0, got %v", newRng.End)
	}
}

func TestBackspaceDeletesPairedCloserTogether(t *testing.T) {
	rp := rope.FromString("()")
	stacks := &Stacks{InputIgnore: []rune{')'}, PairedDelete: []bool{true}}
	e, _ := Backspace(rp, cursorAt(0, 1), stacks, nil, true)
	if e == nil || e.Range.Start.Col != 0 || e.Range.End.Col != 2 {
		t.Fatalf("want both paren chars deleted together, got %+v", e)
	}
}

func TestBackspaceOnEmptyDocumentProducesNoEdit(t *testing.T) {
	rp := rope.FromString("")
	stacks := &Stacks{}
	e, _ := Backspace(rp, cursorAt(0, 0), stacks, nil, true)
	if e != nil {
		t.Fatalf("want no edit at document start, got %+v", e)
	}
}

func TestIndentAddsReAligningStep(t *testing.T) {
	rp := rope.FromString("  foo\n   bar")
	rng := rope.Range{Start: rope.Point{Line: 0, Col: 2}, End: rope.Point{Line: 1, Col: 3}}
	e, _ := Indent(rp, rng)
	want := "  " + "  foo\n" + " " + "   bar"
	if e.Text != want {
		t.Fatalf("want %q, got %q", want, e.Text)
	}
}

func TestUnindentRemovesPartialStep(t *testing.T) {
	rp := rope.FromString("  foo")
	rng := cursorAt(0, 2)
	e, _ := Unindent(rp, rng)
	if e.Text != "foo" {
		t.Fatalf("want indentation of 2 (not a multiple of TAB) fully removed, got %q", e.Text)
	}
}

func TestInsertNewlineIndentsAfterColon(t *testing.T) {
	rp := rope.FromString("if x:")
	e, newRng := InsertNewline(rp, cursorAt(0, 5), ':', false, rope.LineBreakLF)
	if e.Text != "\n    " {
		t.Fatalf("want newline plus one indent step after ':', got %q", e.Text)
	}
	if newRng.End.Col != 4 {
		t.Fatalf("want cursor at col 4, got %v", newRng.End)
	}
}

func TestInsertNewlineBracesHugBody(t *testing.T) {
	rp := rope.FromString("void f() {}")
	e, newRng := InsertNewline(rp, cursorAt(0, 10), '{', true, rope.LineBreakLF)
	want := "\n    \n"
	if e.Text != want {
		t.Fatalf("want braces-hug-body double newline, got %q", e.Text)
	}
	if newRng.End != (rope.Point{Line: 1, Col: 4}) {
		t.Fatalf("want cursor on the deeper-indented first line, got %v", newRng.End)
	}
}
