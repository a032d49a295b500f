package drag

import (
	"testing"

	"github.com/lilypad-editor/core/internal/block"
	"github.com/lilypad-editor/core/internal/rope"
)

func TestFindBlockAtRequiresColAtLeastBlockCol(t *testing.T) {
	inner := &block.Block{Line: 1, Col: 4, Height: 1, Category: block.Generic}
	outer := &block.Block{Line: 0, Col: 0, Height: 2, Category: block.If, Children: []*block.Block{inner}}
	tree := &block.Tree{Roots: []*block.Block{outer}}

	got := FindBlockAt(tree, rope.Point{Line: 1, Col: 2})
	if got != outer {
		t.Fatalf("want a click left of the inner block's column to select the outer block, got %+v", got)
	}

	got = FindBlockAt(tree, rope.Point{Line: 1, Col: 4})
	if got != inner {
		t.Fatalf("want a click at the inner block's column to select it, got %+v", got)
	}
}

func TestFindBlockAtSkipsDividers(t *testing.T) {
	div := &block.Block{Line: 1, Col: 0, Height: 0, Category: block.Divider}
	b := &block.Block{Line: 0, Col: 0, Height: 2, Category: block.Generic, Children: []*block.Block{div}}
	tree := &block.Tree{Roots: []*block.Block{b}}

	got := FindBlockAt(tree, rope.Point{Line: 1, Col: 0})
	if got != b {
		t.Fatalf("want a divider to never be returned, got %+v", got)
	}
}

func TestNormalizeStripsFirstLineIndentFromAll(t *testing.T) {
	got := normalize("    if x:\n        pass")
	want := "if x:\n    pass\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveDropAddsTabAfterScopeChar(t *testing.T) {
	rp := rope.FromString("if x:\n\nfoo()")
	target := ResolveDrop(rp, 1, ':')
	if target.AllowedIndent != tab {
		t.Fatalf("want blank line 1 to resolve up to \"if x:\" and add one tab, got %d", target.AllowedIndent)
	}
}

func TestResolveDropWithoutScopeCharKeepsIndent(t *testing.T) {
	rp := rope.FromString("    pass\n\nfoo()")
	target := ResolveDrop(rp, 1, ':')
	if target.AllowedIndent != 4 {
		t.Fatalf("want the nearest code line's own indent (4), got %d", target.AllowedIndent)
	}
}

func TestDropIndentBraceScopeUsesAllowedExactly(t *testing.T) {
	got := DropIndent(DropTarget{AllowedIndent: 8}, 2, true)
	if got != 8 {
		t.Fatalf("want brace-scope indent to equal allowed exactly, got %d", got)
	}
}

func TestDropIndentColonScopeSnapsAndClamps(t *testing.T) {
	got := DropIndent(DropTarget{AllowedIndent: 4}, 11, false)
	if got != 4 {
		t.Fatalf("want snapped indent clamped to allowed, got %d", got)
	}
	got = DropIndent(DropTarget{AllowedIndent: 8}, 5, false)
	if got != 4 {
		t.Fatalf("want floor(5/4)*4 == 4, got %d", got)
	}
}

func TestReindentAppliesPadToNonEmptyLines(t *testing.T) {
	got := reindent("if x:\n    pass\n", 4)
	want := "    if x:\n        pass\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
