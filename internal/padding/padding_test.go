package padding

import (
	"testing"

	"github.com/lilypad-editor/core/internal/block"
)

func TestBuildEmptyDocumentVectorIsZero(t *testing.T) {
	tree := &block.Tree{}
	v := Build(tree, 0)
	if v.LineCount() != 1 {
		t.Fatalf("want length-1 vector for empty document, got %d", v.LineCount())
	}
	if v.Total() != 0 {
		t.Fatalf("want 0 total for empty document, got %v", v.Total())
	}
}

func TestBuildSingleBlockAboveAndBelow(t *testing.T) {
	tree := &block.Tree{Roots: []*block.Block{
		{Line: 1, Height: 2, Category: block.FunctionDef},
	}}
	v := Build(tree, 5)
	if v.Individual(1) != Above {
		t.Fatalf("want %v above line 1, got %v", Above, v.Individual(1))
	}
	if v.Individual(3) != Below {
		t.Fatalf("want %v below line 3 (line after block), got %v", Below, v.Individual(3))
	}
	if v.Individual(0) != 0 || v.Individual(2) != 0 || v.Individual(4) != 0 {
		t.Fatalf("unaffected lines must carry no padding")
	}
}

func TestBuildDividerContributesNoPadding(t *testing.T) {
	tree := &block.Tree{Roots: []*block.Block{
		{Line: 0, Category: block.Divider},
	}}
	v := Build(tree, 3)
	if v.Total() != 0 {
		t.Fatalf("a Divider must never draw padding, got total %v", v.Total())
	}
}

func TestCumulativeContractMatchesIndividualSums(t *testing.T) {
	tree := &block.Tree{Roots: []*block.Block{
		{Line: 0, Height: 1, Category: block.Generic},
		{Line: 2, Height: 1, Category: block.Generic},
	}}
	v := Build(tree, 4)
	running := 0.0
	for i := 0; i < v.LineCount(); i++ {
		running += v.Individual(i)
		if v.Cumulative(i) != running {
			t.Fatalf("cumulative(%d) = %v, want %v", i, v.Cumulative(i), running)
		}
	}
	if v.Cumulative(v.LineCount()-1) != v.Total() {
		t.Fatalf("cumulative(last) must equal total")
	}
}

func TestGutterMapperOutOfRange(t *testing.T) {
	v := Build(&block.Tree{}, 3)
	g := NewGutterMapper(v)
	if _, ok := g.DisplayRow(-1); ok {
		t.Fatalf("negative line must be out of range")
	}
	if _, ok := g.DisplayRow(3); ok {
		t.Fatalf("line == lineCount must be out of range")
	}
	if _, ok := g.DisplayRow(0); !ok {
		t.Fatalf("line 0 of a 3-line document must be in range")
	}
}
