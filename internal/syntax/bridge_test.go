package syntax

import (
	"context"
	"testing"

	"github.com/lilypad-editor/core/internal/syntax/lang"
)

func TestReplaceParsesFromScratch(t *testing.T) {
	b := NewBridge(*lang.Python)
	defer b.Close()

	src := []byte("def f():\n    pass\n")
	if err := b.Replace(context.Background(), src); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	tree, ok := b.Tree()
	if !ok {
		t.Fatal("Tree() should report a tree after Replace")
	}
	root := tree.RootNode()
	if root.Type() != "module" {
		t.Errorf("root type = %q, want \"module\"", root.Type())
	}
}

func TestUpdateReparsesIncrementally(t *testing.T) {
	b := NewBridge(*lang.Python)
	defer b.Close()

	ctx := context.Background()
	src := []byte("x = 1\n")
	if err := b.Replace(ctx, src); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	newSrc := []byte("x = 12\n")
	desc := EditDescriptor{
		StartByte:   4,
		OldEndByte:  5,
		NewEndByte:  6,
		StartPoint:  Point{Row: 0, Column: 4},
		OldEndPoint: Point{Row: 0, Column: 5},
		NewEndPoint: Point{Row: 0, Column: 6},
	}
	if err := b.Update(ctx, newSrc, desc); err != nil {
		t.Fatalf("Update: %v", err)
	}
	tree, ok := b.Tree()
	if !ok || tree.RootNode().IsNull() {
		t.Fatal("Update must leave a valid tree")
	}
}

func TestCursorFailsWithoutAParse(t *testing.T) {
	b := NewBridge(*lang.Python)
	defer b.Close()

	if _, err := b.Cursor(); err != ErrNoLanguage {
		t.Errorf("Cursor() before any parse = %v, want ErrNoLanguage", err)
	}
}

func TestCursorWalksParsedTree(t *testing.T) {
	b := NewBridge(*lang.Python)
	defer b.Close()

	ctx := context.Background()
	src := []byte("def f():\n    pass\n")
	if err := b.Replace(ctx, src); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	cur, err := b.Cursor()
	if err != nil {
		t.Fatalf("Cursor: %v", err)
	}

	var sawFunctionDef bool
	cur.Walk(func(n Node) bool {
		if n.Type() == "function_definition" {
			sawFunctionDef = true
		}
		return true
	})
	if !sawFunctionDef {
		t.Error("walking the tree for \"def f(): pass\" must visit a function_definition node")
	}
}
