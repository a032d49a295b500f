package syntax

import (
	"context"
	"errors"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/lilypad-editor/core/internal/syntax/lang"
)

// ErrNoLanguage is returned by Cursor when no tree has been parsed
// yet.
var ErrNoLanguage = errors.New("syntax: no language binding set")

// EditDescriptor describes a single point edit to apply to the
// existing tree before re-parsing, mirroring tree-sitter's InputEdit.
type EditDescriptor struct {
	StartByte    uint32
	OldEndByte   uint32
	NewEndByte   uint32
	StartPoint   Point
	OldEndPoint  Point
	NewEndPoint  Point
}

// Point mirrors sitter.Point so callers outside this package never
// need to import the tree-sitter binding directly.
type Point struct {
	Row, Column uint32
}

func (p Point) toSitter() sitter.Point {
	return sitter.Point{Row: uint32(p.Row), Column: uint32(p.Column)}
}

func (e EditDescriptor) toSitter() sitter.InputEdit {
	return sitter.InputEdit{
		StartIndex:  uint32(e.StartByte),
		OldEndIndex: uint32(e.OldEndByte),
		NewEndIndex: uint32(e.NewEndByte),
		StartPoint:  e.StartPoint.toSitter(),
		OldEndPoint: e.OldEndPoint.toSitter(),
		NewEndPoint: e.NewEndPoint.toSitter(),
	}
}

// Bridge holds one tree-sitter parser/tree pair bound to a single
// language, applying point edits and re-parsing incrementally. It is
// not safe for concurrent use — the owning Source serializes access.
type Bridge struct {
	binding lang.Binding
	parser  *sitter.Parser
	tree    *sitter.Tree
}

// NewBridge creates a bridge for the given language binding.
func NewBridge(binding lang.Binding) *Bridge {
	p := sitter.NewParser()
	_ = p.SetLanguage(binding.Language())
	return &Bridge{binding: binding, parser: p}
}

// Binding returns the bridge's language binding.
func (b *Bridge) Binding() lang.Binding { return b.binding }

// Replace discards any existing tree and performs a full parse of
// content from scratch.
func (b *Bridge) Replace(ctx context.Context, content []byte) error {
	if b.tree != nil {
		b.tree.Close()
		b.tree = nil
	}
	tree, err := b.parser.ParseString(ctx, nil, content)
	if err != nil {
		return err
	}
	b.tree = tree
	return nil
}

// Update applies a point edit to the existing tree (or performs a
// full parse if there is none yet) and re-parses using the previous
// tree as a hint for incremental reuse.
func (b *Bridge) Update(ctx context.Context, content []byte, edit EditDescriptor) error {
	if b.tree == nil {
		return b.Replace(ctx, content)
	}
	b.tree.Edit(edit.toSitter())
	newTree, err := b.parser.ParseString(ctx, b.tree, content)
	if err != nil {
		return err
	}
	b.tree.Close()
	b.tree = newTree
	return nil
}

// Tree returns the current tree, or false if none has been parsed.
func (b *Bridge) Tree() (*sitter.Tree, bool) {
	return b.tree, b.tree != nil
}

// Cursor returns a walking cursor rooted at the tree's root node.
func (b *Bridge) Cursor() (Cursor, error) {
	if b.tree == nil {
		return Cursor{}, ErrNoLanguage
	}
	return Cursor{root: Node{inner: b.tree.RootNode()}}, nil
}

// Close releases the tree and parser.
func (b *Bridge) Close() {
	if b.tree != nil {
		b.tree.Close()
		b.tree = nil
	}
}
