package syntax

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Node is a read-only view of a single syntax node. It carries only
// value data a caller might need after the cursor has moved on —
// position snapshots are taken from it, never the node itself.
type Node struct {
	inner sitter.Node
}

// IsNull reports whether the node is absent (e.g. no child at index).
func (n Node) IsNull() bool { return n.inner.IsNull() }

// Type returns the grammar's node kind, e.g. "function_definition".
func (n Node) Type() string { return n.inner.Type() }

// StartByte and EndByte return the node's half-open byte range.
func (n Node) StartByte() uint32 { return n.inner.StartByte() }
func (n Node) EndByte() uint32   { return n.inner.EndByte() }

// StartPoint and EndPoint return the node's (row, column) bounds. The
// column here is tree-sitter's byte column within the row, not a
// character column — the block builder converts via rope.Rope before
// storing a Block's Col.
func (n Node) StartPoint() Point { return fromSitterPoint(n.inner.StartPoint()) }
func (n Node) EndPoint() Point   { return fromSitterPoint(n.inner.EndPoint()) }

// Content returns the node's source text.
func (n Node) Content(source []byte) string { return n.inner.Content(source) }

// IsError reports whether this node represents a parse error.
func (n Node) IsError() bool { return n.inner.IsError() }

// NamedChildCount and NamedChild give access to named children in
// source order, skipping anonymous tokens — the shape every
// categorizer and pseudo-selection ancestor walk in this module uses.
func (n Node) NamedChildCount() uint32 { return n.inner.NamedChildCount() }
func (n Node) NamedChild(i uint32) Node {
	return Node{inner: n.inner.NamedChild(i)}
}

// Parent returns the node's parent, or a null Node at the root.
func (n Node) Parent() Node { return Node{inner: n.inner.Parent()} }

func fromSitterPoint(p sitter.Point) Point {
	return Point{Row: p.Row, Column: p.Column}
}

// Cursor walks a syntax tree in pre-order. It is scoped to a single
// frame: the block builder and highlight engine construct one, walk
// it, and discard it — nothing in this module retains a Cursor or a
// Node across a source mutation.
type Cursor struct {
	root Node
}

// newCursorFromNode wraps a raw tree-sitter Node as a Cursor root.
// Nothing in the module calls it at present.
func newCursorFromNode(n sitter.Node) Cursor { return Cursor{root: Node{inner: n}} }

// Root returns the node this cursor was created from.
func (c Cursor) Root() Node { return c.root }

// Walk performs a pre-order traversal starting at the cursor's root,
// invoking visit for every node including Root. If visit returns
// false, that node's children are skipped (but its siblings are
// still visited).
func (c Cursor) Walk(visit func(Node) bool) {
	walk(c.root, visit)
}

func walk(n Node, visit func(Node) bool) {
	if n.IsNull() {
		return
	}
	descend := visit(n)
	if !descend {
		return
	}
	count := n.NamedChildCount()
	for i := uint32(0); i < count; i++ {
		walk(n.NamedChild(i), visit)
	}
}

// NamedDescendantAt returns the smallest named node containing point,
// used to resolve pseudo-selection and hover targets from a cursor
// position.
func (c Cursor) NamedDescendantAt(byteOffset uint32) Node {
	var best Node
	c.Walk(func(n Node) bool {
		if byteOffset < n.StartByte() || byteOffset > n.EndByte() {
			return false
		}
		best = n
		return true
	})
	return best
}
