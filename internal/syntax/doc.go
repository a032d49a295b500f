// Package syntax bridges a rope.Rope to a tree-sitter syntax tree.
//
// It never exposes tree-sitter nodes to long-lived state: callers walk
// the tree through a Cursor scoped to one frame and read node shape
// only through the language binding's categorizer and highlight query,
// per spec §4.B and the "cyclic references to syntax tree" design note.
package syntax
