// Package block folds a syntax tree into the two-dimensional block
// forest the renderer draws as nested colored scopes, per spec §4.C.
//
// The builder never retains syntax-tree nodes: it walks a
// syntax.Cursor once per rebuild and snapshots only the values
// (line, col, height, category) a Block needs.
package block
