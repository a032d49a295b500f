// Package highlight turns a language binding's tree-sitter query into
// a lazy, one-shot stream of highlight events over a subtree, with
// local-variable-aware reference resolution, per spec §4.E.
//
// This has no direct teacher analogue — keystorm highlights per-line
// with a hand lexer (internal/renderer/highlight) — so the capture
// walk and scope-stack resolution here are original work against the
// go-tree-sitter-bare Query/QueryCursor API demonstrated in
// shinyvision-vimfony's analyzer package. See DESIGN.md.
package highlight
