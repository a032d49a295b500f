// Package lang holds the immutable per-language configuration the rest
// of the editor core treats polymorphically: grammar handle, highlight
// query text, new-scope character, node categorizer, string-node kind
// list, and palette snippet id.
//
// Bindings are string-keyed, not syntax.Node-keyed, so this package can
// depend on block (for block.Category) without block needing to depend
// back on syntax — the block builder takes a Categorize closure rather
// than importing lang directly.
package lang
