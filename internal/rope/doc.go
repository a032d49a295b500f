// Package rope holds the canonical text of a Lilypad source document.
//
// It stores the full byte sequence of a document plus a sorted index of
// newline offsets, and converts between byte offsets and line/character
// points. Columns are character (rune) counts, never byte counts or
// UTF-16 code units, matching the editor's block-layout model which
// positions blocks by visual column.
package rope
