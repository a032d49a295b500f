// Package palette loads the drag-and-drop-insertable block snippets
// shown in the editor's side palette from a YAML document, one entry
// per language, each tagged with its category (the list itself is
// flat, not grouped).
package palette
