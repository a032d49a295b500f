// Package edit implements the pure edit-generator functions of §4.G:
// insert character (with paired-bracket/quote insertion), insert
// newline (with indent and braces-hug-body), backspace, and
// indent/unindent. Every constructor is a pure function from
// (selection, rope, language config, auxiliary stacks) to an optional
// TextEdit plus the resulting selection — the caller applies the edit
// and updates selection atomically.
package edit
