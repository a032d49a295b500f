// Package drag implements the block drag-and-drop session of §4.I:
// locating the dragged block, extracting and normalizing its text,
// and resolving a drop point's allowed indentation.
package drag
