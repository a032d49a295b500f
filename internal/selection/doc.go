// Package selection implements cursor movement and the expanding
// selection model over a rope.Rope, plus pseudo-selection for string
// literals, per spec §4.F.
package selection
