package padding

// GutterMapper maps a logical source line to the display offset a
// host gutter should draw its number at (see DisplayRow). Because
// blocks add vertical space but never remove a line, every logical
// line maps to exactly one display offset and the
// mapping is monotonic — so the caller need only track an
// accumulated offset rather than search the block tree again.
type GutterMapper struct {
	vec Vector
}

// NewGutterMapper builds a mapper from an already-computed padding
// vector.
func NewGutterMapper(vec Vector) GutterMapper { return GutterMapper{vec: vec} }

// DisplayRow reports whether line is in range and, if so, the
// fractional display offset (in padding units, not pixels) of its
// top edge, cumulative padding included.
func (g GutterMapper) DisplayRow(line int) (offset float64, ok bool) {
	if line < 0 || line >= g.vec.LineCount() {
		return 0, false
	}
	return g.vec.Cumulative(line) + float64(line), true
}
