// Package padding computes the vertical pixel reservation induced by
// a block tree, per spec §4.D.
package padding

import "github.com/lilypad-editor/core/internal/block"

// Constants from §4.D: stroke + inner + top_outer = 5.5 above a
// block, stroke + inner = 4.5 below it.
const (
	Stroke   = 1.5
	Inner    = 3.0
	TopOuter = 1.0

	Above = Stroke + Inner + TopOuter
	Below = Stroke + Inner
)

// Vector is a per-line cumulative prefix sum of vertical padding.
// Contract: individual(i) = Vector[i] - Vector[i-1] (Vector[-1] = 0);
// Vector[len-1] is the total.
type Vector struct {
	cumulative []float64
	lineCount  int
}

// Build computes the padding vector for a document of lineCount lines
// (≥1) given its block tree. Above-padding is reserved on the line a
// block starts; below-padding on the line after its last line, when
// that line exists.
func Build(tree *block.Tree, lineCount int) Vector {
	if lineCount < 1 {
		lineCount = 1
	}
	individual := make([]float64, lineCount)

	tree.WalkPreOrder(func(b *block.Block) {
		if b.IsDivider() {
			return
		}
		if int(b.Line) < lineCount {
			individual[b.Line] += Above
		}
		after := int(b.EndLine())
		if after < lineCount {
			individual[after] += Below
		}
	})

	cumulative := make([]float64, lineCount)
	running := 0.0
	for i, v := range individual {
		running += v
		cumulative[i] = running
	}
	return Vector{cumulative: cumulative, lineCount: lineCount}
}

// Individual returns the padding reserved for line i alone.
func (v Vector) Individual(i int) float64 {
	if i < 0 || i >= v.lineCount {
		return 0
	}
	if i == 0 {
		return v.cumulative[0]
	}
	return v.cumulative[i] - v.cumulative[i-1]
}

// Cumulative returns the running total through line i.
func (v Vector) Cumulative(i int) float64 {
	if i < 0 {
		return 0
	}
	if i >= v.lineCount {
		i = v.lineCount - 1
	}
	return v.cumulative[i]
}

// Total returns the whole document's vertical padding.
func (v Vector) Total() float64 {
	if v.lineCount == 0 {
		return 0
	}
	return v.cumulative[v.lineCount-1]
}

// LineCount reports the number of lines this vector was built for.
func (v Vector) LineCount() int { return v.lineCount }
