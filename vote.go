package knn

import (
	"cmp"
	"slices"

	"github.com/hupe1980/knn/neighbors"
)

// Eps is added to every distance before inversion so exact matches get a
// large but finite weight.
const Eps = 1e-5

// encodeLabels returns the sorted distinct labels of y and, for every row,
// the position of its label in that sorted set.
func encodeLabels[L cmp.Ordered](y []L) ([]L, []int) {
	classes := slices.Clone(y)
	slices.Sort(classes)
	classes = slices.Compact(classes)

	codes := make([]int, len(y))
	for i, v := range y {
		codes[i], _ = slices.BinarySearch(classes, v)
	}
	return classes, codes
}

// tally accumulates per-class vote weights for a batch of query rows.
type tally struct {
	sums    []float64 // rows × classes, row-major
	classes int
}

func newTally(rows, classes int) *tally {
	return &tally{
		sums:    make([]float64, rows*classes),
		classes: classes,
	}
}

func (t *tally) row(i int) []float64 {
	return t.sums[i*t.classes : (i+1)*t.classes]
}

// add accumulates the votes of neighbor ranks [from, to) of every query row.
// Weighted votes read res.Distances, which must then be present.
func (t *tally) add(res *neighbors.Result, codes []int, weighted bool, from, to int) {
	for i, idx := range res.Indices {
		sums := t.row(i)

		var dist []float64
		if weighted {
			dist = res.Distances.RawRowView(i)
		}

		for j := from; j < to; j++ {
			w := 1.0
			if weighted {
				w = 1 / (dist[j] + Eps)
			}
			sums[codes[idx[j]]] += w
		}
	}
}

// predict writes the winning class of every row into out. The first class
// with the maximum sum wins, so ties go to the lowest label.
func predict[L cmp.Ordered](t *tally, classes []L, out []L) {
	for i := range out {
		sums := t.row(i)
		best := 0
		for c := 1; c < len(sums); c++ {
			if sums[c] > sums[best] {
				best = c
			}
		}
		out[i] = classes[best]
	}
}
