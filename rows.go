package knn

import (
	"gonum.org/v1/gonum/mat"
)

// selectRows copies the rows of x listed in idx into a new matrix.
func selectRows(x *mat.Dense, idx []int) *mat.Dense {
	_, d := x.Dims()
	out := mat.NewDense(len(idx), d, nil)
	for i, r := range idx {
		copy(out.RawRowView(i), x.RawRowView(r))
	}
	return out
}

func selectLabels[L any](y []L, idx []int) []L {
	out := make([]L, len(idx))
	for i, r := range idx {
		out[i] = y[r]
	}
	return out
}
