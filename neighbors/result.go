package neighbors

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidBlockSize is returned when the block size is not positive.
	ErrInvalidBlockSize = errors.New("block size must be positive")
)

// KExceedsError indicates that more neighbors were requested than there are
// reference rows.
type KExceedsError struct {
	K         int
	Available int
}

func (e *KExceedsError) Error() string {
	return fmt.Sprintf("k=%d exceeds the %d available reference points", e.K, e.Available)
}

func checkK(k, available int) error {
	if k < 1 {
		return ErrInvalidK
	}
	if k > available {
		return &KExceedsError{K: k, Available: available}
	}
	return nil
}

// Result holds the neighbors of a query batch.
//
// Indices[i][j] is the reference row at rank j for query i. Distances is the
// parallel N×k matrix, non-decreasing along every row, or nil when distances
// were not requested.
type Result struct {
	Distances *mat.Dense
	Indices   [][]int
}

// Len returns the number of query rows.
func (r *Result) Len() int {
	return len(r.Indices)
}

// K returns the number of neighbors per query row.
func (r *Result) K() int {
	if len(r.Indices) == 0 {
		return 0
	}
	return len(r.Indices[0])
}

// HasDistances reports whether the result carries distances.
func (r *Result) HasDistances() bool {
	return r.Distances != nil
}

func newResult(n, k int, withDistance bool) *Result {
	res := &Result{Indices: make([][]int, n)}
	flat := make([]int, n*k)
	for i := range res.Indices {
		res.Indices[i] = flat[i*k : (i+1)*k : (i+1)*k]
	}
	if withDistance && n > 0 {
		res.Distances = mat.NewDense(n, k, nil)
	}
	return res
}
