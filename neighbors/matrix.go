package neighbors

import (
	"fmt"

	"github.com/hupe1980/knn/distance"
	"gonum.org/v1/gonum/mat"
)

// MatrixSearcher computes a full distance matrix per query block and selects
// the k smallest entries per row.
type MatrixSearcher struct {
	ref    *mat.Dense
	metric distance.Metric
}

// NewMatrixSearcher creates a searcher over the rows of ref.
// ref is retained, not copied, and must not be mutated afterwards.
func NewMatrixSearcher(ref mat.Matrix, m distance.Metric) (*MatrixSearcher, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %v", distance.ErrUnsupportedMetric, m)
	}
	return &MatrixSearcher{ref: AsDense(ref), metric: m}, nil
}

// Search implements Searcher.
func (s *MatrixSearcher) Search(x *mat.Dense, k int, withDistance bool) (*Result, error) {
	d, err := distance.Pairwise(x, s.ref, s.metric)
	if err != nil {
		return nil, err
	}
	return SelectK(d, k, withDistance)
}

// Len implements Searcher.
func (s *MatrixSearcher) Len() int {
	r, _ := s.ref.Dims()
	return r
}

// Dims implements Searcher.
func (s *MatrixSearcher) Dims() int {
	_, c := s.ref.Dims()
	return c
}

// Metric returns the metric used by the searcher.
func (s *MatrixSearcher) Metric() distance.Metric {
	return s.metric
}
