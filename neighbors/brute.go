package neighbors

import (
	"github.com/hupe1980/knn/distance"
	"github.com/hupe1980/knn/internal/searcher"
	"gonum.org/v1/gonum/mat"
)

// BruteSearcher scans every reference row for every query row and keeps the
// k closest in a bounded max-heap. It never materialises a distance matrix.
type BruteSearcher struct {
	ref  *mat.Dense
	dist distance.Func
}

// NewBruteSearcher creates a brute-force searcher over the rows of ref.
func NewBruteSearcher(ref mat.Matrix, m distance.Metric) (*BruteSearcher, error) {
	fn, err := distance.Provider(m)
	if err != nil {
		return nil, err
	}
	return &BruteSearcher{ref: AsDense(ref), dist: fn}, nil
}

// Search implements Searcher.
func (s *BruteSearcher) Search(x *mat.Dense, k int, withDistance bool) (*Result, error) {
	if err := checkK(k, s.Len()); err != nil {
		return nil, err
	}
	if err := checkDims(x, s.Dims()); err != nil {
		return nil, err
	}

	n, _ := x.Dims()
	m := s.Len()
	res := newResult(n, k, withDistance)
	q := searcher.NewMaxQueue(k)

	for i := range n {
		xi := x.RawRowView(i)
		q.Reset()
		for j := range m {
			q.Push(searcher.Item{Index: j, Distance: s.dist(xi, s.ref.RawRowView(j))})
		}

		var dist []float64
		if res.Distances != nil {
			dist = res.Distances.RawRowView(i)
		}
		q.DrainAscending(res.Indices[i], dist)
	}

	return res, nil
}

// Len implements Searcher.
func (s *BruteSearcher) Len() int {
	r, _ := s.ref.Dims()
	return r
}

// Dims implements Searcher.
func (s *BruteSearcher) Dims() int {
	_, c := s.ref.Dims()
	return c
}
