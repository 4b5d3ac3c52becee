package neighbors

import (
	"math"
	"math/rand/v2"

	"github.com/hupe1980/knn/distance"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/vptree"
)

// DefaultBallTreeEffort is the vantage point selection effort used by
// NewBallTreeSearcher.
const DefaultBallTreeEffort = 4

// vpPoint is a reference row tagged with its row index.
type vpPoint struct {
	index  int
	coords []float64
}

// Distance returns the Euclidean distance; vptree requires a true metric.
func (p vpPoint) Distance(c vptree.Comparable) float64 {
	return math.Sqrt(distance.SquaredL2(p.coords, c.(vpPoint).coords))
}

// BallTreeSearcher answers exact Euclidean queries with a gonum vantage-point
// tree, a ball-partitioning metric tree.
type BallTreeSearcher struct {
	tree *vptree.Tree
	rows int
	cols int
}

// NewBallTreeSearcher builds a vantage-point tree over the rows of ref.
// Vantage points are drawn from a fixed-seed source so builds are reproducible.
func NewBallTreeSearcher(ref mat.Matrix) (*BallTreeSearcher, error) {
	d := AsDense(ref)
	rows, cols := d.Dims()

	pts := make([]vptree.Comparable, rows)
	for i := range pts {
		pts[i] = vpPoint{index: i, coords: d.RawRowView(i)}
	}

	tree, err := vptree.New(pts, DefaultBallTreeEffort, rand.NewPCG(uint64(rows), uint64(cols)))
	if err != nil {
		return nil, err
	}

	return &BallTreeSearcher{tree: tree, rows: rows, cols: cols}, nil
}

// Search implements Searcher.
func (s *BallTreeSearcher) Search(x *mat.Dense, k int, withDistance bool) (*Result, error) {
	if err := checkK(k, s.rows); err != nil {
		return nil, err
	}
	if err := checkDims(x, s.cols); err != nil {
		return nil, err
	}

	n, _ := x.Dims()
	res := newResult(n, k, withDistance)
	cands := make([]neighbor, 0, k+1)

	for i := range n {
		keep := vptree.NewNKeeper(k)
		s.tree.NearestSet(keep, vpPoint{index: -1, coords: x.RawRowView(i)})

		cands = cands[:0]
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			cands = append(cands, neighbor{index: c.Comparable.(vpPoint).index, dist: c.Dist})
		}
		fill(res, i, cands, false)
	}

	return res, nil
}

// Len implements Searcher.
func (s *BallTreeSearcher) Len() int { return s.rows }

// Dims implements Searcher.
func (s *BallTreeSearcher) Dims() int { return s.cols }
