package neighbors

import (
	"github.com/hupe1980/knn/distance"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// kdPoint is a reference row tagged with its row index.
type kdPoint struct {
	index  int
	coords []float64
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.coords[d] - c.(kdPoint).coords[d]
}

func (p kdPoint) Dims() int { return len(p.coords) }

// Distance returns the squared Euclidean distance, as kdtree expects.
func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	return distance.SquaredL2(p.coords, c.(kdPoint).coords)
}

type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kdPoints) Len() int                      { return len(p) }
func (p kdPoints) Pivot(d kdtree.Dim) int        { return kdPlane{Dim: d, kdPoints: p}.Pivot() }
func (p kdPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

type kdPlane struct {
	kdtree.Dim
	kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return p.kdPoints[i].coords[p.Dim] < p.kdPoints[j].coords[p.Dim]
}
func (p kdPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}
func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}

// KDTreeSearcher answers exact Euclidean queries with a gonum k-d tree.
type KDTreeSearcher struct {
	tree *kdtree.Tree
	rows int
	cols int
}

// NewKDTreeSearcher builds a k-d tree over the rows of ref.
func NewKDTreeSearcher(ref mat.Matrix) *KDTreeSearcher {
	d := AsDense(ref)
	rows, cols := d.Dims()

	pts := make(kdPoints, rows)
	for i := range pts {
		pts[i] = kdPoint{index: i, coords: d.RawRowView(i)}
	}

	return &KDTreeSearcher{
		tree: kdtree.New(pts, false),
		rows: rows,
		cols: cols,
	}
}

// Search implements Searcher.
func (s *KDTreeSearcher) Search(x *mat.Dense, k int, withDistance bool) (*Result, error) {
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
		keep := kdtree.NewNKeeper(k)
		s.tree.NearestSet(keep, kdPoint{index: -1, coords: x.RawRowView(i)})

		cands = cands[:0]
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue
			}
			cands = append(cands, neighbor{index: c.Comparable.(kdPoint).index, dist: c.Dist})
		}
		fill(res, i, cands, true)
	}

	return res, nil
}

// Len implements Searcher.
func (s *KDTreeSearcher) Len() int { return s.rows }

// Dims implements Searcher.
func (s *KDTreeSearcher) Dims() int { return s.cols }
