package neighbors

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Searcher answers k-nearest-neighbor queries against a fixed reference set.
type Searcher interface {
	// Search returns the k nearest reference rows for every row of x.
	Search(x *mat.Dense, k int, withDistance bool) (*Result, error)

	// Len returns the number of reference rows.
	Len() int

	// Dims returns the number of columns of the reference rows.
	Dims() int
}

// BatchQuery runs s over x in contiguous blocks of at most blockSize rows and
// concatenates the block results in input row order.
func BatchQuery(s Searcher, x mat.Matrix, k, blockSize int, withDistance bool) (*Result, error) {
	if blockSize < 1 {
		return nil, ErrInvalidBlockSize
	}
	if err := checkK(k, s.Len()); err != nil {
		return nil, err
	}

	if err := checkDims(x, s.Dims()); err != nil {
		return nil, err
	}
	q, d := x.Dims()

	res := &Result{Indices: make([][]int, 0, q)}
	if q == 0 {
		return res, nil
	}
	if withDistance {
		res.Distances = mat.NewDense(q, k, nil)
	}

	xd := AsDense(x)
	for start := 0; start < q; start += blockSize {
		end := min(start+blockSize, q)

		block := xd.Slice(start, end, 0, d).(*mat.Dense)
		part, err := s.Search(block, k, withDistance)
		if err != nil {
			return nil, err
		}

		res.Indices = append(res.Indices, part.Indices...)
		if withDistance {
			res.Distances.Slice(start, end, 0, k).(*mat.Dense).Copy(part.Distances)
		}
	}

	return res, nil
}

// AsDense returns m itself when it is a *mat.Dense and a dense copy otherwise.
func AsDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}

func checkDims(x mat.Matrix, want int) error {
	if _, d := x.Dims(); d != want {
		return fmt.Errorf("neighbors: query has %d columns, reference has %d: %w", d, want, mat.ErrShape)
	}
	return nil
}
