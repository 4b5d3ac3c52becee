package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/knn/internal/simd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CosineSnap is the magnitude below which cosine distances are set to exactly 0.
const CosineSnap = 1e-8

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float64) float64 {
	return simd.Dot(a, b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float64) float64 {
	return simd.SquaredL2(a, b)
}

// Norm returns the L2 norm of v.
func Norm(v []float64) float64 {
	return math.Sqrt(simd.Dot(v, v))
}

// Func is a function type for distance calculation between two rows.
type Func func(a, b []float64) float64

// Provider returns the row distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case Euclidean:
		return euclidean, nil
	case Cosine:
		return cosine, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}

func euclidean(a, b []float64) float64 {
	return math.Sqrt(simd.SquaredL2(a, b))
}

func cosine(a, b []float64) float64 {
	return snap(1 - simd.Dot(a, b)/(Norm(a)*Norm(b)))
}

func snap(v float64) float64 {
	if math.Abs(v) < CosineSnap {
		return 0
	}
	return v
}

// Pairwise returns the N×M matrix whose [i, j] element is the distance between
// row i of x and row j of y under metric m.
//
// A column count mismatch returns an error wrapping mat.ErrShape and an empty
// operand returns an error wrapping mat.ErrZeroLength.
func Pairwise(x, y mat.Matrix, m Metric) (*mat.Dense, error) {
	switch m {
	case Euclidean:
		return EuclideanDistances(x, y)
	case Cosine:
		return CosineDistances(x, y)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMetric, m)
	}
}

// EuclideanDistances computes the Euclidean distance matrix between the rows of
// x and y.
//
// The squared distances come out of a single product of augmented operands
//
//	[‖x‖², 1, −2x] · [1, ‖y‖², y]ᵀ = ‖x‖² + ‖y‖² − 2·x·y
//
// Negative round-off is clipped to 0 before the square root.
func EuclideanDistances(x, y mat.Matrix) (*mat.Dense, error) {
	n, m, d, err := dims(x, y)
	if err != nil {
		return nil, err
	}

	xa := mat.NewDense(n, d+2, nil)
	for i := range n {
		row := xa.RawRowView(i)
		v := mat.Row(row[2:], i, x)
		row[0] = simd.Dot(v, v)
		row[1] = 1
		floats.Scale(-2, v)
	}

	ya := mat.NewDense(m, d+2, nil)
	for j := range m {
		row := ya.RawRowView(j)
		v := mat.Row(row[2:], j, y)
		row[0] = 1
		row[1] = simd.Dot(v, v)
	}

	dist := mat.NewDense(n, m, nil)
	dist.Mul(xa, ya.T())

	for i := range n {
		row := dist.RawRowView(i)
		for j, v := range row {
			if v < 0 {
				row[j] = 0
			}
		}
		simd.SqrtInPlace(row)
	}

	return dist, nil
}

// CosineDistances computes the cosine distance matrix between the rows of x and y.
//
// The denominator is the outer product of the row norms of x and y.
func CosineDistances(x, y mat.Matrix) (*mat.Dense, error) {
	n, m, _, err := dims(x, y)
	if err != nil {
		return nil, err
	}

	norms := mat.NewDense(n, m, nil)
	norms.Outer(1, rowNorms(x, n), rowNorms(y, m))

	dist := mat.NewDense(n, m, nil)
	dist.Mul(x, y.T())
	dist.DivElem(dist, norms)

	for i := range n {
		row := dist.RawRowView(i)
		for j, v := range row {
			row[j] = snap(1 - v)
		}
	}

	return dist, nil
}

func rowNorms(a mat.Matrix, rows int) *mat.VecDense {
	_, c := a.Dims()
	buf := make([]float64, c)
	out := mat.NewVecDense(rows, nil)
	for i := range rows {
		out.SetVec(i, Norm(mat.Row(buf, i, a)))
	}
	return out
}

func dims(x, y mat.Matrix) (n, m, d int, err error) {
	n, d = x.Dims()
	m, dy := y.Dims()
	if n == 0 || m == 0 || d == 0 {
		return 0, 0, 0, fmt.Errorf("distance: %w", mat.ErrZeroLength)
	}
	if d != dy {
		return 0, 0, 0, fmt.Errorf("distance: x has %d columns, y has %d: %w", d, dy, mat.ErrShape)
	}
	return n, m, d, nil
}
