package testutil

import (
	"math"
	"math/rand"
	"sort"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformMatrix generates a rows×cols matrix with values in range [0, 1).
func (r *RNG) UniformMatrix(rows, cols int) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.rand.Float64()
	}
	return mat.NewDense(rows, cols, data)
}

// GaussianMatrix generates a rows×cols matrix from a standard normal distribution.
func (r *RNG) GaussianMatrix(rows, cols int) *mat.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = r.rand.NormFloat64()
	}
	return mat.NewDense(rows, cols, data)
}

// Blobs generates n points scattered around `classes` random centers in [-10, 10)^dim.
// Row i belongs to class i % classes; spread is the standard deviation of the noise.
func (r *RNG) Blobs(n, dim, classes int, spread float64) (*mat.Dense, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([][]float64, classes)
	for c := range centers {
		centers[c] = make([]float64, dim)
		for j := range centers[c] {
			centers[c][j] = r.rand.Float64()*20 - 10
		}
	}

	x := mat.NewDense(n, dim, nil)
	y := make([]int, n)
	for i := range n {
		c := i % classes
		y[i] = c
		row := x.RawRowView(i)
		for j := range row {
			row[j] = centers[c][j] + r.rand.NormFloat64()*spread
		}
	}
	return x, y
}

// EuclideanNaive is a straightforward Euclidean distance between two rows.
func EuclideanNaive(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// CosineNaive is a straightforward cosine distance between two rows.
func CosineNaive(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	return 1 - dot/(math.Sqrt(na)*math.Sqrt(nb))
}

// NaiveDistances computes the distance matrix element by element with fn.
func NaiveDistances(x, y mat.Matrix, fn func(a, b []float64) float64) *mat.Dense {
	n, d := x.Dims()
	m, _ := y.Dims()

	xi := make([]float64, d)
	yj := make([]float64, d)
	out := mat.NewDense(n, m, nil)
	for i := range n {
		mat.Row(xi, i, x)
		for j := range m {
			mat.Row(yj, j, y)
			out.Set(i, j, fn(xi, yj))
		}
	}
	return out
}

// NaiveKNN returns, per row of dist, the column indices of the k smallest
// values by fully sorting the row. Ties keep column order.
func NaiveKNN(dist mat.Matrix, k int) [][]int {
	n, m := dist.Dims()
	out := make([][]int, n)
	for i := range n {
		idx := make([]int, m)
		for j := range idx {
			idx[j] = j
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return dist.At(i, idx[a]) < dist.At(i, idx[b])
		})
		out[i] = idx[:k]
	}
	return out
}

// Subset returns the rows of x listed in idx as a new dense matrix.
func Subset(x mat.Matrix, idx []int) *mat.Dense {
	_, d := x.Dims()
	out := mat.NewDense(len(idx), d, nil)
	for i, r := range idx {
		mat.Row(out.RawRowView(i), r, x)
	}
	return out
}
