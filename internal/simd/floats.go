package simd

import (
	"math"

	"github.com/viterin/vek"
)

var (
	dotImpl         = dotGeneric
	squaredL2Impl   = squaredL2Generic
	sqrtInPlaceImpl = sqrtInPlaceGeneric
)

func install(isa ISA) {
	switch isa {
	case AVX2:
		dotImpl = vek.Dot
		squaredL2Impl = squaredL2Vek
		sqrtInPlaceImpl = vek.Sqrt_Inplace
	default:
		dotImpl = dotGeneric
		squaredL2Impl = squaredL2Generic
		sqrtInPlaceImpl = sqrtInPlaceGeneric
	}
}

// Dot calculates the dot product of two vectors.
//
// Assumes len(a) == len(b).
func Dot(a, b []float64) float64 {
	return dotImpl(a, b)
}

// SquaredL2 calculates the squared L2 distance between two vectors.
//
// Assumes len(a) == len(b).
func SquaredL2(a, b []float64) float64 {
	return squaredL2Impl(a, b)
}

// SqrtInPlace replaces every element of x with its square root.
func SqrtInPlace(x []float64) {
	sqrtInPlaceImpl(x)
}

func dotGeneric(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

func squaredL2Generic(a, b []float64) float64 {
	var ret float64
	for i := range a {
		d := a[i] - b[i]
		ret += d * d
	}
	return ret
}

func squaredL2Vek(a, b []float64) float64 {
	d := vek.Distance(a, b)
	return d * d
}

func sqrtInPlaceGeneric(x []float64) {
	for i, v := range x {
		x[i] = math.Sqrt(v)
	}
}
