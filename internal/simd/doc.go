// Package simd provides float64 vector kernels used by the distance package.
//
// Kernels are dispatched once at package init. On x86-64 CPUs with AVX2 and FMA
// the accelerated implementations from github.com/viterin/vek are used; every
// other platform falls back to portable Go loops.
//
// The selection can be forced with the KNN_SIMD environment variable
// ("generic" or "avx2"). An override naming an unavailable ISA is ignored.
package simd
