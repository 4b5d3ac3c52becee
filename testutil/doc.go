// Package testutil provides testing utilities for knn.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random labeled datasets and naive
// reference implementations used to cross-check the optimized code paths.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	x := rng.UniformMatrix(100, 8)           // uniform [0, 1)
//	x, y := rng.Blobs(300, 4, 3, 0.5)        // 3 labeled gaussian clusters
//
// # Reference Implementations
//
//	d := testutil.NaiveDistances(x, y, testutil.EuclideanNaive)
//	idx := testutil.NaiveKNN(d, k)
package testutil
