// Package distance provides pairwise distance matrices and row distance kernels.
//
// # Supported Metrics
//
//   - Euclidean: ‖x−y‖, computed from ‖x‖² + ‖y‖² − 2·x·y
//   - Cosine: 1 − (x·y)/(‖x‖·‖y‖), with values below CosineSnap set to 0
//
// Both metrics are undefined for zero vectors; callers must not pass them.
//
// # Usage
//
//	d, err := distance.Pairwise(x, y, distance.Euclidean) // N×M *mat.Dense
//	fn, _ := distance.Provider(distance.Cosine)
//	v := fn(a, b)
//
// Pairwise builds the whole N×M matrix from gonum matrix products and never
// materialises an N×M×D intermediate.
package distance
