// Package neighbors finds the k nearest reference rows for batches of query rows.
//
// The query contract is the Searcher interface. Four implementations are
// provided:
//
//   - MatrixSearcher: dense distance matrix + SelectK (any metric)
//   - BruteSearcher: per-row exact scan with a bounded heap
//   - KDTreeSearcher: gonum k-d tree (Euclidean)
//   - BallTreeSearcher: gonum vantage-point tree (Euclidean)
//
// BatchQuery drives any Searcher over large query sets in bounded blocks so
// that the working set stays at O(blockSize × reference rows).
//
//	s, _ := neighbors.NewMatrixSearcher(train, distance.Euclidean)
//	res, _ := neighbors.BatchQuery(s, test, 5, 1000, true)
//	res.Indices[i][j]      // reference row at rank j for query i
//	res.Distances.At(i, j) // its distance, ascending in j
package neighbors
