// Package knn provides a k-nearest-neighbor classifier and a cross-validation
// scorer that evaluates many candidate k values for the cost of one neighbor
// search per fold.
//
// # Quick Start
//
//	p := knn.DefaultParams()
//	p.K = 3
//	p.Weighted = true
//
//	clf, _ := knn.New[int](p)
//	clf.Fit(x, y)                   // x is a gonum mat.Matrix, y one label per row
//	labels, _ := clf.Predict(q, nil)
//
// # Strategies
//
// The reference set is searched by one of four exact backends:
//
//	knn.StrategyNative   // full distance matrix per query block, partial sort ("native", "my_own")
//	knn.StrategyBrute    // per-row scan with a bounded heap ("brute")
//	knn.StrategyKDTree   // gonum kd-tree ("kd_tree")
//	knn.StrategyBallTree // gonum vantage-point tree ("ball_tree")
//
// Only the native strategy supports the cosine metric. All strategies agree on
// the neighbor set up to the order of equidistant points.
//
// # Voting
//
// Each of the k neighbors votes for its label with weight 1, or 1/(d+Eps) when
// Params.Weighted is set. The label with the largest total wins; ties go to
// the smallest label.
//
// # Cross-Validation
//
//	folds, _ := knn.KFold(len(y), 5)
//	table, _ := knn.CrossValScore(x, y, []int{1, 3, 5, 7}, knn.Accuracy, folds, p)
//	k, mean, _ := table.Best()
//
// # Configuration
//
// Params can be loaded from YAML with LoadParams or from the environment with
// ParamsFromEnv:
//
//	KNN_K=7 KNN_STRATEGY=kd_tree KNN_WEIGHTED=true
//
// # Observability
//
//	clf, _ := knn.New[int](p,
//	    knn.WithLogger(knn.NewJSONLogger(slog.LevelDebug)),
//	    knn.WithMetricsCollector(prom.NewCollector(prometheus.DefaultRegisterer, "knn")),
//	)
package knn
