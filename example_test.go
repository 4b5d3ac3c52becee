package knn_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/knn"
	"gonum.org/v1/gonum/mat"
)

// Example_classifier demonstrates distance-weighted prediction.
func Example_classifier() {
	x := mat.NewDense(4, 1, []float64{0, 1, 2, 10})
	y := []int{0, 0, 1, 1}

	p := knn.DefaultParams()
	p.K = 3
	p.Weighted = true

	clf, err := knn.New[int](p)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := clf.Fit(x, y); err != nil {
		log.Fatal(err)
	}

	labels, err := clf.Predict(mat.NewDense(2, 1, []float64{1.5, 9}), nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(labels)
	// Output: [0 1]
}

// Example_crossValScore demonstrates choosing k by cross-validation.
func Example_crossValScore() {
	x := mat.NewDense(6, 1, []float64{0, 10, 1, 11, 2, 12})
	y := []string{"low", "high", "low", "high", "low", "high"}

	folds, err := knn.KFold(len(y), 3)
	if err != nil {
		log.Fatal(err)
	}

	table, err := knn.CrossValScore(x, y, []int{3, 1}, knn.Accuracy, folds, knn.DefaultParams())
	if err != nil {
		log.Fatal(err)
	}

	for _, k := range table.Ks() {
		mean, _ := table.Mean(k)
		fmt.Printf("k=%d accuracy=%.2f\n", k, mean)
	}
	// Output:
	// k=1 accuracy=1.00
	// k=3 accuracy=1.00
}

// Example_loadParams demonstrates reading parameters from YAML.
func Example_loadParams() {
	p, err := knn.LoadParams(strings.NewReader(`
k: 7
strategy: ball_tree
weighted: true
`))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(p.K, p.Strategy, p.Metric, p.Weighted, p.BlockSize)
	// Output: 7 ball_tree euclidean true 1000
}
