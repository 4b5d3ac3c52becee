package knn

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/knn/neighbors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Classifier is a k-nearest-neighbor classifier with optional distance
// weighted voting.
//
// A Classifier starts unfitted. Fit stores the training set as the reference
// set (building a tree index for the tree strategies) and may be called again
// to replace it. A Classifier is not safe for concurrent use.
type Classifier[L cmp.Ordered] struct {
	params Params
	opts   options
	logger *Logger

	searcher neighbors.Searcher
	classes  []L
	codes    []int
}

// New validates p and returns an unfitted classifier.
// Invalid parameters yield an error wrapping ErrConfiguration.
func New[L cmp.Ordered](p Params, optFns ...Option) (*Classifier[L], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)

	return &Classifier[L]{
		params: p,
		opts:   o,
		logger: o.logger.WithK(p.K).WithStrategy(p.Strategy),
	}, nil
}

// Params returns the parameters the classifier was built with.
func (c *Classifier[L]) Params() Params {
	return c.params
}

// IsFitted reports whether Fit has completed successfully.
func (c *Classifier[L]) IsFitted() bool {
	return c.searcher != nil
}

// Classes returns the sorted distinct training labels.
func (c *Classifier[L]) Classes() []L {
	return slices.Clone(c.classes)
}

// Fit uses x and y as the reference set for future queries.
//
// x is retained, not copied, and must not be mutated while the classifier is
// in use. A failed Fit leaves the previous state untouched.
func (c *Classifier[L]) Fit(x mat.Matrix, y []L) (*Classifier[L], error) {
	start := time.Now()
	err := c.fit(x, y)
	c.opts.metricsCollector.RecordFit(len(y), time.Since(start), err)
	c.logger.LogFit(len(y), len(c.classes), err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Classifier[L]) fit(x mat.Matrix, y []L) error {
	if x == nil {
		return fmt.Errorf("%w: nil training matrix", ErrPrecondition)
	}
	rows, _ := x.Dims()
	if rows != len(y) {
		return &ErrDimensionMismatch{Expected: rows, Actual: len(y)}
	}
	if rows == 0 {
		return fmt.Errorf("%w: empty training set", ErrPrecondition)
	}

	s, err := newSearcher(c.params, x)
	if err != nil {
		return translateError(err)
	}

	c.classes, c.codes = encodeLabels(y)
	c.searcher = s
	return nil
}

func newSearcher(p Params, x mat.Matrix) (neighbors.Searcher, error) {
	switch p.Strategy {
	case StrategyNative:
		return neighbors.NewMatrixSearcher(x, p.Metric)
	case StrategyBrute:
		return neighbors.NewBruteSearcher(x, p.Metric)
	case StrategyKDTree:
		return neighbors.NewKDTreeSearcher(x), nil
	case StrategyBallTree:
		return neighbors.NewBallTreeSearcher(x)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, p.Strategy)
	}
}

// FindKNeighbors returns the K nearest training rows of every row of x, in
// the row order of x. Distances are omitted unless returnDistance is set.
func (c *Classifier[L]) FindKNeighbors(x mat.Matrix, returnDistance bool) (*neighbors.Result, error) {
	if !c.IsFitted() {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, fmt.Errorf("%w: nil query matrix", ErrPrecondition)
	}

	start := time.Now()
	res, err := neighbors.BatchQuery(c.searcher, x, c.params.K, c.params.BlockSize, returnDistance)
	err = translateError(err)

	rows, _ := x.Dims()
	c.opts.metricsCollector.RecordSearch(c.params.K, rows, time.Since(start), err)
	c.logger.LogSearch(rows, c.params.BlockSize, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

// Predict returns one label per query row.
//
// When pre is non-nil its neighbors are reused instead of searching x again;
// x may then be nil. Weighted classifiers need pre to carry distances and
// search x afresh otherwise.
func (c *Classifier[L]) Predict(x mat.Matrix, pre *neighbors.Result) ([]L, error) {
	start := time.Now()
	out, reused, err := c.predict(x, pre)
	c.opts.metricsCollector.RecordPredict(len(out), time.Since(start), err)
	c.logger.LogPredict(len(out), reused, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Classifier[L]) predict(x mat.Matrix, pre *neighbors.Result) ([]L, bool, error) {
	t, res, reused, err := c.vote(x, pre)
	if err != nil {
		return nil, false, err
	}

	out := make([]L, res.Len())
	predict(t, c.classes, out)
	return out, reused, nil
}

// PredictProba returns, per query row, the share of the total vote weight
// received by each class of Classes().
func (c *Classifier[L]) PredictProba(x mat.Matrix, pre *neighbors.Result) ([][]float64, error) {
	start := time.Now()
	t, res, reused, err := c.vote(x, pre)

	var out [][]float64
	if err == nil {
		out = make([][]float64, res.Len())
		for i := range out {
			row := slices.Clone(t.row(i))
			floats.Scale(1/floats.Sum(row), row)
			out[i] = row
		}
	}

	c.opts.metricsCollector.RecordPredict(len(out), time.Since(start), err)
	c.logger.LogPredict(len(out), reused, err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// vote tallies the K neighbors of every query row.
func (c *Classifier[L]) vote(x mat.Matrix, pre *neighbors.Result) (*tally, *neighbors.Result, bool, error) {
	if !c.IsFitted() {
		return nil, nil, false, ErrNotFitted
	}

	res, reused, err := c.neighborsFor(x, pre)
	if err != nil {
		return nil, nil, false, err
	}

	t := newTally(res.Len(), len(c.classes))
	t.add(res, c.codes, c.params.Weighted, 0, res.K())
	return t, res, reused, nil
}

func (c *Classifier[L]) neighborsFor(x mat.Matrix, pre *neighbors.Result) (*neighbors.Result, bool, error) {
	if pre != nil && (pre.HasDistances() || !c.params.Weighted) {
		if err := c.checkNeighbors(x, pre); err != nil {
			return nil, false, err
		}
		return pre, true, nil
	}

	if x == nil {
		return nil, false, fmt.Errorf("%w: no query rows and no usable precomputed neighbors", ErrPrecondition)
	}

	res, err := c.FindKNeighbors(x, c.params.Weighted)
	return res, false, err
}

// checkNeighbors validates precomputed neighbors against the reference set.
func (c *Classifier[L]) checkNeighbors(x mat.Matrix, pre *neighbors.Result) error {
	if x != nil {
		if rows, _ := x.Dims(); rows != pre.Len() {
			return &ErrDimensionMismatch{Expected: rows, Actual: pre.Len()}
		}
	}

	k := pre.K()
	if pre.HasDistances() {
		r, cols := pre.Distances.Dims()
		if r != pre.Len() || cols != k {
			return fmt.Errorf("%w: distances are %d×%d, indices are %d×%d", ErrPrecondition, r, cols, pre.Len(), k)
		}
	}

	for i, row := range pre.Indices {
		if len(row) != k {
			return &ErrDimensionMismatch{Expected: k, Actual: len(row)}
		}
		for _, idx := range row {
			if idx < 0 || idx >= len(c.codes) {
				return fmt.Errorf("%w: neighbor index %d of row %d outside [0, %d)", ErrPrecondition, idx, i, len(c.codes))
			}
		}
	}
	return nil
}
