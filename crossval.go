package knn

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/hupe1980/knn/neighbors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ScoreTable maps each candidate k to its per-fold scores, in fold order.
type ScoreTable map[int][]float64

// Ks returns the candidate ks in ascending order.
func (t ScoreTable) Ks() []int {
	return slices.Sorted(maps.Keys(t))
}

// Mean returns the mean score of k across folds.
func (t ScoreTable) Mean(k int) (float64, bool) {
	s, ok := t[k]
	if !ok || len(s) == 0 {
		return 0, false
	}
	return floats.Sum(s) / float64(len(s)), true
}

// Best returns the k with the highest mean score. Ties go to the smaller k.
// ok is false for an empty table.
func (t ScoreTable) Best() (k int, mean float64, ok bool) {
	for _, c := range t.Ks() {
		m, _ := t.Mean(c)
		if !ok || m > mean {
			k, mean, ok = c, m, true
		}
	}
	return k, mean, ok
}

// CrossValScore scores every k of kList on every fold.
//
// Each fold fits one classifier with p and K = max(kList), runs a single
// neighbor search for the fold's test rows, then sweeps kList upward adding
// only the votes of ranks [previous k, k) before scoring. Nil folds means
// KFold(n, DefaultFolds). An empty kList yields an empty table.
func CrossValScore[L cmp.Ordered](x mat.Matrix, y []L, kList []int, score Score, folds []Fold, p Params, optFns ...Option) (ScoreTable, error) {
	if !score.IsValid() {
		return nil, &ConfigError{Field: "score", Value: score.String(), Reason: ErrUnsupportedScore.Error()}
	}

	if x == nil {
		return nil, fmt.Errorf("%w: nil feature matrix", ErrPrecondition)
	}
	n, _ := x.Dims()
	if n != len(y) {
		return nil, &ErrDimensionMismatch{Expected: n, Actual: len(y)}
	}

	ks := slices.Clone(kList)
	slices.Sort(ks)
	ks = slices.Compact(ks)
	if len(ks) == 0 {
		return ScoreTable{}, nil
	}
	if ks[0] < 1 {
		return nil, fmt.Errorf("%w: candidate k=%d", ErrPrecondition, ks[0])
	}

	if folds == nil {
		var err error
		if folds, err = KFold(n, DefaultFolds); err != nil {
			return nil, err
		}
	}
	if len(folds) == 0 {
		return nil, fmt.Errorf("%w: no folds", ErrPrecondition)
	}
	for i, f := range folds {
		if err := f.Validate(n); err != nil {
			return nil, fmt.Errorf("fold %d: %w", i, err)
		}
	}

	p.K = ks[len(ks)-1]
	c, err := New[L](p, optFns...)
	if err != nil {
		return nil, err
	}

	xd := neighbors.AsDense(x)
	table := make(ScoreTable, len(ks))
	for _, k := range ks {
		table[k] = make([]float64, len(folds))
	}

	for i, f := range folds {
		start := time.Now()
		err := crossValFold(c, xd, y, f, ks, score, i, table)
		c.opts.metricsCollector.RecordFold(i, time.Since(start), err)
		c.logger.LogFold(i, len(f.Train), len(f.Test), err)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", i, err)
		}
	}

	c.logger.LogCrossValidation(len(folds), ks)
	return table, nil
}

func crossValFold[L cmp.Ordered](c *Classifier[L], x *mat.Dense, y []L, f Fold, ks []int, score Score, fold int, table ScoreTable) error {
	if _, err := c.Fit(selectRows(x, f.Train), selectLabels(y, f.Train)); err != nil {
		return err
	}

	res, err := c.FindKNeighbors(selectRows(x, f.Test), c.params.Weighted)
	if err != nil {
		return err
	}

	truth := selectLabels(y, f.Test)
	pred := make([]L, len(truth))
	t := newTally(res.Len(), len(c.classes))

	prev := 0
	for _, k := range ks {
		t.add(res, c.codes, c.params.Weighted, prev, k)
		predict(t, c.classes, pred)
		table[k][fold] = evaluate(score, truth, pred)
		prev = k
	}
	return nil
}
