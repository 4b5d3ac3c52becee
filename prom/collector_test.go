package prom

import (
	"errors"
	"testing"
	"time"

	"github.com/hupe1980/knn"
	"github.com/hupe1980/knn/testutil"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "knn")

	c.RecordFit(10, time.Millisecond, nil)
	c.RecordFit(0, time.Millisecond, errors.New("boom"))
	c.RecordSearch(3, 4, time.Millisecond, nil)
	c.RecordPredict(4, time.Millisecond, nil)
	c.RecordFold(0, time.Millisecond, nil)
	c.RecordFold(1, time.Millisecond, nil)

	assert.Equal(t, 1.0, promtest.ToFloat64(c.FitTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, promtest.ToFloat64(c.FitTotal.WithLabelValues("error")))
	assert.Equal(t, 10.0, promtest.ToFloat64(c.FitRows))
	assert.Equal(t, 4.0, promtest.ToFloat64(c.SearchQueries))
	assert.Equal(t, 4.0, promtest.ToFloat64(c.PredictQueries))
	assert.Equal(t, 2.0, promtest.ToFloat64(c.FoldTotal.WithLabelValues("ok")))
	assert.Equal(t, 2, promtest.CollectAndCount(c.FoldDuration))
}

func TestCollectorDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg, "knn")

	assert.Panics(t, func() { NewCollector(reg, "knn") })
	assert.NotPanics(t, func() { NewCollector(reg, "other") })
}

func TestCollectorWithClassifier(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "knn")

	rng := testutil.NewRNG(3)
	x, y := rng.Blobs(60, 4, 3, 0.1)

	p := knn.DefaultParams()
	p.K = 3
	folds, err := knn.KFold(len(y), 3)
	require.NoError(t, err)

	_, err = knn.CrossValScore(x, y, []int{1, 3}, knn.Accuracy, folds, p, knn.WithMetricsCollector(c))
	require.NoError(t, err)

	assert.Equal(t, 3.0, promtest.ToFloat64(c.FitTotal.WithLabelValues("ok")))
	assert.Equal(t, 3.0, promtest.ToFloat64(c.SearchTotal.WithLabelValues("ok")))
	assert.Equal(t, 60.0, promtest.ToFloat64(c.SearchQueries))
	assert.Equal(t, 3.0, promtest.ToFloat64(c.FoldTotal.WithLabelValues("ok")))
}
