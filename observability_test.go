package knn

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestBasicMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	x, y := lineData()

	p := DefaultParams()
	p.K = 2
	c, err := New[int](p, WithMetricsCollector(metrics))
	require.NoError(t, err)

	_, err = c.Fit(x, y[:2])
	require.Error(t, err)
	_, err = c.Fit(x, y)
	require.NoError(t, err)

	_, err = c.Predict(mat.NewDense(3, 1, []float64{0, 5, 9}), nil)
	require.NoError(t, err)
	_, err = c.Predict(mat.NewDense(1, 2, nil), nil)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.FitCount)
	assert.Equal(t, int64(1), stats.FitErrors)
	assert.Equal(t, int64(4), stats.FitRows)
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, int64(3), stats.SearchQueries)
	assert.Equal(t, int64(2), stats.PredictCount)
	assert.Equal(t, int64(1), stats.PredictErrors)
	assert.Equal(t, int64(3), stats.PredictQueries)
	assert.Zero(t, stats.FoldCount)
}

func TestBasicMetricsCollectorFolds(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	x, y := lineData()
	folds := []Fold{
		{Train: []int{0, 3}, Test: []int{1, 2}},
		{Train: []int{1, 2}, Test: []int{0, 3}},
	}

	_, err := CrossValScore(x, y, []int{1}, Accuracy, folds, DefaultParams(), WithMetricsCollector(metrics))
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.FoldCount)
	assert.Zero(t, stats.FoldErrors)
	assert.Equal(t, int64(2), stats.FitCount)
	assert.Equal(t, int64(2), stats.SearchCount)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	x, y := lineData()
	p := DefaultParams()
	p.K = 1
	p.Strategy = StrategyKDTree
	c, err := New[int](p, WithLogger(logger))
	require.NoError(t, err)

	_, err = c.Fit(x, y)
	require.NoError(t, err)
	_, err = c.Predict(mat.NewDense(1, 2, nil), nil)
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var fit map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &fit))
	assert.Equal(t, "fit completed", fit["msg"])
	assert.Equal(t, "DEBUG", fit["level"])
	assert.Equal(t, "kd_tree", fit["strategy"])
	assert.EqualValues(t, 1, fit["k"])
	assert.EqualValues(t, 4, fit["rows"])
	assert.EqualValues(t, 2, fit["classes"])

	var search map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &search))
	assert.Equal(t, "search failed", search["msg"])
	assert.Equal(t, "ERROR", search["level"])

	var predict map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &predict))
	assert.Equal(t, "predict failed", predict["msg"])
}

func TestNoopDefaults(t *testing.T) {
	o := applyOptions([]Option{nil, WithLogger(nil), WithMetricsCollector(nil)})
	assert.IsType(t, NoopMetricsCollector{}, o.metricsCollector)
	require.NotNil(t, o.logger)
	assert.False(t, o.logger.Enabled(t.Context(), slog.LevelError))
}
