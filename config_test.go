package knn

import (
	"strings"
	"testing"

	"github.com/hupe1980/knn/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())
	assert.Equal(t, DefaultK, p.K)
	assert.Equal(t, StrategyNative, p.Strategy)
	assert.Equal(t, distance.Euclidean, p.Metric)
	assert.False(t, p.Weighted)
	assert.Equal(t, DefaultBlockSize, p.BlockSize)
}

func TestLoadParams(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		p, err := LoadParams(strings.NewReader(`
k: 7
strategy: kd_tree
metric: euclidean
weighted: true
block_size: 500
`))
		require.NoError(t, err)
		assert.Equal(t, Params{K: 7, Strategy: StrategyKDTree, Metric: distance.Euclidean, Weighted: true, BlockSize: 500}, p)
	})

	t.Run("PartialKeepsDefaults", func(t *testing.T) {
		p, err := LoadParams(strings.NewReader("strategy: my_own\nmetric: cosine\n"))
		require.NoError(t, err)
		assert.Equal(t, StrategyNative, p.Strategy)
		assert.Equal(t, distance.Cosine, p.Metric)
		assert.Equal(t, DefaultK, p.K)
	})

	t.Run("Empty", func(t *testing.T) {
		p, err := LoadParams(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultParams(), p)
	})

	t.Run("Invalid", func(t *testing.T) {
		for name, doc := range map[string]string{
			"UnknownKey":      "neighbours: 3\n",
			"UnknownStrategy": "strategy: lsh\n",
			"UnknownMetric":   "metric: manhattan\n",
			"ZeroK":           "k: 0\n",
			"CosineTree":      "strategy: ball_tree\nmetric: cosine\n",
		} {
			_, err := LoadParams(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrConfiguration, name)
		}
	})
}

func TestParamsFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p, err := ParamsFromEnv("KNNTEST_UNSET")
		require.NoError(t, err)
		assert.Equal(t, DefaultParams(), p)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("KNNTEST_K", "9")
		t.Setenv("KNNTEST_STRATEGY", "ball_tree")
		t.Setenv("KNNTEST_WEIGHTED", "true")
		t.Setenv("KNNTEST_BLOCK_SIZE", "64")

		p, err := ParamsFromEnv("KNNTEST")
		require.NoError(t, err)
		assert.Equal(t, Params{K: 9, Strategy: StrategyBallTree, Metric: distance.Euclidean, Weighted: true, BlockSize: 64}, p)
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("KNNTEST_STRATEGY", "annoy")
		_, err := ParamsFromEnv("KNNTEST")
		assert.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("NotANumber", func(t *testing.T) {
		t.Setenv("KNNTEST_K", "many")
		_, err := ParamsFromEnv("KNNTEST")
		assert.ErrorIs(t, err, ErrConfiguration)
	})
}

func TestStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{
		"native":    StrategyNative,
		"my_own":    StrategyNative,
		"brute":     StrategyBrute,
		"KD_TREE":   StrategyKDTree,
		"ball_tree": StrategyBallTree,
	} {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseStrategy("hnsw")
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)

	assert.Equal(t, "kd_tree", StrategyKDTree.String())
	assert.Equal(t, "Unknown(9)", Strategy(9).String())
	assert.False(t, Strategy(9).IsValid())

	text, err := StrategyBallTree.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ball_tree", string(text))

	_, err = Strategy(9).MarshalText()
	assert.Error(t, err)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))
	assert.ErrorIs(t, translateError(distance.ErrUnsupportedMetric), ErrConfiguration)
	assert.ErrorIs(t, translateError(ErrUnsupportedStrategy), ErrConfiguration)
	assert.ErrorIs(t, translateError(assert.AnError), ErrPrecondition)
	assert.ErrorIs(t, translateError(assert.AnError), assert.AnError)
}
