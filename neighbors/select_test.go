package neighbors

import (
	"testing"

	"github.com/hupe1980/knn/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSelectK(t *testing.T) {
	d := mat.NewDense(2, 5, []float64{
		4, 0.5, 3, 0.1, 9,
		1, 1, 7, 0, 2,
	})

	res, err := SelectK(d, 3, true)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Len())
	assert.Equal(t, 3, res.K())
	assert.Equal(t, []int{3, 1, 2}, res.Indices[0])
	assert.Equal(t, []float64{0.1, 0.5, 3}, res.Distances.RawRowView(0))
	assert.Equal(t, []int{3, 0, 1}, res.Indices[1])
	assert.Equal(t, []float64{0, 1, 1}, res.Distances.RawRowView(1))
}

func TestSelectKProperties(t *testing.T) {
	rng := testutil.NewRNG(21)
	d := rng.UniformMatrix(40, 60)

	for _, k := range []int{1, 5, 17, 60} {
		res, err := SelectK(d, k, true)
		require.NoError(t, err)

		want := testutil.NaiveKNN(d, k)
		for i := range 40 {
			row := res.Distances.RawRowView(i)
			seen := make(map[int]bool, k)
			for j, c := range res.Indices[i] {
				assert.GreaterOrEqual(t, c, 0)
				assert.Less(t, c, 60)
				assert.False(t, seen[c], "duplicate index %d in row %d", c, i)
				seen[c] = true

				assert.Equal(t, d.At(i, c), row[j])
				if j > 0 {
					assert.LessOrEqual(t, row[j-1], row[j])
				}
				assert.Equal(t, d.At(i, want[i][j]), row[j])
			}
		}
	}
}

func TestSelectKTiesByColumn(t *testing.T) {
	d := mat.NewDense(2, 6, []float64{
		2, 1, 2, 1, 2, 1,
		5, 5, 5, 5, 5, 5,
	})

	for _, k := range []int{1, 2, 4, 6} {
		res, err := SelectK(d, k, false)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 5, 0, 2, 4}[:k], res.Indices[0], "k=%d", k)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5}[:k], res.Indices[1], "k=%d", k)
	}
}

func TestSelectKWithoutDistance(t *testing.T) {
	d := mat.NewDense(1, 3, []float64{3, 2, 1})
	res, err := SelectK(d, 2, false)
	require.NoError(t, err)
	assert.False(t, res.HasDistances())
	assert.Equal(t, [][]int{{2, 1}}, res.Indices)
}

func TestSelectKInvalid(t *testing.T) {
	d := mat.NewDense(1, 3, nil)

	_, err := SelectK(d, 0, true)
	assert.ErrorIs(t, err, ErrInvalidK)

	_, err = SelectK(d, 4, true)
	var ke *KExceedsError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, 4, ke.K)
	assert.Equal(t, 3, ke.Available)
}
