package knn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFold(t *testing.T) {
	folds, err := KFold(5, 2)
	require.NoError(t, err)
	require.Len(t, folds, 2)

	assert.Equal(t, []int{0, 1, 2}, folds[0].Test)
	assert.Equal(t, []int{3, 4}, folds[0].Train)
	assert.Equal(t, []int{3, 4}, folds[1].Test)
	assert.Equal(t, []int{0, 1, 2}, folds[1].Train)
}

func TestKFoldPartition(t *testing.T) {
	for _, tc := range []struct{ n, folds int }{
		{10, 3}, {10, 10}, {7, 1}, {100, 7}, {13, 5},
	} {
		folds, err := KFold(tc.n, tc.folds)
		require.NoError(t, err)
		require.Len(t, folds, tc.folds)

		next := 0
		for f, fold := range folds {
			want := tc.n / tc.folds
			if f < tc.n%tc.folds {
				want++
			}
			assert.Len(t, fold.Test, want)
			assert.Len(t, fold.Train, tc.n-want)

			for _, i := range fold.Test {
				assert.Equal(t, next, i, "test blocks are contiguous and in order")
				next++
			}

			if tc.folds > 1 {
				assert.NoError(t, fold.Validate(tc.n))
			}
		}
		assert.Equal(t, tc.n, next)
	}
}

func TestKFoldInvalid(t *testing.T) {
	for _, tc := range []struct{ n, folds int }{
		{5, 0}, {5, 6}, {0, 1}, {5, -1},
	} {
		_, err := KFold(tc.n, tc.folds)
		assert.ErrorIs(t, err, ErrPrecondition, "n=%d folds=%d", tc.n, tc.folds)
	}
}

func TestFoldValidate(t *testing.T) {
	cases := map[string]Fold{
		"EmptyTest":   {Train: []int{0, 1, 2}},
		"EmptyTrain":  {Test: []int{0, 1, 2}},
		"Overlap":     {Train: []int{0, 1}, Test: []int{1, 2}},
		"Incomplete":  {Train: []int{0}, Test: []int{2}},
		"OutOfRange":  {Train: []int{0, 1}, Test: []int{3}},
		"Negative":    {Train: []int{0, 1, 2}, Test: []int{-1}},
		"Duplicate":   {Train: []int{0, 0, 1}, Test: []int{2}},
	}

	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, f.Validate(3), ErrPrecondition)
		})
	}

	assert.NoError(t, Fold{Train: []int{2, 0}, Test: []int{1}}.Validate(3))
}
