package knn

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// DefaultFolds is the number of folds CrossValScore uses when none are given.
const DefaultFolds = 3

// Fold is one train/test split of the row indices [0, n).
type Fold struct {
	Train []int
	Test  []int
}

// KFold partitions [0, n) into nFolds contiguous test blocks, in order and
// without shuffling. The first n%nFolds blocks hold one extra row. Each
// fold's Train set is the complement of its Test set, ascending.
func KFold(n, nFolds int) ([]Fold, error) {
	if nFolds < 1 || nFolds > n {
		return nil, fmt.Errorf("%w: %d folds for %d rows, want a count in [1, %d]", ErrPrecondition, nFolds, n, n)
	}

	all := roaring.New()
	all.AddRange(0, uint64(n))

	base, extra := n/nFolds, n%nFolds
	folds := make([]Fold, nFolds)

	start := 0
	for f := range folds {
		size := base
		if f < extra {
			size++
		}

		test := roaring.New()
		test.AddRange(uint64(start), uint64(start+size))

		folds[f] = Fold{
			Train: toInts(roaring.AndNot(all, test)),
			Test:  toInts(test),
		}
		start += size
	}

	return folds, nil
}

// Validate checks that f splits [0, n) into two non-empty disjoint sets
// without duplicates that together cover every row.
func (f Fold) Validate(n int) error {
	if len(f.Train) == 0 || len(f.Test) == 0 {
		return fmt.Errorf("%w: fold needs non-empty train and test sets", ErrPrecondition)
	}

	train, err := toBitmap(f.Train, n)
	if err != nil {
		return err
	}
	test, err := toBitmap(f.Test, n)
	if err != nil {
		return err
	}

	if train.Intersects(test) {
		return fmt.Errorf("%w: fold train and test sets overlap", ErrPrecondition)
	}
	if card := train.GetCardinality() + test.GetCardinality(); card != uint64(n) {
		return fmt.Errorf("%w: fold covers %d of %d rows", ErrPrecondition, card, n)
	}
	return nil
}

func toBitmap(idx []int, n int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: fold index %d outside [0, %d)", ErrPrecondition, i, n)
		}
		if !bm.CheckedAdd(uint32(i)) {
			return nil, fmt.Errorf("%w: fold index %d listed twice", ErrPrecondition, i)
		}
	}
	return bm, nil
}

func toInts(bm *roaring.Bitmap) []int {
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
