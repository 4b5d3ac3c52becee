package neighbors

import (
	"cmp"

	"github.com/viterin/partial"
	"gonum.org/v1/gonum/mat"
)

// SelectK returns the k smallest entries of every row of d, ascending, with
// their column indices.
//
// Each row is partially sorted: a selection pass places the k smallest
// columns first, and only those k are then ordered. Equal distances are
// ordered by ascending column.
func SelectK(d *mat.Dense, k int, withDistance bool) (*Result, error) {
	n, m := d.Dims()
	if err := checkK(k, m); err != nil {
		return nil, err
	}

	res := newResult(n, k, withDistance)
	order := make([]int, m)

	for i := range n {
		row := d.RawRowView(i)
		for j := range order {
			order[j] = j
		}
		partial.SortFunc(order, k, func(a, b int) int {
			return cmp.Or(cmp.Compare(row[a], row[b]), cmp.Compare(a, b))
		})

		idx := res.Indices[i]
		copy(idx, order[:k])

		if res.Distances != nil {
			out := res.Distances.RawRowView(i)
			for j, c := range idx {
				out[j] = row[c]
			}
		}
	}

	return res, nil
}
