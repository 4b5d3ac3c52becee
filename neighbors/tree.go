package neighbors

import (
	"math"
	"sort"
)

// neighbor is a candidate collected from a tree keeper.
type neighbor struct {
	index int
	dist  float64
}

// fill writes the k closest candidates into row i of res, ascending by
// distance with ties broken by reference index. sqrt converts squared
// distances reported by the tree.
func fill(res *Result, i int, cands []neighbor, sqrt bool) {
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return cands[a].index < cands[b].index
	})

	idx := res.Indices[i]
	var dist []float64
	if res.Distances != nil {
		dist = res.Distances.RawRowView(i)
	}
	for j := range idx {
		idx[j] = cands[j].index
		if dist != nil {
			d := cands[j].dist
			if sqrt {
				d = math.Sqrt(d)
			}
			dist[j] = d
		}
	}
}
