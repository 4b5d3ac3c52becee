package searcher

// Item is a reference row and its distance to the current query.
type Item struct {
	Index    int
	Distance float64
}

// MaxQueue is a binary max-heap of Items keyed by (distance, index).
// Bounded to a capacity it retains the k smallest keys seen so far,
// with the worst of them at the top.
//
// It does NOT implement container/heap to avoid interface overhead.
// MaxQueue is not safe for concurrent use.
type MaxQueue struct {
	items    []Item
	capacity int
}

// NewMaxQueue creates a queue retaining at most capacity items.
func NewMaxQueue(capacity int) *MaxQueue {
	return &MaxQueue{
		items:    make([]Item, 0, capacity),
		capacity: capacity,
	}
}

// Reset clears the queue for reuse.
func (q *MaxQueue) Reset() {
	q.items = q.items[:0]
}

// Len returns the number of elements in the heap.
func (q *MaxQueue) Len() int {
	return len(q.items)
}

// Top returns the item with the largest distance.
func (q *MaxQueue) Top() (Item, bool) {
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0], true
}

// Push offers an item to the queue.
// If the queue is full and the item does not rank before the top, it is skipped.
// If the queue is full and the item is closer, the top is replaced.
func (q *MaxQueue) Push(item Item) {
	if len(q.items) < q.capacity {
		q.items = append(q.items, item)
		q.siftUp(len(q.items) - 1)
		return
	}
	if q.capacity == 0 || !worse(q.items[0], item) {
		return
	}
	q.items[0] = item
	q.siftDown(0)
}

// Pop removes and returns the item with the largest distance.
func (q *MaxQueue) Pop() (Item, bool) {
	n := len(q.items)
	if n == 0 {
		return Item{}, false
	}

	item := q.items[0]
	q.items[0] = q.items[n-1]
	q.items = q.items[:n-1]

	if len(q.items) > 0 {
		q.siftDown(0)
	}

	return item, true
}

// DrainAscending empties the queue into idx and dist ordered by ascending
// distance, equal distances by ascending index. Both slices must have length Len().
func (q *MaxQueue) DrainAscending(idx []int, dist []float64) {
	for i := len(q.items) - 1; i >= 0; i-- {
		item, _ := q.Pop()
		idx[i] = item.Index
		if dist != nil {
			dist[i] = item.Distance
		}
	}
}

func (q *MaxQueue) less(i, j int) bool {
	return worse(q.items[i], q.items[j])
}

// worse reports whether a ranks after b.
func worse(a, b Item) bool {
	if a.Distance != b.Distance {
		return a.Distance > b.Distance
	}
	return a.Index > b.Index
}

func (q *MaxQueue) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

// siftUp moves the element at index i up the heap until the heap invariant is restored.
func (q *MaxQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(i, parent) {
			break
		}
		q.swap(i, parent)
		i = parent
	}
}

// siftDown moves the element at index i down the heap until the heap invariant is restored.
func (q *MaxQueue) siftDown(i int) {
	n := len(q.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && q.less(right, left) {
			child = right
		}
		if !q.less(child, i) {
			break
		}
		q.swap(i, child)
		i = child
	}
}
