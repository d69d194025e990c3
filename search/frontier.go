package search

import "cmp"

// entry is one frontier record. cost is the accumulated cost at push time;
// the entry is stale once a cheaper cost for node has been recorded.
type entry[N cmp.Ordered] struct {
	priority float64
	cost     float64
	node     N
}

// frontier is a min-heap of entries ordered by (priority, node).
// Superseded entries are left in place and skipped when popped.
type frontier[N cmp.Ordered] []entry[N]

// Len returns the number of entries in the heap.
func (f frontier[N]) Len() int { return len(f) }

// Less orders by priority, then by node identifier.
func (f frontier[N]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return cmp.Less(f[i].node, f[j].node)
}

// Swap swaps two entries.
func (f frontier[N]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier[N]) Push(x any) { *f = append(*f, x.(entry[N])) }

// Pop removes the last entry; called by heap.Pop.
func (f *frontier[N]) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
