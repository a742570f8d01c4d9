package algo

import "container/heap"

// Frontier is a binary min-heap keyed by evaluation value F, with a FIFO
// tie-break on equal F so repeated runs over the same problem are
// reproducible. Grounded on the teacher's heap.Interface pattern
// (astarHeap): a slice-backed container/heap with an index field kept in
// sync by Swap.
type Frontier struct {
	nodes frontierHeap
	next  int64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.nodes)
	return f
}

// Push inserts a node, assigning it the next FIFO sequence number.
func (f *Frontier) Push(n *SearchNode) {
	n.seq = f.next
	f.next++
	heap.Push(&f.nodes, n)
}

// Pop removes and returns the node with the smallest F (ties broken by
// insertion order). Panics if the frontier is empty; callers must check
// Empty first.
func (f *Frontier) Pop() *SearchNode {
	return heap.Pop(&f.nodes).(*SearchNode)
}

// Empty reports whether the frontier has no nodes.
func (f *Frontier) Empty() bool {
	return f.nodes.Len() == 0
}

// Len returns the number of nodes currently queued.
func (f *Frontier) Len() int {
	return f.nodes.Len()
}

type frontierHeap []*SearchNode

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].F != h[j].F {
		return h[i].F < h[j].F
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x any) {
	n := x.(*SearchNode)
	n.index = len(*h)
	*h = append(*h, n)
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}
