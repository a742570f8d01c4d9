// Package algo implements the Rover heuristic best-first / A* search
// engine: the priority frontier, closed set, shortest-path oracle,
// heuristic estimator, successor generator, and search driver.
package algo

import "github.com/elektrokombinacija/roverplan/internal/core"

// SearchNode owns a state and its position in the search tree. Parent is a
// weak back-reference; the root has none. Nodes are never freed during
// search, so parent chains stay valid until plan extraction.
type SearchNode struct {
	State  *core.State
	Parent *SearchNode
	Action core.Action // action that produced this node from Parent
	Depth  int
	G      int // cumulative energy cost from root
	H      int
	F      int

	seq   int64 // insertion order, for FIFO tie-break
	index int   // heap index, maintained by container/heap
}

// ExtractPlan walks the parent chain from a goal node back to the root and
// returns the nodes on it, root excluded, in execution order; each node's
// Action is one plan step.
func ExtractPlan(goal *SearchNode) []*SearchNode {
	var chain []*SearchNode
	for n := goal; n.Parent != nil; n = n.Parent {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}
