package algo

import (
	"fmt"
	"time"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

// Method selects the evaluation function: satisficing best-first (f=h) or
// optimal A* (f=g+h).
type Method int

const (
	BestFirst Method = iota
	AStar
)

// ParseMethod accepts the CLI's two method names.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "best":
		return BestFirst, nil
	case "astar":
		return AStar, nil
	default:
		return 0, fmt.Errorf("unknown method %q (want \"best\" or \"astar\")", name)
	}
}

func (m Method) String() string {
	if m == AStar {
		return "astar"
	}
	return "best"
}

// Stats accumulates search-run counters, supplementing the reference
// implementation's stdout-only heap stats with a structured report that
// can be emitted alongside a solution or timeout.
type Stats struct {
	Inserts   int
	Extracts  int
	Generated int
	Expanded  int
	Deduped   int
}

// Result is a found plan plus the bookkeeping the writer and stats sidecar
// need.
type Result struct {
	Plan           []*SearchNode
	TotalEnergy    int
	TotalRecharges int
	Length         int
	Stats          Stats
}

// ErrNoSolution is returned when the frontier empties without reaching a
// goal state.
type ErrNoSolution struct {
	Stats Stats
}

func (e *ErrNoSolution) Error() string { return "no solution found" }

// ErrTimeout is returned when the wall-clock budget expires during
// expansion.
type ErrTimeout struct {
	Stats Stats
}

func (e *ErrTimeout) Error() string { return "search timed out" }

// timeoutCheckInterval mirrors the reference implementation's "check every
// ~1000 generated nodes" cadence: frequent enough to bound overrun,
// infrequent enough that time.Now() doesn't dominate the loop.
const timeoutCheckInterval = 1000

// Search runs the main loop: extract-min, goal test, expand, insert.
// Children are deduplicated against the closed set before being pushed;
// a duplicate is silently discarded. The default timeout, config.Default's
// 600s, is the domain's static cap; a config file may override it.
func Search(initial *core.State, goal *core.Goal, method Method, timeout time.Duration) (*Result, error) {
	dt := Precompute(initial)
	frontier := NewFrontier()
	closed := NewClosedSet()
	var stats Stats

	root := &SearchNode{State: initial, Depth: 0, G: 0}
	root.H = Heuristic(initial, goal, dt)
	root.F = evalF(method, root)
	closed.Insert(initial)
	frontier.Push(root)
	stats.Inserts++

	deadline := time.Now().Add(timeout)
	generatedSinceCheck := 0

	for !frontier.Empty() {
		node := frontier.Pop()
		stats.Extracts++

		if node.State.IsGoal(goal) {
			return &Result{
				Plan:           ExtractPlan(node),
				TotalEnergy:    node.G,
				TotalRecharges: node.State.Recharges,
				Length:         node.Depth,
				Stats:          stats,
			}, nil
		}

		stats.Expanded++
		for _, a := range GenerateActions(node.State, goal) {
			next, cost, ok := core.Apply(node.State, goal, a)
			if !ok {
				continue
			}
			stats.Generated++
			generatedSinceCheck++

			if !closed.Insert(next) {
				stats.Deduped++
				continue
			}

			child := &SearchNode{
				State:  next,
				Parent: node,
				Action: a,
				Depth:  node.Depth + 1,
				G:      node.G + cost,
			}
			child.H = Heuristic(next, goal, dt)
			child.F = evalF(method, child)
			frontier.Push(child)
			stats.Inserts++
		}

		if generatedSinceCheck >= timeoutCheckInterval {
			generatedSinceCheck = 0
			if time.Now().After(deadline) {
				return nil, &ErrTimeout{Stats: stats}
			}
		}
	}

	return nil, &ErrNoSolution{Stats: stats}
}

func evalF(method Method, n *SearchNode) int {
	if method == AStar {
		return n.G + n.H
	}
	return n.H
}

// Solver is the driver interface: a named strategy over (initial, goal).
type Solver interface {
	Solve(initial *core.State, goal *core.Goal) (*Result, error)
	Name() string
}

type timedSolver struct {
	method  Method
	timeout time.Duration
}

func (s *timedSolver) Solve(initial *core.State, goal *core.Goal) (*Result, error) {
	return Search(initial, goal, s.method, s.timeout)
}

func (s *timedSolver) Name() string { return s.method.String() }

// NewSolver returns a Solver for method, budgeted to timeout.
func NewSolver(method Method, timeout time.Duration) Solver {
	return &timedSolver{method: method, timeout: timeout}
}
