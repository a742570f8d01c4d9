package algo

import "github.com/elektrokombinacija/roverplan/internal/core"

// Unreachable is the sentinel "infinity" distance.
const Unreachable = 1 << 29

// DistanceTable holds, for each rover, the all-pairs minimum-energy travel
// cost over that rover's traversal+visibility graph.
type DistanceTable struct {
	dist [][][]int // [rover][from][to]
}

// Precompute builds the per-rover distance table via Floyd-Warshall. Edge
// u->v exists for rover r iff r.CanTraverse[u][v] and waypoint u sees v;
// every edge costs core.NavigateCost, the fixed energy price of navigate.
func Precompute(s *core.State) *DistanceTable {
	n := len(s.Waypoints)
	t := &DistanceTable{dist: make([][][]int, len(s.Rovers))}

	for ri, r := range s.Rovers {
		d := make([][]int, n)
		for i := range d {
			d[i] = make([]int, n)
			for j := range d[i] {
				if i == j {
					d[i][j] = 0
				} else {
					d[i][j] = Unreachable
				}
			}
		}
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if r.CanTraverse[u][v] && s.Waypoints[u].VisibleWaypoints[v] {
					d[u][v] = core.NavigateCost
				}
			}
		}
		for k := 0; k < n; k++ {
			for i := 0; i < n; i++ {
				if d[i][k] >= Unreachable {
					continue
				}
				for j := 0; j < n; j++ {
					if d[k][j] >= Unreachable {
						continue
					}
					if nd := d[i][k] + d[k][j]; nd < d[i][j] {
						d[i][j] = nd
					}
				}
			}
		}
		t.dist[ri] = d
	}
	return t
}

// Dist returns the shortest travel cost for rover from `from` to `to`, or
// Unreachable.
func (t *DistanceTable) Dist(rover, from, to int) int {
	return t.dist[rover][from][to]
}

// NearestCommPoint returns the reachable waypoint (possibly from itself)
// closest to from, by rover's travel cost, from which the lander is
// visible. Returns ok=false if no such waypoint is reachable.
func (t *DistanceTable) NearestCommPoint(s *core.State, rover, from int) (waypoint int, cost int, ok bool) {
	best := Unreachable
	bestW := -1
	landerPos := s.Lander.Position
	for w := range s.Waypoints {
		if !s.Waypoints[w].VisibleWaypoints[landerPos] {
			continue
		}
		d := t.dist[rover][from][w]
		if d < best {
			best = d
			bestW = w
		}
	}
	if bestW < 0 {
		return 0, 0, false
	}
	return bestW, best, true
}
