package algo

import (
	"sort"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

// goalCost is a candidate (rover, relaxed cost) pair for one outstanding
// goal predicate.
type goalCost struct {
	cost  int
	rover int
}

// Heuristic estimates the remaining energy to satisfy goal from state. It
// never overestimates: each candidate cost ignores resource contention
// between rovers and assumes the cheapest single rover acts alone, the
// one-task-per-rover assignment picks at most one summand per rover, and
// the recharge addend counts only travel to sunlight, never the recharge
// cycle itself. This is "H4": relaxed per-goal cost, greedy one-task-per-
// rover assignment, recharge lower bound.
func Heuristic(s *core.State, g *core.Goal, dt *DistanceTable) int {
	if s.IsGoal(g) {
		return 0
	}

	var candidates []goalCost

	for w, want := range g.Soil {
		if !want || s.Waypoints[w].CommunicatedSoil {
			continue
		}
		for ri := range s.Rovers {
			if c, ok := soilCost(s, dt, ri, w); ok {
				candidates = append(candidates, goalCost{c, ri})
			}
		}
	}
	for w, want := range g.Rock {
		if !want || s.Waypoints[w].CommunicatedRock {
			continue
		}
		for ri := range s.Rovers {
			if c, ok := rockCost(s, dt, ri, w); ok {
				candidates = append(candidates, goalCost{c, ri})
			}
		}
	}
	for o, modes := range g.Image {
		for m, want := range modes {
			if !want || s.Objectives[o].CommunicatedImage[m] {
				continue
			}
			for ri := range s.Rovers {
				if c, ok := imageCost(s, dt, ri, o, m); ok {
					candidates = append(candidates, goalCost{c, ri})
				}
			}
		}
	}

	if len(candidates) == 0 {
		// Outstanding goals exist but no rover can reach any of them from
		// this state under the relaxation: a dead end, but the search
		// driver still owns the decision to prune it via the closed set
		// or exhaustion, not the heuristic.
		return Unreachable
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].cost > candidates[j].cost })

	assignedCost := make(map[int]int)
	used := make(map[int]bool)
	hTasks := 0
	for _, c := range candidates {
		if used[c.rover] {
			continue
		}
		used[c.rover] = true
		assignedCost[c.rover] = c.cost
		hTasks += c.cost
	}

	hEnergy := 0
	for ri, cost := range assignedCost {
		r := &s.Rovers[ri]
		if cost <= r.Energy {
			continue
		}
		best := Unreachable
		for w := range s.Waypoints {
			if !s.Waypoints[w].InSun {
				continue
			}
			if d := dt.Dist(ri, r.Position, w); d < best {
				best = d
			}
		}
		if best >= Unreachable {
			return Unreachable
		}
		hEnergy += best
	}

	h := hTasks + hEnergy
	if h < 0 {
		h = 0
	}
	return h
}

func soilCost(s *core.State, dt *DistanceTable, ri, w int) (int, bool) {
	r := &s.Rovers[ri]
	if r.HasSoilAnalysis[w] {
		_, d, ok := dt.NearestCommPoint(s, ri, r.Position)
		if !ok {
			return 0, false
		}
		return d + core.CommunicateSoilCost, true
	}
	if r.EquippedSoil && s.Waypoints[w].HasSoilSample {
		dToW := dt.Dist(ri, r.Position, w)
		if dToW >= Unreachable {
			return 0, false
		}
		_, dFromW, ok := dt.NearestCommPoint(s, ri, w)
		if !ok {
			return 0, false
		}
		return dToW + core.SampleSoilCost + dFromW + core.CommunicateSoilCost, true
	}
	return 0, false
}

func rockCost(s *core.State, dt *DistanceTable, ri, w int) (int, bool) {
	r := &s.Rovers[ri]
	if r.HasRockAnalysis[w] {
		_, d, ok := dt.NearestCommPoint(s, ri, r.Position)
		if !ok {
			return 0, false
		}
		return d + core.CommunicateRockCost, true
	}
	if r.EquippedRock && s.Waypoints[w].HasRockSample {
		dToW := dt.Dist(ri, r.Position, w)
		if dToW >= Unreachable {
			return 0, false
		}
		_, dFromW, ok := dt.NearestCommPoint(s, ri, w)
		if !ok {
			return 0, false
		}
		return dToW + core.SampleRockCost + dFromW + core.CommunicateRockCost, true
	}
	return 0, false
}

func imageCost(s *core.State, dt *DistanceTable, ri, o, m int) (int, bool) {
	r := &s.Rovers[ri]
	if r.HaveImage[o][m] {
		_, d, ok := dt.NearestCommPoint(s, ri, r.Position)
		if !ok {
			return 0, false
		}
		return d + core.CommunicateImageCost, true
	}
	if !r.EquippedImaging {
		return 0, false
	}
	hasCamera := false
	for _, c := range s.Cameras {
		if c.RoverID == ri && c.ModesSupported[m] {
			hasCamera = true
			break
		}
	}
	if !hasCamera {
		return 0, false
	}

	best := Unreachable
	for sw := range s.Waypoints {
		if !s.Objectives[o].VisibleWaypoints[sw] {
			continue
		}
		dTo := dt.Dist(ri, r.Position, sw)
		if dTo >= Unreachable {
			continue
		}
		_, dFrom, ok := dt.NearestCommPoint(s, ri, sw)
		if !ok {
			continue
		}
		total := dTo + core.CalibrateCost + core.TakeImageCost + dFrom + core.CommunicateImageCost
		if total < best {
			best = total
		}
	}
	if best >= Unreachable {
		return 0, false
	}
	return best, true
}
