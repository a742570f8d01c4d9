package algo

import "github.com/elektrokombinacija/roverplan/internal/core"

// navigateSampleScenario builds spec scenario #2: one rover at waypoint0,
// a soil sample at waypoint1, a soil-equipped rover with one empty store,
// mutual visibility/traversal between 0 and 1, and waypoint1 visible to
// the lander at waypoint2.
func navigateSampleScenario(energy int) (*core.State, *core.Goal) {
	visible := [][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	}
	canTraverse := [][]bool{
		{false, true, false},
		{true, false, false},
		{false, false, false},
	}

	s := &core.State{
		Rovers: []core.Rover{{
			ID: 0, Position: 0, Energy: energy, Available: true,
			EquippedSoil:    true,
			HasSoilAnalysis: []bool{false, false, false},
			HasRockAnalysis: []bool{false, false, false},
			HaveImage:       [][]bool{},
			CanTraverse:     canTraverse,
		}},
		Waypoints: []core.Waypoint{
			{ID: 0, VisibleWaypoints: visible[0]},
			{ID: 1, HasSoilSample: true, VisibleWaypoints: visible[1]},
			{ID: 2, VisibleWaypoints: visible[2]},
		},
		Stores: []core.Store{{ID: 0, RoverID: 0}},
		Lander: core.Lander{Position: 2, ChannelFree: true},
	}
	g := &core.Goal{
		Soil: []bool{false, true, false},
		Rock: []bool{false, false, false},
	}
	return s, g
}

// isolatedRoverScenario builds spec scenario #6: a rover with no traversal
// edges and a goal reachable only by navigating away.
func isolatedRoverScenario() (*core.State, *core.Goal) {
	visible := [][]bool{
		{false, false},
		{false, false},
	}
	canTraverse := [][]bool{
		{false, false},
		{false, false},
	}
	s := &core.State{
		Rovers: []core.Rover{{
			ID: 0, Position: 0, Energy: 20, Available: true,
			EquippedSoil:    true,
			HasSoilAnalysis: []bool{false, false},
			HasRockAnalysis: []bool{false, false},
			HaveImage:       [][]bool{},
			CanTraverse:     canTraverse,
		}},
		Waypoints: []core.Waypoint{
			{ID: 0, VisibleWaypoints: visible[0]},
			{ID: 1, HasSoilSample: true, VisibleWaypoints: visible[1]},
		},
		Stores: []core.Store{{ID: 0, RoverID: 0}},
		Lander: core.Lander{Position: 1, ChannelFree: true},
	}
	g := &core.Goal{
		Soil: []bool{false, true},
		Rock: []bool{false, false},
	}
	return s, g
}
