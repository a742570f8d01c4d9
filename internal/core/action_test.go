package core

import "testing"

func trivialState() (*State, *Goal) {
	canTraverse := [][]bool{{false, true}, {true, false}}
	visible := [][]bool{{false, true}, {true, false}}

	s := &State{
		Rovers: []Rover{{
			ID: 0, Position: 0, Energy: 10, Available: true,
			EquippedSoil: true,
			HasSoilAnalysis: []bool{true, false},
			HasRockAnalysis: []bool{false, false},
			HaveImage:       [][]bool{},
			CanTraverse:     canTraverse,
		}},
		Waypoints: []Waypoint{
			{ID: 0, VisibleWaypoints: visible[0]},
			{ID: 1, VisibleWaypoints: visible[1]},
		},
		Stores:     []Store{{ID: 0, RoverID: 0}},
		Objectives: nil,
		Cameras:    nil,
		Lander:     Lander{Position: 1, ChannelFree: true},
	}
	g := &Goal{
		Soil: []bool{true, false},
		Rock: []bool{false, false},
	}
	return s, g
}

func TestApplyCommunicateSoil(t *testing.T) {
	s, g := trivialState()
	next, cost, ok := Apply(s, g, Action{Kind: CommunicateSoilData, Params: []int{0, 0, 0, 1}})
	if !ok {
		t.Fatalf("expected communicate_soil_data to apply")
	}
	if cost != CommunicateSoilCost {
		t.Errorf("cost = %d, want %d", cost, CommunicateSoilCost)
	}
	if !next.Waypoints[0].CommunicatedSoil {
		t.Errorf("expected waypoint 0 communicated_soil = true")
	}
	if s.Waypoints[0].CommunicatedSoil {
		t.Errorf("original state must not be mutated")
	}
	if !next.IsGoal(g) {
		t.Errorf("expected goal satisfied after communicate")
	}
}

func TestApplyCommunicateSoilRejectsUnwantedGoal(t *testing.T) {
	s, g := trivialState()
	g.Soil[0] = false // no longer a goal
	if _, _, ok := Apply(s, g, Action{Kind: CommunicateSoilData, Params: []int{0, 0, 0, 1}}); ok {
		t.Errorf("expected communicate_soil_data to fail when not a goal")
	}
}

func TestApplyNavigateRejectsInsufficientEnergy(t *testing.T) {
	s, g := trivialState()
	s.Rovers[0].Energy = 3
	if _, _, ok := Apply(s, g, Action{Kind: Navigate, Params: []int{0, 0, 1}}); ok {
		t.Errorf("expected navigate to fail with insufficient energy")
	}
}

func TestApplyNavigateSucceeds(t *testing.T) {
	s, g := trivialState()
	next, cost, ok := Apply(s, g, Action{Kind: Navigate, Params: []int{0, 0, 1}})
	if !ok {
		t.Fatalf("expected navigate to apply")
	}
	if cost != NavigateCost {
		t.Errorf("cost = %d, want %d", cost, NavigateCost)
	}
	if next.Rovers[0].Position != 1 {
		t.Errorf("position = %d, want 1", next.Rovers[0].Position)
	}
	if s.Rovers[0].Position != 0 {
		t.Errorf("original rover must not be mutated")
	}
}

func TestApplyRechargeRequiresSun(t *testing.T) {
	s, g := trivialState()
	s.Rovers[0].Energy = 2
	if _, _, ok := Apply(s, g, Action{Kind: Recharge, Params: []int{0, 0}}); ok {
		t.Errorf("expected recharge to fail at a waypoint not in_sun")
	}
	s.Waypoints[0].InSun = true
	next, _, ok := Apply(s, g, Action{Kind: Recharge, Params: []int{0, 0}})
	if !ok {
		t.Fatalf("expected recharge to apply in sunlight")
	}
	if next.Rovers[0].Energy != 22 {
		t.Errorf("energy = %d, want 22", next.Rovers[0].Energy)
	}
	if next.Recharges != 1 {
		t.Errorf("recharges = %d, want 1", next.Recharges)
	}
}

func TestIsGoalEmptyGoal(t *testing.T) {
	s, _ := trivialState()
	empty := &Goal{Soil: []bool{false, false}, Rock: []bool{false, false}}
	if !s.IsGoal(empty) {
		t.Errorf("expected empty goal to be satisfied trivially")
	}
}
