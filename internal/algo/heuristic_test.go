package algo

import "testing"

func TestHeuristicZeroAtGoal(t *testing.T) {
	s, g := navigateSampleScenario(20)
	s.Waypoints[1].CommunicatedSoil = true
	dt := Precompute(s)

	if h := Heuristic(s, g, dt); h != 0 {
		t.Errorf("Heuristic() = %d, want 0 at a goal state", h)
	}
}

func TestHeuristicNonNegativeAtNonGoal(t *testing.T) {
	s, g := navigateSampleScenario(20)
	dt := Precompute(s)

	h := Heuristic(s, g, dt)
	if h < 0 {
		t.Errorf("Heuristic() = %d, want >= 0", h)
	}
	if h >= Unreachable {
		t.Errorf("Heuristic() = %d, expected a finite estimate for a solvable scenario", h)
	}
}

func TestHeuristicMatchesRelaxedCost(t *testing.T) {
	// navigate (8) + sample_soil (3) + communicate (4) = 15, with
	// waypoint1 already a comm point for the lander (cost 0 onward travel).
	s, g := navigateSampleScenario(20)
	dt := Precompute(s)

	if h := Heuristic(s, g, dt); h != 15 {
		t.Errorf("Heuristic() = %d, want 15", h)
	}
}

func TestHeuristicUnreachableGoal(t *testing.T) {
	s, g := isolatedRoverScenario()
	dt := Precompute(s)

	if h := Heuristic(s, g, dt); h != Unreachable {
		t.Errorf("Heuristic() = %d, want Unreachable for an isolated rover", h)
	}
}
