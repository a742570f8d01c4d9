package algo

import (
	"testing"
	"time"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

func TestSearchNavigateSampleCommunicate(t *testing.T) {
	s, g := navigateSampleScenario(20)

	result, err := Search(s, g, BestFirst, time.Minute)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if result.Length != 3 {
		t.Fatalf("plan length = %d, want 3", result.Length)
	}
	if result.TotalEnergy != 15 {
		t.Errorf("total energy = %d, want 15", result.TotalEnergy)
	}

	wantKinds := []core.ActionKind{core.Navigate, core.SampleSoil, core.CommunicateSoilData}
	for i, n := range result.Plan {
		if n.Action.Kind != wantKinds[i] {
			t.Errorf("step %d kind = %v, want %v", i, n.Action.Kind, wantKinds[i])
		}
	}
}

func TestSearchAStarMatchesEnergyOptimum(t *testing.T) {
	s, g := navigateSampleScenario(20)

	result, err := Search(s, g, AStar, time.Minute)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if result.TotalEnergy != 15 {
		t.Errorf("total energy = %d, want 15 (optimum)", result.TotalEnergy)
	}
}

func TestSearchEmptyGoalYieldsEmptyPlan(t *testing.T) {
	s, _ := navigateSampleScenario(20)
	empty := &core.Goal{Soil: []bool{false, false, false}, Rock: []bool{false, false, false}}

	result, err := Search(s, empty, BestFirst, time.Minute)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if result.Length != 0 {
		t.Errorf("plan length = %d, want 0 for an empty goal", result.Length)
	}
}

func TestSearchNoSolutionForIsolatedRover(t *testing.T) {
	s, g := isolatedRoverScenario()

	_, err := Search(s, g, BestFirst, time.Minute)
	if err == nil {
		t.Fatalf("expected an error for an unreachable goal")
	}
	if _, ok := err.(*ErrNoSolution); !ok {
		t.Errorf("err = %T, want *ErrNoSolution", err)
	}
}

func TestNewSolverName(t *testing.T) {
	if got := NewSolver(BestFirst, time.Second).Name(); got != "best" {
		t.Errorf("Name() = %q, want %q", got, "best")
	}
	if got := NewSolver(AStar, time.Second).Name(); got != "astar" {
		t.Errorf("Name() = %q, want %q", got, "astar")
	}
}
