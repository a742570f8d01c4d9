package algo

import "testing"

func TestPrecomputeDirectEdge(t *testing.T) {
	s, _ := navigateSampleScenario(20)
	dt := Precompute(s)

	if d := dt.Dist(0, 0, 1); d != 8 {
		t.Errorf("Dist(0,0,1) = %d, want 8", d)
	}
	if d := dt.Dist(0, 0, 2); d != Unreachable {
		t.Errorf("Dist(0,0,2) = %d, want Unreachable (no traverse right to 2)", d)
	}
}

func TestNearestCommPoint(t *testing.T) {
	s, _ := navigateSampleScenario(20)
	dt := Precompute(s)

	w, cost, ok := dt.NearestCommPoint(s, 0, 1)
	if !ok {
		t.Fatalf("expected a reachable comm point from waypoint1")
	}
	if w != 1 || cost != 0 {
		t.Errorf("NearestCommPoint(0,1) = (%d,%d), want (1,0)", w, cost)
	}
}

func TestNearestCommPointUnreachable(t *testing.T) {
	s, _ := isolatedRoverScenario()
	dt := Precompute(s)

	if _, _, ok := dt.NearestCommPoint(s, 0, 0); ok {
		t.Errorf("expected no reachable comm point for an isolated rover")
	}
}
