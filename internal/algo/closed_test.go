package algo

import "testing"

func TestClosedSetDedup(t *testing.T) {
	s, _ := navigateSampleScenario(20)
	c := NewClosedSet()

	if !c.Insert(s) {
		t.Errorf("first insert should report new")
	}
	if c.Insert(s) {
		t.Errorf("second insert of the same state should report duplicate")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestClosedSetDistinguishesRecharges(t *testing.T) {
	s, _ := navigateSampleScenario(20)
	other := s.Clone()
	other.Recharges = 1

	c := NewClosedSet()
	c.Insert(s)
	if !c.Insert(other) {
		t.Errorf("states differing only by recharges must be treated as distinct")
	}
}

func TestClosedSetCollapsesOwnerIdentity(t *testing.T) {
	// Two rovers: soil analysis held by rover 0 vs rover 1 for the same
	// waypoint should fingerprint identically, since the closed set
	// combines soil/rock analysis bitmaps across rovers.
	s, _ := navigateSampleScenario(20)
	second := s.Rovers[0]
	second.ID = 1
	second.HasSoilAnalysis = []bool{false, false, false}
	second.HasRockAnalysis = []bool{false, false, false}
	s.Rovers = append(s.Rovers, second)
	s.Rovers[0].HasSoilAnalysis[1] = true

	other := s.Clone()
	other.Rovers[0].HasSoilAnalysis[1] = false
	other.Rovers[1].HasSoilAnalysis[1] = true

	if MakeFingerprint(s) != MakeFingerprint(other) {
		t.Errorf("expected fingerprints to collapse soil-analysis ownership across rovers")
	}
}
