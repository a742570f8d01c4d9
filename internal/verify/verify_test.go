package verify

import (
	"strings"
	"testing"

	"github.com/elektrokombinacija/roverplan/internal/parse"
)

const problem = `
:objects
rover0 - rover
waypoint0 waypoint1 - waypoint
store0 - store
:init
(visible waypoint0 waypoint1)
(visible waypoint1 waypoint0)
(at_lander lander0 waypoint0)
(channel_free)
(in rover0 waypoint0)
(can_traverse rover0 waypoint0 waypoint1)
(available rover0)
(equipped_for_soil_analysis rover0)
(store_of store0 rover0)
(empty store0)
(at_soil_sample waypoint0)
(= (energy rover0) 50)
(= (recharges) 0)
:goal
(communicated_soil_data waypoint0)
`

const validSolution = `Solution length: 3
Total recharges uses: 0
( sample_soil rover0 store0 waypoint0 ) h=10 f=13
( navigate rover0 waypoint0 waypoint1 ) h=5 f=13
( communicate_soil_data rover0 waypoint0 waypoint1 waypoint0 general ) h=0 f=15
`

func TestRunAcceptsValidSolution(t *testing.T) {
	s, g, err := parse.Reader("problem", strings.NewReader(problem))
	if err != nil {
		t.Fatalf("parse.Reader() error = %v", err)
	}

	report, err := Run(s, g, strings.NewReader(validSolution))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Valid {
		t.Fatalf("report.Valid = false, reason = %q, line = %d", report.Reason, report.FailedAtLine)
	}
	if !report.GoalReached {
		t.Errorf("expected GoalReached = true")
	}
	if report.TotalActions != 3 {
		t.Errorf("TotalActions = %d, want 3", report.TotalActions)
	}
	if report.TotalEnergy != 15 {
		t.Errorf("TotalEnergy = %d, want 15", report.TotalEnergy)
	}
}

func TestRunRejectsOutOfOrderActions(t *testing.T) {
	s, g, err := parse.Reader("problem", strings.NewReader(problem))
	if err != nil {
		t.Fatalf("parse.Reader() error = %v", err)
	}

	bad := `Solution length: 1
Total recharges uses: 0
( communicate_soil_data rover0 waypoint0 waypoint1 waypoint0 general ) h=0 f=0
`
	report, err := Run(s, g, strings.NewReader(bad))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Valid {
		t.Fatalf("expected an invalid report, got valid")
	}
	if report.FailedAtLine != 3 {
		t.Errorf("FailedAtLine = %d, want 3", report.FailedAtLine)
	}
}

func TestRunRejectsUnknownAction(t *testing.T) {
	s, g, err := parse.Reader("problem", strings.NewReader(problem))
	if err != nil {
		t.Fatalf("parse.Reader() error = %v", err)
	}

	bad := `Solution length: 1
Total recharges uses: 0
( fly_away rover0 ) h=0 f=0
`
	report, err := Run(s, g, strings.NewReader(bad))
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if report.Valid {
		t.Fatalf("expected an invalid report for an unknown action")
	}
}
