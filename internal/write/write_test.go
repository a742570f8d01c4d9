package write

import (
	"strings"
	"testing"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

func TestToWriterFormatsHeaderAndActions(t *testing.T) {
	plan := Plan{
		Steps: []Step{
			{Action: core.Action{Kind: core.Navigate, Params: []int{0, 0, 1}}, H: 10, F: 11},
			{Action: core.Action{Kind: core.SampleSoil, Params: []int{0, 0, 1}}, H: 7, F: 10},
			{Action: core.Action{Kind: core.CommunicateSoilData, Params: []int{0, 1, 1, 2}}, H: 0, F: 15},
		},
		TotalRecharges: 2,
	}

	var buf strings.Builder
	if err := ToWriter(&buf, plan); err != nil {
		t.Fatalf("ToWriter() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5 (2 headers + 3 actions)", len(lines))
	}
	if lines[0] != "Solution length: 3" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Total recharges uses: 2" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if lines[2] != "( navigate rover0 waypoint0 waypoint1 ) h=10 f=11" {
		t.Errorf("line 2 = %q", lines[2])
	}
	if lines[4] != "( communicate_soil_data rover0 waypoint1 waypoint1 waypoint2 general ) h=0 f=15" {
		t.Errorf("line 4 = %q", lines[4])
	}
}

func TestFormatActionTakeImageUsesModeName(t *testing.T) {
	line, err := formatAction(core.Action{Kind: core.TakeImage, Params: []int{0, 1, 0, 0, int(core.ModeHighRes)}})
	if err != nil {
		t.Fatalf("formatAction() error = %v", err)
	}
	if line != "( take_image rover0 waypoint1 objective0 camera0 high_res )" {
		t.Errorf("line = %q", line)
	}
}

func TestFormatActionRejectsInvalidMode(t *testing.T) {
	_, err := formatAction(core.Action{Kind: core.TakeImage, Params: []int{0, 1, 0, 0, 7}})
	if err == nil {
		t.Errorf("expected an error for an invalid mode index")
	}
}
