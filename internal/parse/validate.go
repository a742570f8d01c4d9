package parse

import (
	"fmt"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

// Validate runs the post-parse consistency checks the reference
// implementation performs before handing a state to the planner. Hard
// violations are returned as an error; soft concerns (no goal present)
// come back as warnings so callers can log and proceed, matching the
// boundary case where a goal-less problem is solved by the empty plan.
func Validate(s *core.State, g *core.Goal, limits core.Limits) (warnings []string, err error) {
	if len(s.Rovers) > limits.MaxRovers {
		return nil, fmt.Errorf("parse: %d rovers exceeds the limit of %d", len(s.Rovers), limits.MaxRovers)
	}
	if len(s.Waypoints) > limits.MaxWaypoints {
		return nil, fmt.Errorf("parse: %d waypoints exceeds the limit of %d", len(s.Waypoints), limits.MaxWaypoints)
	}
	if len(s.Cameras) > limits.MaxCameras {
		return nil, fmt.Errorf("parse: %d cameras exceeds the limit of %d", len(s.Cameras), limits.MaxCameras)
	}
	if len(s.Stores) > limits.MaxStores {
		return nil, fmt.Errorf("parse: %d stores exceeds the limit of %d", len(s.Stores), limits.MaxStores)
	}
	if len(s.Objectives) > limits.MaxObjectives {
		return nil, fmt.Errorf("parse: %d objectives exceeds the limit of %d", len(s.Objectives), limits.MaxObjectives)
	}

	if s.Lander.Position < 0 || s.Lander.Position >= len(s.Waypoints) {
		return nil, fmt.Errorf("parse: lander position %d is out of range", s.Lander.Position)
	}

	for i, r := range s.Rovers {
		if r.Position < 0 || r.Position >= len(s.Waypoints) {
			return nil, fmt.Errorf("parse: rover%d position %d is out of range", i, r.Position)
		}
		if r.Energy < 0 {
			return nil, fmt.Errorf("parse: rover%d has negative energy %d", i, r.Energy)
		}
		for from, row := range r.CanTraverse {
			for to, can := range row {
				if can && !s.Waypoints[from].VisibleWaypoints[to] {
					return nil, fmt.Errorf("parse: rover%d can traverse waypoint%d -> waypoint%d without visibility", i, from, to)
				}
			}
		}
	}

	for i, c := range s.Cameras {
		if c.RoverID < 0 || c.RoverID >= len(s.Rovers) {
			return nil, fmt.Errorf("parse: camera%d has no owning rover", i)
		}
		hasTarget := false
		for _, v := range c.CalibrationTargets {
			if v {
				hasTarget = true
				break
			}
		}
		if !hasTarget {
			return nil, fmt.Errorf("parse: camera%d has no calibration target", i)
		}
	}

	for i, st := range s.Stores {
		if st.RoverID < 0 || st.RoverID >= len(s.Rovers) {
			return nil, fmt.Errorf("parse: store%d has no owning rover", i)
		}
	}

	if g.IsEmpty() {
		warnings = append(warnings, "problem has no goal predicates; the empty plan is a solution")
	}

	return warnings, nil
}
