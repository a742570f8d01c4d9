// Package write renders a planner's action sequence into the domain's
// written solution format: two metadata header lines followed by one
// line per action, each giving the action name, its object-name
// parameters, and the node's h/f values at the point it was expanded.
package write

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

// Step is one expanded search node rendered as a solution line: the
// action that produced it and the heuristic/evaluation values it carried.
type Step struct {
	Action core.Action
	H, F   int
}

// Plan is the subset of a search result this package needs to render.
type Plan struct {
	Steps          []Step
	TotalRecharges int
}

// ToFile writes plan to path in the domain's solution format.
func ToFile(path string, plan Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ToWriter(f, plan)
}

// ToWriter writes plan to w.
func ToWriter(w io.Writer, plan Plan) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "Solution length: %d\n", len(plan.Steps)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "Total recharges uses: %d\n", plan.TotalRecharges); err != nil {
		return err
	}
	for _, step := range plan.Steps {
		line, err := formatAction(step.Action)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s h=%d f=%d\n", line, step.H, step.F); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// formatAction renders a.Kind and its parameters as "( name arg … )".
// Communication actions carry a trailing "general" parameter after their
// explicit arguments, a legacy of the domain schema.
func formatAction(a core.Action) (string, error) {
	name := func(prefix string, id int) string { return fmt.Sprintf("%s%d", prefix, id) }

	switch a.Kind {
	case core.Navigate:
		p := a.Params
		return fmt.Sprintf("( navigate %s %s %s )", name("rover", p[0]), name("waypoint", p[1]), name("waypoint", p[2])), nil
	case core.Recharge:
		p := a.Params
		return fmt.Sprintf("( recharge %s %s )", name("rover", p[0]), name("waypoint", p[1])), nil
	case core.SampleSoil:
		p := a.Params
		return fmt.Sprintf("( sample_soil %s %s %s )", name("rover", p[0]), name("store", p[1]), name("waypoint", p[2])), nil
	case core.SampleRock:
		p := a.Params
		return fmt.Sprintf("( sample_rock %s %s %s )", name("rover", p[0]), name("store", p[1]), name("waypoint", p[2])), nil
	case core.Drop:
		p := a.Params
		return fmt.Sprintf("( drop %s %s )", name("rover", p[0]), name("store", p[1])), nil
	case core.Calibrate:
		p := a.Params
		return fmt.Sprintf("( calibrate %s %s %s %s )", name("rover", p[0]), name("camera", p[1]), name("objective", p[2]), name("waypoint", p[3])), nil
	case core.TakeImage:
		p := a.Params
		mode, err := modeName(p[4])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("( take_image %s %s %s %s %s )", name("rover", p[0]), name("waypoint", p[1]), name("objective", p[2]), name("camera", p[3]), mode), nil
	case core.CommunicateSoilData:
		p := a.Params
		return fmt.Sprintf("( communicate_soil_data %s %s %s %s general )", name("rover", p[0]), name("waypoint", p[1]), name("waypoint", p[2]), name("waypoint", p[3])), nil
	case core.CommunicateRockData:
		p := a.Params
		return fmt.Sprintf("( communicate_rock_data %s %s %s %s general )", name("rover", p[0]), name("waypoint", p[1]), name("waypoint", p[2]), name("waypoint", p[3])), nil
	case core.CommunicateImageData:
		p := a.Params
		mode, err := modeName(p[2])
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("( communicate_image_data %s %s %s %s %s general )", name("rover", p[0]), name("objective", p[1]), mode, name("waypoint", p[3]), name("waypoint", p[4])), nil
	default:
		return "", fmt.Errorf("write: unknown action kind %v", a.Kind)
	}
}

func modeName(m int) (string, error) {
	mode := core.Mode(m)
	switch mode {
	case core.ModeColour, core.ModeHighRes, core.ModeLowRes:
		return mode.String(), nil
	default:
		return "", fmt.Errorf("write: invalid mode index %d", m)
	}
}
