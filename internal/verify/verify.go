// Package verify replays a written solution against a problem's initial
// state, action by action, and reports the first inapplicable step.
package verify

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/elektrokombinacija/roverplan/internal/core"
	"github.com/elektrokombinacija/roverplan/internal/parse"
)

// Report summarizes a verification run.
type Report struct {
	TotalActions int
	TotalEnergy  int
	Valid        bool
	FailedAtLine int    // 1-based source line of the first inapplicable action, 0 if Valid
	Reason       string // empty if Valid
	GoalReached  bool
}

// Files verifies the solution at solutionPath against the problem at
// problemPath.
func Files(problemPath, solutionPath string) (*Report, error) {
	state, goal, err := parse.File(problemPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(solutionPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Run(state, goal, f)
}

// Run replays the action lines read from r against state, in order,
// applying goal-gated preconditions exactly as the planner does. The
// first two lines are the format's fixed "Solution length"/"Total
// recharges uses" header and are skipped unconditionally.
func Run(state *core.State, goal *core.Goal, r io.Reader) (*Report, error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	headerLines := 0
	cur := state

	for scanner.Scan() {
		lineNum++
		if headerLines < 2 {
			headerLines++
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		action, err := parseActionLine(line)
		if err != nil {
			return &Report{
				TotalActions: lineNum - 2,
				Valid:        false,
				FailedAtLine: lineNum,
				Reason:       err.Error(),
			}, nil
		}

		next, cost, ok := core.Apply(cur, goal, action)
		if !ok {
			return &Report{
				TotalActions: lineNum - 2,
				Valid:        false,
				FailedAtLine: lineNum,
				Reason:       fmt.Sprintf("action %s is not applicable", action.Kind),
			}, nil
		}
		cur = next
		_ = cost
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	totalEnergy := 0
	for i := range cur.Rovers {
		totalEnergy += state.Rovers[i].Energy - cur.Rovers[i].Energy
	}

	return &Report{
		TotalActions: lineNum - 2,
		TotalEnergy:  totalEnergy,
		Valid:        true,
		GoalReached:  cur.IsGoal(goal),
	}, nil
}

// parseActionLine parses "( kind arg arg ... ) h=<H> f=<F>" into an
// Action, resolving each argument's trailing-integer object id. The
// trailing h=/f= annotation is informational and ignored. Argument order
// and count per kind mirror the domain's reference verifier dispatch.
func parseActionLine(line string) (core.Action, error) {
	open := strings.Index(line, "(")
	closeIdx := strings.Index(line, ")")
	if open < 0 || closeIdx < 0 || closeIdx < open {
		return core.Action{}, fmt.Errorf("malformed action line %q: missing parentheses", line)
	}
	body := strings.TrimSpace(line[open+1 : closeIdx])
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return core.Action{}, fmt.Errorf("empty action line")
	}

	kindName, args := fields[0], fields[1:]
	kind, arity, err := kindFromName(kindName)
	if err != nil {
		return core.Action{}, err
	}
	if len(args) != arity {
		return core.Action{}, fmt.Errorf("%s expects %d arguments, got %d", kindName, arity, len(args))
	}

	switch kind {
	case core.CommunicateSoilData, core.CommunicateRockData, core.CommunicateImageData:
		last := args[len(args)-1]
		if last != "general" {
			return core.Action{}, fmt.Errorf("%s expects a trailing \"general\" parameter, got %q", kindName, last)
		}
		args = args[:len(args)-1]
	}

	params := make([]int, len(args))
	for i, a := range args {
		switch kind {
		case core.TakeImage:
			if i == 4 {
				mode, ok := core.ModeFromName(a)
				if !ok {
					return core.Action{}, fmt.Errorf("unknown mode %q", a)
				}
				params[i] = int(mode)
				continue
			}
		case core.CommunicateImageData:
			if i == 2 {
				mode, ok := core.ModeFromName(a)
				if !ok {
					return core.Action{}, fmt.Errorf("unknown mode %q", a)
				}
				params[i] = int(mode)
				continue
			}
		}
		n, err := objectNumber(a)
		if err != nil {
			return core.Action{}, err
		}
		params[i] = n
	}

	return core.Action{Kind: kind, Params: params}, nil
}

func kindFromName(name string) (core.ActionKind, int, error) {
	switch name {
	case "navigate":
		return core.Navigate, 3, nil
	case "recharge":
		return core.Recharge, 2, nil
	case "sample_soil":
		return core.SampleSoil, 3, nil
	case "sample_rock":
		return core.SampleRock, 3, nil
	case "drop":
		return core.Drop, 2, nil
	case "calibrate":
		return core.Calibrate, 4, nil
	case "take_image":
		return core.TakeImage, 5, nil
	case "communicate_soil_data":
		return core.CommunicateSoilData, 5, nil // 4 explicit args + trailing "general"
	case "communicate_rock_data":
		return core.CommunicateRockData, 5, nil // 4 explicit args + trailing "general"
	case "communicate_image_data":
		return core.CommunicateImageData, 6, nil // 5 explicit args + trailing "general"
	default:
		return 0, 0, fmt.Errorf("unknown action %q", name)
	}
}

func objectNumber(name string) (int, error) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	if i == len(name) {
		return 0, fmt.Errorf("object %q has no trailing id", name)
	}
	return strconv.Atoi(name[i:])
}
