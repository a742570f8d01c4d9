// Command planner solves a Rover problem file and writes the resulting
// plan to a solution file.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/elektrokombinacija/roverplan/config"
	"github.com/elektrokombinacija/roverplan/internal/algo"
	"github.com/elektrokombinacija/roverplan/internal/parse"
	"github.com/elektrokombinacija/roverplan/internal/write"
)

// Exit codes mirror the error kinds a planner run can abort with.
const (
	exitUsage      = 2
	exitParse      = 3
	exitValidation = 4
	exitTimeout    = 5
	exitNoSolution = 6
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var statsOut bool

	root := &cobra.Command{
		Use:   "planner <method> <problem-file> <solution-file>",
		Short: "Search for a plan solving a Rover problem instance",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := runPlanner(args[0], args[1], args[2], configPath, statsOut)
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
		SilenceUsage: true,
	}
	root.Flags().StringVar(&configPath, "config", "", "optional config file overriding limits and timeout")
	root.Flags().BoolVar(&statsOut, "stats", false, "write a <solution-file>.stats.json sidecar")
	viper.BindPFlag("config", root.Flags().Lookup("config"))

	return root
}

func runPlanner(methodName, problemPath, solutionPath, configPath string, wantStats bool) int {
	runID := uuid.New().String()
	logger := slog.With("run_id", runID, "component", "planner")

	method, err := algo.ParseMethod(methodName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return exitUsage
	}

	logger.Info("parsing problem", "path", problemPath)
	state, goal, err := parse.File(problemPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing %s: %v\n", problemPath, err)
		return exitParse
	}

	warnings, err := parse.Validate(state, goal, cfg.Limits)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validating %s: %v\n", problemPath, err)
		return exitValidation
	}
	for _, w := range warnings {
		logger.Warn(w)
	}

	logger.Info("searching", "method", method.String(), "timeout", cfg.Timeout)
	start := time.Now()
	solver := algo.NewSolver(method, cfg.Timeout)
	result, err := solver.Solve(state, goal)
	elapsed := time.Since(start)
	if err != nil {
		code := exitNoSolution
		if _, ok := err.(*algo.ErrTimeout); ok {
			code = exitTimeout
		}
		logger.Error("search aborted", "elapsed", elapsed, "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		if wantStats {
			writeStats(solutionPath, runID, statsFromError(err))
		}
		return code
	}

	logger.Info("solved", "elapsed", elapsed, "length", result.Length, "energy", result.TotalEnergy,
		"expanded", result.Stats.Expanded, "deduped", result.Stats.Deduped)

	plan := write.Plan{
		Steps:          stepsOf(result),
		TotalRecharges: result.TotalRecharges,
	}
	if err := write.ToFile(solutionPath, plan); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", solutionPath, err)
		return exitUsage
	}
	logger.Info("wrote solution", "path", solutionPath)

	if wantStats {
		writeStats(solutionPath, runID, result.Stats)
	}
	return 0
}

func stepsOf(result *algo.Result) []write.Step {
	steps := make([]write.Step, len(result.Plan))
	for i, n := range result.Plan {
		steps[i] = write.Step{Action: n.Action, H: n.H, F: n.F}
	}
	return steps
}

func statsFromError(err error) algo.Stats {
	switch e := err.(type) {
	case *algo.ErrTimeout:
		return e.Stats
	case *algo.ErrNoSolution:
		return e.Stats
	default:
		return algo.Stats{}
	}
}

func writeStats(solutionPath, runID string, stats algo.Stats) {
	sidecar := struct {
		RunID string     `json:"run_id"`
		Stats algo.Stats `json:"stats"`
	}{RunID: runID, Stats: stats}

	f, err := os.Create(solutionPath + ".stats.json")
	if err != nil {
		slog.Error("writing stats sidecar", "error", err)
		return
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sidecar); err != nil {
		slog.Error("encoding stats sidecar", "error", err)
	}
}
