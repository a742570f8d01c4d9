// Command verify replays a written solution against its problem file and
// reports whether every action was applicable and the goal was reached.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/elektrokombinacija/roverplan/internal/verify"
)

func main() {
	root := &cobra.Command{
		Use:   "verify <problem-file> <solution-file>",
		Short: "Verify a Rover solution against its problem instance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0], args[1])
		},
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runVerify(problemPath, solutionPath string) error {
	report, err := verify.Files(problemPath, solutionPath)
	if err != nil {
		return fmt.Errorf("verifying %s against %s: %w", solutionPath, problemPath, err)
	}

	if !report.Valid {
		slog.Error("plan rejected", "line", report.FailedAtLine, "reason", report.Reason)
		fmt.Printf("Bad plan: %s (line %d)\n", report.Reason, report.FailedAtLine)
		os.Exit(1)
	}

	fmt.Printf("Total actions: %d\n", report.TotalActions)
	fmt.Printf("Total energy: %d\n", report.TotalEnergy)
	if report.GoalReached {
		fmt.Println("Goal reached: yes")
	} else {
		fmt.Println("Goal reached: no")
		os.Exit(1)
	}
	return nil
}
