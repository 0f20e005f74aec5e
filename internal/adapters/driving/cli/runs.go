package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded export runs",
	Long:  `Lists past export runs from the local run ledger, most recent first.`,
	RunE:  runRuns,
}

// Flags for runs.
var runsLimit int

func init() {
	runsCmd.Flags().IntVarP(
		&runsLimit, "limit", "n", 10, "Maximum number of runs to show")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, _ []string) error {
	cleanup, err := ensureRunHistory()
	if err != nil {
		return err
	}
	defer cleanup()

	runs, err := runHistory.Runs(context.Background(), runsLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No export runs recorded.")
		return nil
	}

	cmd.Println("Recorded export runs:")
	cmd.Println()
	for i := range runs {
		printRun(cmd, runs[i])
	}

	return nil
}

func printRun(cmd *cobra.Command, run domain.ExportRun) {
	cmd.Printf("  %s\n", run.ID)
	cmd.Printf("    State: %s\n", run.State)
	cmd.Printf("    Started: %s\n", run.StartedAt.Format(time.RFC3339))
	if d := run.Duration(); d > 0 {
		cmd.Printf("    Duration: %s\n", d.Round(time.Millisecond))
	}
	cmd.Printf("    Teams: %s\n", strings.Join(run.Teams, ", "))
	if run.ReportName != "" {
		cmd.Printf("    Report: %s (%d rows, %s)\n", run.ReportName, run.RowCount, run.Destination)
	}
	if run.Error != "" {
		cmd.Printf("    Error: %s\n", run.Error)
	}
	cmd.Println()
}
