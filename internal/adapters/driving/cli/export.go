package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docket-cli/internal/core/ports/driving"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the document catalogue to a CSV report",
	Long: `Fetches the configured teams' documents from the content API, assembles
the categorised CSV report and delivers it to the configured destination.

Teams, listing filter and report prefix default to the config file values;
flags override them for a single run.`,
	RunE: runExport,
}

// Flags for export.
var (
	exportTeams    []string
	exportListType string
	exportPrefix   string
	exportDryRun   bool
)

func init() {
	exportCmd.Flags().StringSliceVar(
		&exportTeams, "teams", nil, "Team ids to export (overrides config)")
	exportCmd.Flags().StringVar(
		&exportListType, "list-type", "", "Document listing filter (overrides config)")
	exportCmd.Flags().StringVar(
		&exportPrefix, "prefix", "", "Report file name prefix (overrides config)")
	exportCmd.Flags().BoolVar(
		&exportDryRun, "dry-run", false, "Assemble the report without delivering it")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cleanup, err := ensureExporter()
	if err != nil {
		return err
	}
	defer cleanup()

	status := exporter.Export(context.Background(), exportOptions())
	if !status.OK() {
		return errors.New(status.Message)
	}

	cmd.Println(status.Message)
	return nil
}

// exportOptions merges export flags with the config file defaults.
func exportOptions() driving.ExportOptions {
	opts := driving.ExportOptions{
		Teams:    cfg.Export.Teams,
		ListType: cfg.Export.ListType,
		DryRun:   exportDryRun,
	}
	if len(exportTeams) > 0 {
		opts.Teams = exportTeams
	}
	if exportListType != "" {
		opts.ListType = exportListType
	}
	if exportPrefix != "" {
		opts.FilePrefix = exportPrefix
	}
	return opts
}
