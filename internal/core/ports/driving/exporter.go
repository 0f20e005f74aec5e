package driving

import (
	"context"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

// ExportOptions selects what an export run covers.
type ExportOptions struct {
	// Teams are the team ids to export. Must not be empty.
	Teams []string

	// ListType is the document listing filter passed to the catalog.
	ListType string

	// FilePrefix is the report name prefix.
	FilePrefix string

	// DryRun assembles the report without delivering it.
	DryRun bool
}

// Exporter runs the catalog export pipeline.
type Exporter interface {
	// Export fetches the catalog, assembles the report and delivers it.
	// It always returns a terminal status; errors and panics inside the
	// pipeline are converted into a failure status, never propagated.
	Export(ctx context.Context, opts ExportOptions) domain.RunStatus
}

// RunHistory exposes recorded export runs.
type RunHistory interface {
	// Runs returns past runs, most recent first, up to limit.
	Runs(ctx context.Context, limit int) ([]domain.ExportRun, error)
}
