package driven

import (
	"context"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

// RunStore persists export run history.
type RunStore interface {
	// Save stores or updates a run.
	Save(ctx context.Context, run domain.ExportRun) error

	// Get retrieves a run by id.
	// Returns domain.ErrNotFound if no such run exists.
	Get(ctx context.Context, id string) (*domain.ExportRun, error)

	// List returns runs ordered most recent first, up to limit.
	// A non-positive limit returns all runs.
	List(ctx context.Context, limit int) ([]domain.ExportRun, error)
}
