package services

import (
	"context"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.RunHistory = (*HistoryService)(nil)

// HistoryService exposes recorded export runs.
type HistoryService struct {
	runs driven.RunStore
}

// NewHistoryService creates a run history service.
// A nil store yields an empty history.
func NewHistoryService(runs driven.RunStore) *HistoryService {
	return &HistoryService{runs: runs}
}

// Runs returns past runs, most recent first, up to limit.
func (s *HistoryService) Runs(ctx context.Context, limit int) ([]domain.ExportRun, error) {
	if s.runs == nil {
		return nil, nil
	}
	return s.runs.List(ctx, limit)
}
