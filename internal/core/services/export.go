package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docket-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.Exporter = (*ExportService)(nil)

// ExportService coordinates the export pipeline: walk the directory trees,
// fetch the documents, assemble the report and deliver it.
type ExportService struct {
	source      driven.CatalogSource
	sink        driven.DeliverySink
	runs        driven.RunStore
	assembler   *Assembler
	destination string

	// Injection points for tests.
	now      func() time.Time
	newRunID func() string
}

// NewExportService creates a new export service. The run store may be nil,
// in which case runs go unrecorded. destination names the delivery backend
// for the run ledger.
func NewExportService(
	source driven.CatalogSource,
	sink driven.DeliverySink,
	runs driven.RunStore,
	assembler *Assembler,
	destination string,
) *ExportService {
	return &ExportService{
		source:      source,
		sink:        sink,
		runs:        runs,
		assembler:   assembler,
		destination: destination,
		now:         time.Now,
		newRunID:    func() string { return uuid.New().String() },
	}
}

// Export runs the pipeline for the given options and always returns a
// terminal status. This is the outermost recovery boundary: panics anywhere
// below become a failure status with a normalised message.
func (s *ExportService) Export(ctx context.Context, opts driving.ExportOptions) (status domain.RunStatus) {
	run := &domain.ExportRun{
		ID:          s.newRunID(),
		Teams:       opts.Teams,
		ListType:    opts.ListType,
		Destination: s.destination,
		State:       domain.RunStateRunning,
		StartedAt:   s.now(),
	}

	defer func() {
		if r := recover(); r != nil {
			status = domain.FailureStatus(fmt.Errorf("export panicked: %v", r))
		}
		s.finishRun(run, status, opts.DryRun)
	}()

	status = s.export(ctx, opts, run)
	return status
}

// export runs the pipeline steps; Export owns recovery and run recording.
func (s *ExportService) export(ctx context.Context, opts driving.ExportOptions, run *domain.ExportRun) domain.RunStatus {
	// 1. Validate options
	if len(opts.Teams) == 0 {
		return domain.FailureStatus(domain.ErrNoTeams)
	}

	logger.Info("Starting export run %s for %d team(s)", run.ID, len(opts.Teams))
	s.recordRun(run, opts.DryRun)

	// 2. Walk the directory trees into a path table
	table, err := NewPathTableBuilder(s.source).Build(ctx, opts.Teams)
	if err != nil {
		return domain.FailureStatus(err)
	}

	// 3. Fetch documents for every team
	var docs []domain.Record
	for _, team := range opts.Teams {
		teamDocs, err := s.source.Documents(ctx, team, opts.ListType)
		if err != nil {
			return domain.FailureStatus(fmt.Errorf("list documents for team %s: %w", team, err))
		}
		docs = append(docs, teamDocs...)
	}
	logger.Info("Fetched %d documents across %d team(s)", len(docs), len(opts.Teams))

	// 4. Assemble the report
	assembler := s.assembler
	if opts.FilePrefix != "" {
		assembler = NewAssembler(opts.FilePrefix)
	}

	now := s.now()
	rows := assembler.Rows(docs, table, now)
	payload, err := assembler.CSV(rows)
	if err != nil {
		return domain.FailureStatus(err)
	}

	name := assembler.ReportName(now)
	run.ReportName = name
	run.RowCount = len(rows)

	// 5. Deliver the report
	if opts.DryRun {
		return domain.SuccessStatus(fmt.Sprintf("dry run: assembled %s with %d rows, delivery skipped", name, len(rows)))
	}
	if err := s.sink.Deliver(ctx, name, payload); err != nil {
		return domain.FailureStatus(err)
	}

	logger.Info("Delivered %s (%d rows)", name, len(rows))
	return domain.SuccessStatus(fmt.Sprintf("exported %d documents to %s", len(rows), name))
}

// recordRun saves the run's starting state. Ledger failures degrade to a
// warning; they never fail the export.
func (s *ExportService) recordRun(run *domain.ExportRun, dryRun bool) {
	if s.runs == nil || dryRun {
		return
	}
	if err := s.runs.Save(context.Background(), *run); err != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, err)
	}
}

// finishRun saves the run's terminal state. The ledger write uses a fresh
// context so it survives a cancelled run context.
func (s *ExportService) finishRun(run *domain.ExportRun, status domain.RunStatus, dryRun bool) {
	if s.runs == nil || dryRun {
		return
	}

	run.FinishedAt = s.now()
	if status.OK() {
		run.State = domain.RunStateSucceeded
	} else {
		run.State = domain.RunStateFailed
		run.Error = status.Message
	}

	if err := s.runs.Save(context.Background(), *run); err != nil {
		logger.Warn("Failed to record run %s: %v", run.ID, err)
	}
}
