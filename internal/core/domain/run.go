package domain

import "time"

// RunState represents the lifecycle state of an export run.
type RunState string

// Available run states.
const (
	// RunStateRunning indicates the run has started and not yet finished.
	RunStateRunning RunState = "running"

	// RunStateSucceeded indicates the report was assembled and delivered.
	RunStateSucceeded RunState = "succeeded"

	// RunStateFailed indicates the run ended with an error.
	RunStateFailed RunState = "failed"
)

// IsValid returns true if the run state is recognised.
func (s RunState) IsValid() bool {
	switch s {
	case RunStateRunning, RunStateSucceeded, RunStateFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s RunState) String() string {
	return string(s)
}

// ExportRun records a single execution of the export pipeline.
type ExportRun struct {
	// ID is the unique run identifier.
	ID string

	// Teams are the team ids the run exported.
	Teams []string

	// ListType is the document listing filter used.
	ListType string

	// ReportName is the delivered report's file name.
	ReportName string

	// Destination is the delivery backend the report went to.
	Destination string

	// RowCount is the number of document rows in the report.
	RowCount int

	// State is the run's lifecycle state.
	State RunState

	// Error holds the failure message for failed runs.
	Error string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run ended, zero while running.
	FinishedAt time.Time
}

// Duration returns the run's elapsed time, zero while running.
func (r ExportRun) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
