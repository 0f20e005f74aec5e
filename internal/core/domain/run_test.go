package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestRunState_IsValid tests run state recognition
func TestRunState_IsValid(t *testing.T) {
	assert.True(t, RunStateRunning.IsValid())
	assert.True(t, RunStateSucceeded.IsValid())
	assert.True(t, RunStateFailed.IsValid())
	assert.False(t, RunState("paused").IsValid())
	assert.False(t, RunState("").IsValid())
}

// TestExportRun_Duration tests elapsed time reporting
func TestExportRun_Duration(t *testing.T) {
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	running := ExportRun{StartedAt: started, State: RunStateRunning}
	assert.Equal(t, time.Duration(0), running.Duration())

	finished := ExportRun{
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
		State:      RunStateSucceeded,
	}
	assert.Equal(t, 90*time.Second, finished.Duration())
}

// TestReportRow_Strings tests column ordering
func TestReportRow_Strings(t *testing.T) {
	row := ReportRow{
		ExportedAt: "2024-03-01 18:00:00",
		ID:         "doc-1",
		Folder:     "Root@Child",
		Name:       "Plan",
		CreatedAt:  "2024-02-01 09:00:00",
		UpdatedAt:  "2024-02-02 09:00:00",
		Starred:    "Yes",
		Views:      "10",
		Likes:      "2",
		Reads:      "8",
		Comments:   "1",
	}

	values := row.Strings()
	assert.Len(t, values, len(ReportColumns()))
	assert.Equal(t, "doc-1", values[1])
	assert.Equal(t, "Root@Child", values[2])
	assert.Equal(t, "Yes", values[6])
	assert.Equal(t, "1", values[10])
}

// TestReportRow_AbsentFields tests that an empty row renders empty values
func TestReportRow_AbsentFields(t *testing.T) {
	var row ReportRow

	for _, v := range row.Strings() {
		assert.Equal(t, "", v)
	}
}
