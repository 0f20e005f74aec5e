package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driving"
)

// mockExporter implements driving.Exporter for testing.
type mockExporter struct {
	opts   driving.ExportOptions
	status domain.RunStatus
	calls  int
}

func (m *mockExporter) Export(_ context.Context, opts driving.ExportOptions) domain.RunStatus {
	m.calls++
	m.opts = opts
	return m.status
}

// setupExportTest installs a mock exporter and resets the export flags.
func setupExportTest(status domain.RunStatus) (*mockExporter, func()) {
	oldExporter := exporter
	mock := &mockExporter{status: status}
	exporter = mock
	return mock, func() {
		exporter = oldExporter
		exportTeams = nil
		exportListType = ""
		exportPrefix = ""
		exportDryRun = false
	}
}

// tempConfigPath returns a config path inside a temp dir so tests never
// touch the user's real config file.
func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.toml")
}

func TestExportCmd_Use(t *testing.T) {
	assert.Equal(t, "export", exportCmd.Use)
}

func TestExportCmd_Short(t *testing.T) {
	assert.Equal(t, "Export the document catalogue to a CSV report", exportCmd.Short)
}

func TestExportCmd_Executes(t *testing.T) {
	mock, cleanup := setupExportTest(domain.SuccessStatus("exported 2 documents to documents_20240102.csv"))
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"export", "--config", tempConfigPath(t), "--teams", "11,42"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, 1, mock.calls)
	assert.Contains(t, buf.String(), "exported 2 documents to documents_20240102.csv")
}

func TestExportCmd_FlagsOverrideConfig(t *testing.T) {
	mock, cleanup := setupExportTest(domain.SuccessStatus("done"))
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"export", "--config", tempConfigPath(t),
		"--teams", "11,42",
		"--list-type", "starred",
		"--prefix", "catalog",
		"--dry-run",
	})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"11", "42"}, mock.opts.Teams)
	assert.Equal(t, "starred", mock.opts.ListType)
	assert.Equal(t, "catalog", mock.opts.FilePrefix)
	assert.True(t, mock.opts.DryRun)
}

func TestExportCmd_ConfigDefaults(t *testing.T) {
	mock, cleanup := setupExportTest(domain.SuccessStatus("done"))
	defer cleanup()

	path := tempConfigPath(t)
	content := "[export]\nteams = [\"7\"]\nlist_type = \"recent\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"export", "--config", path})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"7"}, mock.opts.Teams)
	assert.Equal(t, "recent", mock.opts.ListType)
	// Prefix stays empty so the configured assembler applies.
	assert.Empty(t, mock.opts.FilePrefix)
	assert.False(t, mock.opts.DryRun)
}

func TestExportCmd_FailureStatusBecomesError(t *testing.T) {
	_, cleanup := setupExportTest(domain.RunStatus{Code: 1, Message: "delivery failed after 4 attempts: broken pipe"})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"export", "--config", tempConfigPath(t), "--teams", "11"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "delivery failed after 4 attempts: broken pipe")
}

func TestExportCmd_UnconfiguredFailsValidation(t *testing.T) {
	// No mock installed: ensureExporter validates the empty config.
	oldExporter := exporter
	exporter = nil
	defer func() { exporter = oldExporter }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"export", "--config", tempConfigPath(t)})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api.base_url is required")
}
