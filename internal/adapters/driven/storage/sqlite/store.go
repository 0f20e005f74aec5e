package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/docket-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a SQLite-backed store for export run history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.docket/data/runs.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docket", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "runs.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RunStore returns a RunStore interface backed by this store.
func (s *Store) RunStore() driven.RunStore {
	return &runStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_runs.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Run Store ====================

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save stores or updates a run.
func (s *runStore) Save(ctx context.Context, run domain.ExportRun) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	teamsJSON, err := json.Marshal(run.Teams)
	if err != nil {
		return fmt.Errorf("marshalling teams: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO runs
			(id, teams, list_type, report_name, destination, row_count, state, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			teams = excluded.teams,
			list_type = excluded.list_type,
			report_name = excluded.report_name,
			destination = excluded.destination,
			row_count = excluded.row_count,
			state = excluded.state,
			error = excluded.error,
			finished_at = excluded.finished_at
	`, run.ID, string(teamsJSON), run.ListType, run.ReportName, run.Destination,
		run.RowCount, string(run.State), run.Error,
		formatNullableTime(run.StartedAt), formatNullableTime(run.FinishedAt))

	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}
	return nil
}

// Get retrieves a run by ID.
func (s *runStore) Get(ctx context.Context, id string) (*domain.ExportRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, teams, list_type, report_name, destination, row_count, state, error, started_at, finished_at
		FROM runs WHERE id = ?
	`, id)

	return scanRun(row)
}

// List returns runs ordered most recent first.
// A non-positive limit returns all runs.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.ExportRun, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative limit as unlimited
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, teams, list_type, report_name, destination, row_count, state, error, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.ExportRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRunRows(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// ==================== Helper Functions ====================

// scanRun scans a single run row.
func scanRun(row *sql.Row) (*domain.ExportRun, error) {
	var run domain.ExportRun
	var teamsJSON, state string
	var startedAt, finishedAt sql.NullString

	if err := row.Scan(&run.ID, &teamsJSON, &run.ListType, &run.ReportName, &run.Destination,
		&run.RowCount, &state, &run.Error, &startedAt, &finishedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.State = domain.RunState(state)
	if teamsJSON != "" && teamsJSON != jsonNull {
		if err := json.Unmarshal([]byte(teamsJSON), &run.Teams); err != nil {
			return nil, fmt.Errorf("unmarshalling teams: %w", err)
		}
	}
	run.StartedAt = parseNullableTime(startedAt)
	run.FinishedAt = parseNullableTime(finishedAt)

	return &run, nil
}

// scanRunRows scans a run from *sql.Rows.
func scanRunRows(rows *sql.Rows) (*domain.ExportRun, error) {
	var run domain.ExportRun
	var teamsJSON, state string
	var startedAt, finishedAt sql.NullString

	if err := rows.Scan(&run.ID, &teamsJSON, &run.ListType, &run.ReportName, &run.Destination,
		&run.RowCount, &state, &run.Error, &startedAt, &finishedAt); err != nil {
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.State = domain.RunState(state)
	if teamsJSON != "" && teamsJSON != jsonNull {
		if err := json.Unmarshal([]byte(teamsJSON), &run.Teams); err != nil {
			return nil, fmt.Errorf("unmarshalling teams: %w", err)
		}
	}
	run.StartedAt = parseNullableTime(startedAt)
	run.FinishedAt = parseNullableTime(finishedAt)

	return &run, nil
}

// formatNullableTime formats a time to RFC3339 UTC, or returns nil for zero time.
// RFC3339 UTC strings sort lexicographically in chronological order.
func formatNullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// parseNullableTime parses a nullable RFC3339 string to time.Time.
// Returns zero time if the string is empty or invalid.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return time.Time{} // Return zero time on parse error
	}
	return t
}
