package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

// --- Mock implementations for service testing ---

// mockCatalog implements driven.CatalogSource for testing. Listings are
// keyed by team id, children additionally by "team/parent".
type mockCatalog struct {
	mu sync.Mutex

	roots    map[string][]domain.Record
	children map[string][]domain.Record
	docs     map[string][]domain.Record

	rootsErr    error
	childrenErr map[string]error
	docsErr     error

	rootCalls  []string
	childCalls []string
	docCalls   []string
}

func newMockCatalog() *mockCatalog {
	return &mockCatalog{
		roots:       make(map[string][]domain.Record),
		children:    make(map[string][]domain.Record),
		docs:        make(map[string][]domain.Record),
		childrenErr: make(map[string]error),
	}
}

func (m *mockCatalog) RootDirectories(_ context.Context, teamID string) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rootCalls = append(m.rootCalls, teamID)
	if m.rootsErr != nil {
		return nil, m.rootsErr
	}
	return m.roots[teamID], nil
}

func (m *mockCatalog) ChildDirectories(_ context.Context, teamID, parentID string) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.childCalls = append(m.childCalls, parentID)
	if err := m.childrenErr[parentID]; err != nil {
		return nil, err
	}
	return m.children[teamID+"/"+parentID], nil
}

func (m *mockCatalog) Documents(_ context.Context, teamID, listType string) ([]domain.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docCalls = append(m.docCalls, teamID+"/"+listType)
	if m.docsErr != nil {
		return nil, m.docsErr
	}
	return m.docs[teamID], nil
}

// dirRecord builds a directory record with a name attribute.
func dirRecord(id, name string) domain.Record {
	return domain.Record{
		ID:         id,
		Type:       "directory",
		Attributes: map[string]any{"name": name},
	}
}

// TestPathTableBuilder_Build tests the breadth-first directory walk.
func TestPathTableBuilder_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("builds paths for a flat tree", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.roots["11"] = []domain.Record{
			dirRecord("r1", "Ops"),
			dirRecord("r2", "Design"),
		}

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11"})

		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())
		assert.Equal(t, "Ops", table.Lookup("r1"))
		assert.Equal(t, "Design", table.Lookup("r2"))
	})

	t.Run("builds nested paths level by level", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.roots["11"] = []domain.Record{dirRecord("r1", "Ops")}
		catalog.children["11/r1"] = []domain.Record{dirRecord("c1", "Infra")}
		catalog.children["11/c1"] = []domain.Record{dirRecord("c2", "Runbooks")}

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11"})

		require.NoError(t, err)
		assert.Equal(t, "Ops", table.Lookup("r1"))
		assert.Equal(t, "Ops@Infra", table.Lookup("c1"))
		assert.Equal(t, "Ops@Infra@Runbooks", table.Lookup("c2"))

		// The walk descends until a level yields no children.
		assert.ElementsMatch(t, []string{"r1", "c1", "c2"}, catalog.childCalls)
	})

	t.Run("fans out across a level", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.roots["11"] = []domain.Record{
			dirRecord("r1", "Ops"),
			dirRecord("r2", "Design"),
		}
		catalog.children["11/r1"] = []domain.Record{dirRecord("c1", "Infra")}
		catalog.children["11/r2"] = []domain.Record{dirRecord("c2", "Brand")}

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11"})

		require.NoError(t, err)
		assert.Equal(t, 4, table.Len())
		assert.Equal(t, "Ops@Infra", table.Lookup("c1"))
		assert.Equal(t, "Design@Brand", table.Lookup("c2"))
	})

	t.Run("walks every team", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.roots["11"] = []domain.Record{dirRecord("r1", "Ops")}
		catalog.roots["42"] = []domain.Record{dirRecord("r2", "Docs")}

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11", "42"})

		require.NoError(t, err)
		assert.Equal(t, []string{"11", "42"}, catalog.rootCalls)
		assert.Equal(t, "Ops", table.Lookup("r1"))
		assert.Equal(t, "Docs", table.Lookup("r2"))
	})

	t.Run("empty catalog yields an empty table", func(t *testing.T) {
		catalog := newMockCatalog()

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11"})

		require.NoError(t, err)
		assert.Zero(t, table.Len())
		assert.Empty(t, catalog.childCalls)
	})

	t.Run("aborts on a root listing error", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.rootsErr = errors.New("boom")

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list root directories for team 11")
		assert.Nil(t, table)
	})

	t.Run("aborts on a child listing error", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.roots["11"] = []domain.Record{dirRecord("r1", "Ops")}
		catalog.childrenErr["r1"] = errors.New("boom")

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "list children of directory r1")
		assert.Nil(t, table)
	})

	t.Run("directory without a name attribute still gets a path", func(t *testing.T) {
		catalog := newMockCatalog()
		catalog.roots["11"] = []domain.Record{
			{ID: "r1", Type: "directory"},
		}
		catalog.children["11/r1"] = []domain.Record{dirRecord("c1", "Infra")}

		table, err := NewPathTableBuilder(catalog).Build(ctx, []string{"11"})

		require.NoError(t, err)
		assert.Equal(t, "", table.Lookup("r1"))
		assert.Equal(t, "@Infra", table.Lookup("c1"))
	})
}
