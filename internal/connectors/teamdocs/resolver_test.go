package teamdocs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

func TestResolveRelationships(t *testing.T) {
	t.Run("attaches attributes of a matching side-loaded record", func(t *testing.T) {
		records := []domain.Record{{
			ID:   "doc-1",
			Type: "document",
			Relationships: map[string]*domain.RelationshipRef{
				"directory": {Type: "directory", ID: "dir-1"},
			},
		}}
		included := []domain.Record{{
			ID:         "dir-1",
			Type:       "directory",
			Attributes: map[string]any{"name": "Root"},
		}}

		resolveRelationships(records, included)

		ref := records[0].Related("directory")
		require.True(t, ref.Resolved())
		name, ok := ref.StringAttr("name")
		assert.True(t, ok)
		assert.Equal(t, "Root", name)
	})

	t.Run("requires both type and id to match", func(t *testing.T) {
		records := []domain.Record{{
			ID: "doc-1",
			Relationships: map[string]*domain.RelationshipRef{
				"directory": {Type: "directory", ID: "dir-1"},
			},
		}}
		included := []domain.Record{
			{ID: "dir-1", Type: "team", Attributes: map[string]any{"name": "wrong type"}},
			{ID: "dir-2", Type: "directory", Attributes: map[string]any{"name": "wrong id"}},
		}

		resolveRelationships(records, included)

		assert.False(t, records[0].Related("directory").Resolved())
	})

	t.Run("a missing match is not an error", func(t *testing.T) {
		records := []domain.Record{{
			ID: "doc-1",
			Relationships: map[string]*domain.RelationshipRef{
				"stats": {Type: "document_stats", ID: "stats-9"},
			},
		}}

		resolveRelationships(records, nil)
		resolveRelationships(records, []domain.Record{})

		assert.False(t, records[0].Related("stats").Resolved())
	})

	t.Run("first matching side-loaded record wins", func(t *testing.T) {
		records := []domain.Record{{
			ID: "doc-1",
			Relationships: map[string]*domain.RelationshipRef{
				"directory": {Type: "directory", ID: "dir-1"},
			},
		}}
		included := []domain.Record{
			{ID: "dir-1", Type: "directory", Attributes: map[string]any{"name": "First"}},
			{ID: "dir-1", Type: "directory", Attributes: map[string]any{"name": "Second"}},
		}

		resolveRelationships(records, included)

		name, _ := records[0].Related("directory").StringAttr("name")
		assert.Equal(t, "First", name)
	})

	t.Run("records without relationships pass through", func(t *testing.T) {
		records := []domain.Record{
			{ID: "doc-1", Type: "document"},
			{ID: "doc-2", Type: "document", Relationships: map[string]*domain.RelationshipRef{}},
		}
		included := []domain.Record{
			{ID: "dir-1", Type: "directory", Attributes: map[string]any{"name": "Root"}},
		}

		resolveRelationships(records, included)

		assert.Nil(t, records[0].Related("directory"))
		assert.Nil(t, records[1].Related("directory"))
	})

	t.Run("resolves several references on one record", func(t *testing.T) {
		records := []domain.Record{{
			ID: "doc-1",
			Relationships: map[string]*domain.RelationshipRef{
				"directory": {Type: "directory", ID: "dir-1"},
				"stats":     {Type: "document_stats", ID: "stats-1"},
			},
		}}
		included := []domain.Record{
			{ID: "dir-1", Type: "directory", Attributes: map[string]any{"name": "Root"}},
			{ID: "stats-1", Type: "document_stats", Attributes: map[string]any{"read_count": float64(4)}},
		}

		resolveRelationships(records, included)

		assert.True(t, records[0].Related("directory").Resolved())
		assert.True(t, records[0].Related("stats").Resolved())

		reads, ok := records[0].Related("stats").Int64Attr("read_count")
		assert.True(t, ok)
		assert.Equal(t, int64(4), reads)
	})
}
