package teamdocs

import "github.com/custodia-labs/docket-cli/internal/core/domain"

// resolveRelationships attaches side-loaded record attributes to the
// relationship references of the primary records, in place.
//
// References are matched by type and id. The first side-loaded record
// matching a reference wins; references with no match stay unresolved.
func resolveRelationships(records, included []domain.Record) {
	if len(records) == 0 || len(included) == 0 {
		return
	}

	index := make(map[wireRef]map[string]any, len(included))
	for _, inc := range included {
		key := wireRef{Type: inc.Type, ID: inc.ID}
		if _, exists := index[key]; !exists {
			index[key] = inc.Attributes
		}
	}

	for _, rec := range records {
		for _, ref := range rec.Relationships {
			if ref == nil || ref.Resolved() {
				continue
			}
			if attrs, ok := index[wireRef{Type: ref.Type, ID: ref.ID}]; ok {
				ref.Attributes = attrs
			}
		}
	}
}
