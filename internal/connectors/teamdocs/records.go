package teamdocs

import "github.com/custodia-labs/docket-cli/internal/core/domain"

// envelope is the wire shape of every Teamdocs list response.
type envelope struct {
	Data     []wireRecord `json:"data"`
	Included []wireRecord `json:"included,omitempty"`
	Meta     meta         `json:"meta"`
}

// meta carries listing metadata.
type meta struct {
	// Total is the number of records across all pages.
	Total int `json:"total"`
}

// wireRecord is the wire shape of a single record.
type wireRecord struct {
	ID            string                      `json:"id"`
	Type          string                      `json:"type"`
	Attributes    map[string]any              `json:"attributes"`
	Relationships map[string]wireRelationship `json:"relationships,omitempty"`
}

// wireRelationship wraps a relationship reference.
// Data is null for relationships without a target.
type wireRelationship struct {
	Data *wireRef `json:"data"`
}

// wireRef identifies a referenced record.
type wireRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// toDomain converts a wire record into a domain record.
// Relationships with a null target are dropped.
func (w wireRecord) toDomain() domain.Record {
	rec := domain.Record{
		ID:         w.ID,
		Type:       w.Type,
		Attributes: w.Attributes,
	}
	if len(w.Relationships) == 0 {
		return rec
	}
	rec.Relationships = make(map[string]*domain.RelationshipRef, len(w.Relationships))
	for name, rel := range w.Relationships {
		if rel.Data == nil {
			continue
		}
		rec.Relationships[name] = &domain.RelationshipRef{
			Type: rel.Data.Type,
			ID:   rel.Data.ID,
		}
	}
	return rec
}

// toDomainRecords converts a page of wire records.
func toDomainRecords(wires []wireRecord) []domain.Record {
	records := make([]domain.Record, 0, len(wires))
	for _, w := range wires {
		records = append(records, w.toDomain())
	}
	return records
}
