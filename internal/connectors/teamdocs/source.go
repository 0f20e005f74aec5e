package teamdocs

import (
	"context"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Source exposes the Teamdocs API as a catalog source.
type Source struct {
	client *Client
}

// NewSource creates a catalog source for the configured API.
func NewSource(cfg *Config, tokenProvider driven.TokenProvider) *Source {
	return &Source{client: NewClient(cfg, tokenProvider)}
}

// RootDirectories returns a team's top-level directories.
func (s *Source) RootDirectories(ctx context.Context, teamID string) ([]domain.Record, error) {
	if teamID == "" {
		return nil, ErrEmptyTeamID
	}
	return s.client.FetchAll(ctx, directoriesPath, ListFilter{TeamID: teamID}, false)
}

// ChildDirectories returns the directories nested directly under parentID.
func (s *Source) ChildDirectories(ctx context.Context, teamID, parentID string) ([]domain.Record, error) {
	if teamID == "" {
		return nil, ErrEmptyTeamID
	}
	return s.client.FetchAll(ctx, directoriesPath, ListFilter{TeamID: teamID, DirectoryID: parentID}, false)
}

// Documents returns a team's documents with relationships resolved.
func (s *Source) Documents(ctx context.Context, teamID, listType string) ([]domain.Record, error) {
	if teamID == "" {
		return nil, ErrEmptyTeamID
	}
	return s.client.FetchAll(ctx, documentsPath, ListFilter{TeamID: teamID, ListType: listType}, true)
}
