package driven

import (
	"context"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

// DirectoryLister lists directories from the catalog API.
// Implementations fetch every page before returning.
type DirectoryLister interface {
	// RootDirectories returns a team's top-level directories.
	RootDirectories(ctx context.Context, teamID string) ([]domain.Record, error)

	// ChildDirectories returns the directories nested directly under parentID.
	ChildDirectories(ctx context.Context, teamID, parentID string) ([]domain.Record, error)
}

// DocumentLister lists documents from the catalog API.
type DocumentLister interface {
	// Documents returns a team's documents with relationship references
	// resolved against the side-loaded records.
	Documents(ctx context.Context, teamID, listType string) ([]domain.Record, error)
}

// CatalogSource is the complete read surface of the catalog API.
type CatalogSource interface {
	DirectoryLister
	DocumentLister
}
