package services

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
	"github.com/custodia-labs/docket-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docket-cli/internal/logger"
)

// PathTableBuilder walks directory trees breadth-first and records the full
// path of every directory in a PathTable.
type PathTableBuilder struct {
	source driven.DirectoryLister
}

// NewPathTableBuilder creates a builder reading directories from source.
func NewPathTableBuilder(source driven.DirectoryLister) *PathTableBuilder {
	return &PathTableBuilder{source: source}
}

// Build walks every team's directory tree and returns the completed table.
// Each tree level is fetched concurrently; the walk ends when a level
// produces no children. The first fetch error aborts the build.
func (b *PathTableBuilder) Build(ctx context.Context, teams []string) (*domain.PathTable, error) {
	table := domain.NewPathTable()

	for _, team := range teams {
		if err := b.walkTeam(ctx, team, table); err != nil {
			return nil, err
		}
	}

	logger.Debug("Path table built: %d directories", table.Len())
	return table, nil
}

// walkTeam walks one team's tree from its root directories down.
func (b *PathTableBuilder) walkTeam(ctx context.Context, teamID string, table *domain.PathTable) error {
	records, err := b.source.RootDirectories(ctx, teamID)
	if err != nil {
		return fmt.Errorf("list root directories for team %s: %w", teamID, err)
	}

	frontier := make([]domain.Directory, 0, len(records))
	for _, rec := range records {
		frontier = append(frontier, table.Insert(directoryFromRecord(rec, teamID, "")))
	}

	for depth := 1; len(frontier) > 0; depth++ {
		logger.Debug("Team %s: walking %d directories at depth %d", teamID, len(frontier), depth)
		frontier, err = b.fetchLevel(ctx, teamID, frontier, table)
		if err != nil {
			return err
		}
	}
	return nil
}

// childSet holds the children listed under one frontier directory.
type childSet struct {
	parentID string
	records  []domain.Record
}

// fetchLevel lists the children of every frontier directory concurrently,
// then inserts them. Parents were inserted with the previous level, so
// every child's path resolves against a recorded parent.
func (b *PathTableBuilder) fetchLevel(
	ctx context.Context,
	teamID string,
	frontier []domain.Directory,
	table *domain.PathTable,
) ([]domain.Directory, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var sets []childSet

	for _, dir := range frontier {
		dir := dir
		g.Go(func() error {
			records, err := b.source.ChildDirectories(ctx, teamID, dir.ID)
			if err != nil {
				return fmt.Errorf("list children of directory %s: %w", dir.ID, err)
			}
			mu.Lock()
			sets = append(sets, childSet{parentID: dir.ID, records: records})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var next []domain.Directory
	for _, set := range sets {
		for _, rec := range set.records {
			next = append(next, table.Insert(directoryFromRecord(rec, teamID, set.parentID)))
		}
	}
	return next, nil
}

// directoryFromRecord maps a catalog record onto a Directory. The parent
// comes from the listing query rather than the record itself, and the team
// is inherited from the team being walked.
func directoryFromRecord(rec domain.Record, teamID, parentID string) domain.Directory {
	name, _ := rec.StringAttr("name")
	return domain.Directory{
		ID:       rec.ID,
		Name:     name,
		ParentID: parentID,
		TeamID:   teamID,
	}
}
