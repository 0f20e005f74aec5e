package teamdocs

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/docket-cli/internal/core/domain"
)

// FetchAll fetches every page of a listing and returns the merged records.
//
// A probe request for page 1 learns the listing's total. Totals that fit in
// one page are served from the probe directly. Larger listings discard the
// probe payload and fetch pages 1..ceil(total/PageSize) concurrently, capped
// at MaxInFlight in-flight requests; page 1 is requested again so the merge
// sees every record exactly once. The first failing page aborts the fetch.
//
// With resolveIncluded set, side-loaded records are resolved into the
// primary records' relationship references before returning.
func (c *Client) FetchAll(ctx context.Context, path string, filter ListFilter, resolveIncluded bool) ([]domain.Record, error) {
	probe, err := c.fetchPage(ctx, path, filter, 1)
	if err != nil {
		return nil, fmt.Errorf("probe page: %w", err)
	}

	total := probe.Meta.Total
	if total <= c.config.PageSize {
		records := toDomainRecords(probe.Data)
		if resolveIncluded {
			resolveRelationships(records, toDomainRecords(probe.Included))
		}
		return records, nil
	}

	pageCount := (total + c.config.PageSize - 1) / c.config.PageSize

	var (
		mu       sync.Mutex
		records  []domain.Record
		included []domain.Record
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.MaxInFlight)

	for page := 1; page <= pageCount; page++ {
		page := page
		g.Go(func() error {
			env, err := c.fetchPage(gctx, path, filter, page)
			if err != nil {
				return fmt.Errorf("page %d: %w", page, err)
			}

			mu.Lock()
			records = append(records, toDomainRecords(env.Data)...)
			included = append(included, toDomainRecords(env.Included)...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if resolveIncluded {
		resolveRelationships(records, included)
	}
	return records, nil
}
