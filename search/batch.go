package search

import (
	"cmp"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair for Batch.
type Query[N cmp.Ordered] struct {
	Start, Goal N
}

// Batch runs independent searches over one graph concurrently, at most
// limit at a time (limit <= 0 means unbounded). Results are returned in
// query order. The first failing query cancels the rest and its error is
// returned. Hooks passed in opts are shared by all goroutines.
func Batch[N cmp.Ordered](ctx context.Context, g Graph[N], queries []Query[N], limit int, opts ...Option) ([]*Result[N], error) {
	results := make([]*Result[N], len(queries))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, q := range queries {
		eg.Go(func() error {
			res, err := SearchContext(ctx, g, q.Start, q.Goal, opts...)
			if err != nil {
				return fmt.Errorf("query %d (%v→%v): %w", i, q.Start, q.Goal, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
