package jobrunner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize bounds how many records a job holds in memory at once.
const DefaultBatchSize = 50

// PageFunc returns up to limit records ordered by id, strictly after afterID.
type PageFunc[T any] func(ctx context.Context, afterID string, limit int) ([]T, error)

// ForEachBatch walks a keyset-paginated record set. A fetch error stops the
// walk; fn errors are returned as-is.
func ForEachBatch[T any](ctx context.Context, size int, fetch PageFunc[T], id func(T) string, fn func(ctx context.Context, batch []T) error) error {
	if size < 1 {
		size = DefaultBatchSize
	}
	after := ""
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch, err := fetch(ctx, after, size)
		if err != nil {
			return fmt.Errorf("fetch batch %d: %w", page, err)
		}
		if len(batch) == 0 {
			return nil
		}
		if err := fn(ctx, batch); err != nil {
			return err
		}
		if len(batch) < size {
			return nil
		}
		after = id(batch[len(batch)-1])
	}
}

// FanOut calls fn for every item with at most limit concurrent calls. fn
// reports its own failures; only cancellation stops the remaining items.
func FanOut[T any](ctx context.Context, limit int, items []T, fn func(ctx context.Context, item T)) error {
	if limit < 1 {
		limit = 1
	}
	var g errgroup.Group
	g.SetLimit(limit)
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}
