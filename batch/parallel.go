package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parallel splits [0, n) into ranges of chunk elements and runs fn on each,
// with at most limit ranges in flight. fn must only touch its own range.
// The first error cancels the context passed to the remaining ranges.
func Parallel(ctx context.Context, n, chunk, limit int, fn func(ctx context.Context, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	if chunk <= 0 {
		chunk = DefaultChunk
	}
	if limit < 2 || n <= chunk {
		for lo := 0; lo < n; lo += chunk {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, lo, min(lo+chunk, n)); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, lo, hi)
		})
	}
	return g.Wait()
}
