package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach runs action for each element of in with at most workers goroutines
// in flight. A non-positive workers means no limit. The first error cancels
// the context passed to the remaining actions and is returned.
func ForEach[T any](ctx context.Context, in []T, workers int, action func(context.Context, T) error) error {
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, v := range in {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return action(gctx, v)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Map applies mapFn to each element of in in parallel, preserving order.
// The workers parameter controls the number of goroutines.
func Map[T any, R any](ctx context.Context, in []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(in))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for idx, v := range in {
		g.Go(func() error {
			r, err := mapFn(ctx, v)
			if err != nil {
				return err
			}
			out[idx] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
