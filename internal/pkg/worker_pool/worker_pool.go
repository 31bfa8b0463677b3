package worker_pool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForEach invokes fn once per index in [0, n) using at most workers
// concurrent goroutines. Every invocation owns its index exclusively, so
// callers can write results into a preallocated slice without locking and
// output order stays independent of completion order.
func ForEach(ctx context.Context, n, workers int, fn func(ctx context.Context, i int)) {
	if n == 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(ctx, i)
			return nil
		})
	}
	// Tasks never return errors; Wait only synchronizes.
	_ = g.Wait()
}
