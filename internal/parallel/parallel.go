// Package parallel provides a fixed-width data-parallel loop used by the
// distance builders.
package parallel

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// For executes body(i) for every i in [0, n), spread across at most workers
// goroutines. Indices are claimed from a shared atomic counter, so load
// balances even when per-index cost is uneven.
//
// workers <= 0 selects runtime.GOMAXPROCS(0); workers == 1 (or n == 1)
// degrades to a plain sequential loop with identical results.
//
// The context is checked once before any work starts. A running loop is
// never interrupted: body is invoked exactly once per index, or not at all.
//
// body must be safe to call concurrently for distinct indices.
func For(ctx context.Context, workers, n int, body func(i int)) error {
	if n <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			body(i)
		}
		return nil
	}

	var next atomic.Int64
	g := new(errgroup.Group)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return nil
				}
				body(i)
			}
		})
	}
	return g.Wait()
}
