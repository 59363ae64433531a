package core

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers returns n, or the CPU count when n is not positive.
func Workers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// ForEach runs fn for each item in parallel. Items are split into one
// contiguous chunk per worker; fn must only touch state owned by its item.
// Goroutines check for cancellation between items. The first error cancels
// the remaining chunks and is returned.
func ForEach[T any](ctx context.Context, items []T, workers int, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return nil
	}

	numWorkers := min(Workers(workers), len(items))
	chunkSize := (len(items) + numWorkers - 1) / numWorkers

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < len(items); i += chunkSize {
		chunk := items[i:min(i+chunkSize, len(items))]
		g.Go(func() error {
			for _, item := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(ctx, item); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Map runs fn for each item in parallel and returns the results in item order.
// Every worker writes only its own slots of the result slice.
func Map[T any, R any](ctx context.Context, items []T, workers int, fn func(T) R) ([]R, error) {
	results := make([]R, len(items))
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	err := ForEach(ctx, idx, workers, func(_ context.Context, i int) error {
		results[i] = fn(items[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
