package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of files processed at once by default.
func DefaultWorkers() int { return runtime.NumCPU() }

// Run calls fn for every file, at most workers at a time, and returns the
// results in file order. The first error cancels the context passed to
// the remaining calls and is returned.
func Run[T any](ctx context.Context, files []File, workers int, fn func(context.Context, File) (T, error)) ([]T, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]T, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			// Skip work queued before a failure elsewhere.
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(ctx, f)
			if err != nil {
				return fmt.Errorf("%s: %w", f.Path, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
