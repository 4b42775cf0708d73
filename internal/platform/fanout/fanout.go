// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The remote board
// repository uses it to fetch the tasks of every project in parallel.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while an item is waiting for a worker slot, that item
// records ctx.Err() and fn is not called for it. Items that already hold a
// slot run to completion; fn is expected to watch ctx itself.
//
// Run blocks until every item has finished. A maxWorkers below 1 is treated
// as 1. If items is empty, Run returns an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(1, maxWorkers))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return
			}
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Collect unpacks results into their values. If any item failed, Collect
// returns nil and every item error joined together.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		values = append(values, r.Value)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return values, nil
}
