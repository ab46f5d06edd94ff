// Package fanout runs a function over a slice with a fixed pool of workers.
// Results keep input order; a panic in one item is reported as that item's
// error and does not take down the batch.
package fanout

import (
	"context"
	"fmt"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError is the Err of an item whose function panicked.
type PanicError struct {
	Index int
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("item %d panicked: %v", e.Index, e.Value)
}

// Run executes fn for each item using at most maxWorkers goroutines and
// returns one Result per item in input order. Values of maxWorkers below 1
// are treated as 1.
//
// Items not yet started when ctx is canceled get ctx.Err() and fn is not
// called for them. Items already running finish; fn should watch ctx itself
// if it can block.
//
// An empty input returns an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	workers := min(max(maxWorkers, 1), len(items))
	next := make(chan int)

	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for idx := range next {
				results[idx] = call(ctx, idx, items[idx], fn)
			}
		})
	}

	for idx := range items {
		if ctx.Err() != nil {
			results[idx] = Result[R]{Err: ctx.Err()}
			continue
		}
		select {
		case next <- idx:
		case <-ctx.Done():
			results[idx] = Result[R]{Err: ctx.Err()}
		}
	}
	close(next)
	wg.Wait()

	return results
}

func call[T, R any](ctx context.Context, idx int, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Index: idx, Value: v}}
		}
	}()
	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
