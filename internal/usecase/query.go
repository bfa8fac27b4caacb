package usecase

import (
	"context"
	"errors"
	"sync"
)

// QueryState is a snapshot of a Query.
type QueryState[T any] struct {
	Data    T
	Loaded  bool
	Loading bool
	Err     error
}

// Query is a cancellable fetch of a single resource. Starting a new load
// cancels the previous one; results of superseded loads are dropped.
type Query[T any] struct {
	fetch func(ctx context.Context) (T, error)

	mu         sync.Mutex
	state      QueryState[T]
	cancel     context.CancelFunc
	generation uint64
}

func NewQuery[T any](fetch func(ctx context.Context) (T, error)) *Query[T] {
	return &Query[T]{fetch: fetch}
}

// Load fetches the resource. A load superseded by a newer one, or aborted,
// returns nil and leaves state to the newer load.
func (q *Query[T]) Load(ctx context.Context) (T, error) {
	q.mu.Lock()
	if q.cancel != nil {
		q.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	q.cancel = cancel
	q.generation++
	gen := q.generation
	q.state.Loading = true
	q.mu.Unlock()
	defer cancel()

	data, err := q.fetch(reqCtx)

	q.mu.Lock()
	defer q.mu.Unlock()
	if gen != q.generation {
		var zero T
		return zero, nil
	}
	q.cancel = nil
	q.state.Loading = false
	if err != nil {
		if reqCtx.Err() != nil && errors.Is(err, context.Canceled) {
			return q.state.Data, nil
		}
		q.state.Err = err
		return q.state.Data, err
	}
	q.state.Data = data
	q.state.Loaded = true
	q.state.Err = nil
	return data, nil
}

// Refetch reloads the resource with a fresh context derived from ctx.
func (q *Query[T]) Refetch(ctx context.Context) error {
	_, err := q.Load(ctx)
	return err
}

// Abort cancels the in-flight load, if any.
func (q *Query[T]) Abort() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.cancel != nil {
		q.cancel()
		q.cancel = nil
		q.generation++
		q.state.Loading = false
	}
}

func (q *Query[T]) State() QueryState[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}
