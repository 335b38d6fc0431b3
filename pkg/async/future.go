package async

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Error variables returned by future coordination helpers.
var (
	ErrTimeout   = errors.New("async: operation timed out")
	ErrNoFutures = errors.New("async: no futures provided")
)

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	value T
	err   error
	once  sync.Once
	done  chan struct{}
}

// Async executes fn in a new goroutine and returns a Future for its result.
// If ctx is already canceled the function is never called and the future
// resolves with ctx.Err().
func Async[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		// Early exit prevents running work for a request that is already gone
		select {
		case <-ctx.Done():
			var zero T
			f.resolve(zero, ctx.Err())
			return
		default:
		}

		v, err := fn(ctx, param)
		f.resolve(v, err)
	}()

	return f
}

// Resolved returns a future that is already complete.
func Resolved[T any](v T, err error) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	f.resolve(v, err)
	return f
}

func (f *Future[T]) resolve(v T, err error) {
	f.once.Do(func() {
		f.value = v
		f.err = err
		close(f.done)
	})
}

// Await blocks until the computation completes.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitContext blocks until the computation completes or ctx is done,
// whichever happens first.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout waits for the computation with a timeout.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// WaitAll waits for every future and returns their results in order.
// The first error encountered is returned alongside the partial results.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	if len(futures) == 0 {
		return nil, ErrNoFutures
	}

	results := make([]T, len(futures))
	for i, future := range futures {
		v, err := future.Await()
		if err != nil {
			return results, err
		}
		results[i] = v
	}
	return results, nil
}
