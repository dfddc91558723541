package ymusic

import (
	"context"
	"fmt"
)

// Result is the outcome of an asynchronous operation.
type Result[T any] struct {
	// Value is the produced value, the zero value on failure.
	Value T
	// Err is the failure, nil on success.
	Err error
}

// Future is a handle to an operation running in its own goroutine.
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
}

// runAsync starts fn in a goroutine and returns its future.
// A panic in fn is recovered and reported as ErrPanic.
func runAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(future.done)

		defer func() {
			if r := recover(); r != nil {
				var zero T

				future.result = Result[T]{Value: zero, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
			}
		}()

		value, err := fn(ctx)
		future.result = Result[T]{Value: value, Err: err}
	}()

	return future
}

// Done returns a channel that is closed when the operation completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the operation completes or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result.Value, f.result.Err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// waitOrRelease is Wait for values that own resources. When Wait gives up
// because ctx is done, release is called with the value once the operation succeeds.
func (f *Future[T]) waitOrRelease(ctx context.Context, release func(T)) (T, error) {
	value, err := f.Wait(ctx)
	if err != nil {
		go func() {
			<-f.done

			if f.result.Err == nil {
				release(f.result.Value)
			}
		}()
	}

	return value, err
}

// Result returns the outcome and true once the operation has completed.
func (f *Future[T]) Result() (Result[T], bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return Result[T]{}, false
	}
}
