package async

import (
	"context"
	"time"
)

// Future represents the result of an asynchronous computation.
//
// The computation keeps running even when every caller stops awaiting it:
// abandoning a Future never cancels the underlying function. Cancellation
// happens only through the context passed to Run.
type Future[R any] struct {
	value R
	err   error
	done  chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[R]) Await() (R, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for completion up to the given timeout.
// On timeout it returns ErrTimeout; the computation itself keeps running.
func (f *Future[R]) AwaitWithTimeout(timeout time.Duration) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero R
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[R]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Run executes fn asynchronously and returns a Future for its result.
// The function receives the provided context and parameter.
func Run[P, R any](ctx context.Context, param P, fn func(context.Context, P) (R, error)) *Future[R] {
	f := &Future[R]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents doing work when context is pre-canceled.
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}

// Exec executes a function asynchronously that only returns an error.
func Exec[P any](ctx context.Context, param P, fn func(context.Context, P) error) *Future[struct{}] {
	return Run(ctx, param, func(ctx context.Context, p P) (struct{}, error) {
		return struct{}{}, fn(ctx, p)
	})
}

// AwaitAll waits for all futures to complete and returns the first error
// encountered, if any.
func AwaitAll[R any](futures ...*Future[R]) error {
	var firstErr error
	for _, future := range futures {
		if _, err := future.Await(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
