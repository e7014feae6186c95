package pipe

import (
	"context"

	"github.com/ib-77/result/pkg/result"
)

// FinallyHandlers collapse each streamed result to a plain value.
type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, v In) Out
	OnFailure func(ctx context.Context, err E) Out
}

// ToChan feeds values into a result stream as successes. The returned channel
// closes after the last value or when ctx is cancelled.
func ToChan[T, E any](ctx context.Context, values ...T) <-chan result.Result[T, E] {
	in := make(chan result.Result[T, E])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- result.Success[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChan drains a channel into a slice, stopping early on cancellation.
func FromChan[T any](ctx context.Context, in <-chan T) []T {
	out := make([]T, 0)

	for {
		select {
		case <-ctx.Done():
			return out
		case v, ok := <-in:
			if !ok {
				return out
			}
			out = append(out, v)
		}
	}
}

// Finally maps a result stream to a stream of plain values via the handlers.
func Finally[In, Out, E any](ctx context.Context, inputCh <-chan result.Result[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-inputCh:
				if !ok {
					return
				}

				v := result.Finally(r,
					func(v In) Out { return handlers.OnSuccess(ctx, v) },
					func(err E) Out { return handlers.OnFailure(ctx, err) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
