package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/result/pkg/result"
)

// Stage processes one result and delivers the outcome on a one-shot channel.
// The channel closes without a value when ctx is cancelled before the stage
// ran.
type Stage[In, Out, E any] func(ctx context.Context, input result.Result[In, E]) <-chan result.Result[Out, E]

// Lift turns a synchronous result transformation into a Stage. The returned
// channel is buffered, so an abandoned stage never leaks its goroutine.
func Lift[In, Out, E any](apply func(ctx context.Context, input result.Result[In, E]) result.Result[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, input result.Result[In, E]) <-chan result.Result[Out, E] {
		out := make(chan result.Result[Out, E], 1)

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}
			out <- apply(ctx, input)
		}()

		return out
	}
}

// Validate lifts a validation over the stream; failures pass through.
func Validate[T any](validate func(ctx context.Context, v T) (valid bool, errMsg string)) Stage[T, T, error] {
	return Lift(func(ctx context.Context, input result.Result[T, error]) result.Result[T, error] {
		if input.IsFailure() {
			return input
		}
		return result.Validate(input.Result(), func(v T) (bool, string) {
			return validate(ctx, v)
		})
	})
}

// Then lifts a result-returning function over the stream; failures
// short-circuit.
func Then[In, Out, E any](onSuccess func(ctx context.Context, v In) result.Result[Out, E]) Stage[In, Out, E] {
	return Lift(func(ctx context.Context, input result.Result[In, E]) result.Result[Out, E] {
		return result.Then(input, func(v In) result.Result[Out, E] {
			return onSuccess(ctx, v)
		})
	})
}

// Map lifts a pure transformation over the stream; failures pass through.
func Map[In, Out, E any](onSuccess func(ctx context.Context, v In) Out) Stage[In, Out, E] {
	return Lift(func(ctx context.Context, input result.Result[In, E]) result.Result[Out, E] {
		return result.Map(input, func(v In) Out {
			return onSuccess(ctx, v)
		})
	})
}

// Try lifts a function returning (Out, error) over the stream; a returned
// error becomes a failure, upstream failures short-circuit.
func Try[In, Out any](onTryExecute func(ctx context.Context, v In) (Out, error)) Stage[In, Out, error] {
	return Lift(func(ctx context.Context, input result.Result[In, error]) result.Result[Out, error] {
		return result.Then(input, func(v In) result.Result[Out, error] {
			return result.Try(func() (Out, error) {
				return onTryExecute(ctx, v)
			})
		})
	})
}

// Tee lifts a side effect over the stream without changing the results.
func Tee[T, E any](sideEffect func(ctx context.Context, r result.Result[T, E])) Stage[T, T, E] {
	return Lift(func(ctx context.Context, input result.Result[T, E]) result.Result[T, E] {
		sideEffect(ctx, input)
		return input
	})
}

// Run executes a same-typed stage over the input channel with the given
// number of workers.
func Run[T, E any](ctx context.Context, inputCh <-chan result.Result[T, E],
	stage Stage[T, T, E], workers int) <-chan result.Result[T, E] {
	return Turnout(ctx, inputCh, stage, workers)
}

// Turnout fans a stage out over the given number of workers and merges their
// output. The returned channel closes once every worker drained the input or
// ctx was cancelled. Output order is not guaranteed across workers.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan result.Result[In, E],
	stage Stage[In, Out, E], workers int) <-chan result.Result[Out, E] {

	out := make(chan result.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go work(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out, E any](ctx context.Context, inputCh <-chan result.Result[In, E],
	outCh chan<- result.Result[Out, E], stage Stage[In, Out, E], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case pr, running := <-stage(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					return
				case outCh <- pr:
				}
			}
		}
	}
}
