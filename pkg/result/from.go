package result

import (
	"context"
	"errors"
	"fmt"
)

// ErrNilValue is the default failure of FromNullable.
var ErrNilValue = errors.New("value is nil")

// FromNullable returns a success wrapping v when it is non-nil, including
// typed nil pointers behind an interface. Zero values such as 0 or "" are
// successes. The optional msg overrides the default error text.
func FromNullable[T any](v T, msg ...string) Result[T, error] {
	if IsNil(v) {
		if len(msg) > 0 {
			return Fail[T](errors.New(msg[0]))
		}
		return Fail[T](ErrNilValue)
	}
	return Success[T, error](v)
}

// FromPredicate returns a success wrapping v when pred(v) holds, otherwise a
// failure with the given message.
func FromPredicate[T any](v T, pred func(v T) bool, msg string) Result[T, error] {
	if pred(v) {
		return Success[T, error](v)
	}
	return Fail[T](errors.New(msg))
}

// FromPredicateFn is FromPredicate with the error text built from the failing
// value. msgFn is invoked only when the predicate rejects v.
func FromPredicateFn[T any](v T, pred func(v T) bool, msgFn func(v T) string) Result[T, error] {
	if pred(v) {
		return Success[T, error](v)
	}
	return Fail[T](errors.New(msgFn(v)))
}

// Validate returns a success wrapping v when validate accepts it, otherwise a
// failure built from the returned message.
func Validate[T any](v T, validate func(v T) (valid bool, errMsg string)) Result[T, error] {
	if valid, errMsg := validate(v); !valid {
		return Fail[T](errors.New(errMsg))
	}
	return Success[T, error](v)
}

// Try adapts an error-returning function into a Result.
func Try[T any](fn func() (T, error)) Result[T, error] {
	v, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Success[T, error](v)
}

// Catch is Try with panic recovery: a panic inside fn becomes a failure, with
// non-error panic values coerced into an error keeping their string form.
// Catch itself never panics; it is the designated boundary between panicking
// code and result-based code.
func Catch[T any](fn func() (T, error)) (res Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](asError(p))
		}
	}()
	return Try(fn)
}

// CatchAsync runs fn on its own goroutine and returns a one-shot channel that
// always receives exactly one Result, then closes. Panics are converted as in
// Catch, so the channel never stays empty. Cancellation is fn's business via
// ctx; the wrapper only projects the outcome.
func CatchAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) <-chan Result[T, error] {
	out := make(chan Result[T, error], 1)

	go func() {
		defer close(out)
		out <- Catch(func() (T, error) {
			return fn(ctx)
		})
	}()

	return out
}

func asError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("%v", p)
}
