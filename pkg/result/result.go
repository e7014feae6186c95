package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure value of type E,
// never both. The zero Result is a failure carrying E's zero value; prefer the
// Success and Fail constructors.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

// FailureError is the panic payload of Unwrap/Expect called on a failure.
type FailureError[E any] struct {
	Message string
	Err     E
}

func (e FailureError[E]) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unwrap of failure result: %v", e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// SuccessError is the panic payload of UnwrapErr called on a success.
type SuccessError[T any] struct {
	Value T
}

func (e SuccessError[T]) Error() string {
	return fmt.Sprintf("unwrap of error on success result: %v", e.Value)
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failure, keeping its error, id and creation time.
// Calling it on a success is a programmer error and panics.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	if from.isSuccess {
		panic(SuccessError[In]{Value: from.value})
	}
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Result returns the success value, or T's zero value for a failure.
func (r Result[T, E]) Result() T {
	return r.value
}

// Err returns the failure value, or E's zero value for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns the success value and true, or T's zero value and false.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isSuccess
}

// GetErr returns the failure value and true, or E's zero value and false.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.isSuccess
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt time of construction (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the success value. It panics with FailureError[E] on a
// failure; call it only where the variant is known or where a failure must
// terminate the current call stack.
func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		panic(FailureError[E]{Err: r.err})
	}
	return r.value
}

// UnwrapOr returns the success value, or def for a failure. Never panics.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.isSuccess {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value, or fn(err) for a failure. The lazy
// default is invoked only on the failure path. Never panics.
func (r Result[T, E]) UnwrapOrElse(fn func(err E) T) T {
	if !r.isSuccess {
		return fn(r.err)
	}
	return r.value
}

// UnwrapErr returns the failure value. It panics with SuccessError[T] on a
// success, the inverse contract of Unwrap.
func (r Result[T, E]) UnwrapErr() E {
	if r.isSuccess {
		panic(SuccessError[T]{Value: r.value})
	}
	return r.err
}

// Expect is Unwrap with a caller-supplied diagnostic prefixed to the panic.
func (r Result[T, E]) Expect(msg string) T {
	if !r.isSuccess {
		panic(FailureError[E]{Message: msg, Err: r.err})
	}
	return r.value
}

// Or returns r if it is a success, otherwise other.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.isSuccess {
		return r
	}
	return other
}

// OrElse returns r if it is a success, otherwise fn(err). The recovery
// function is invoked only on the failure path.
func (r Result[T, E]) OrElse(fn func(err E) Result[T, E]) Result[T, E] {
	if r.isSuccess {
		return r
	}
	return fn(r.err)
}
