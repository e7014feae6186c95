package chain

import (
	"context"

	"github.com/ib-77/result/pkg/result"
)

// Chain wraps a result.Result with context to enable fluent composition
type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

// Start creates a new chain from a result.Result
func Start[T, E any](ctx context.Context, res result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: res}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Success[T, E](v))
}

// Result returns the underlying result.Result
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result of the same type;
// a failed chain short-circuits without invoking it.
func (c Chain[T, E]) Then(onSuccess func(ctx context.Context, v T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T, E]) Map(onSuccess func(ctx context.Context, v T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: result.Success[T, E](onSuccess(c.ctx, c.res.Result()))}
}

// Ensure triggers side effects for success or failure without changing the
// result
func (c Chain[T, E]) Ensure(onSuccess func(ctx context.Context, v T),
	onFailure func(ctx context.Context, err E)) Chain[T, E] {

	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Result())
	}
	return c
}

// Or returns c when it succeeded, otherwise the alternative chain
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	return alternative
}

// Finally collapses the chain to a final value via the two handlers
func (c Chain[T, E]) Finally(
	onSuccess func(ctx context.Context, v T) T,
	onFailure func(ctx context.Context, err E) T) T {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Result())
	}
	return onFailure(c.ctx, c.res.Err())
}

// Then chains a function that switches the chain to a new value type
func Then[T, U, E any](c Chain[T, E], onSuccess func(ctx context.Context, v T) result.Result[U, E]) Chain[U, E] {
	if c.res.IsFailure() {
		return Chain[U, E]{ctx: c.ctx, res: result.FailFrom[T, U](c.res)}
	}
	return Chain[U, E]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// Map chains a pure transformation to a new value type
func Map[T, U, E any](c Chain[T, E], onSuccess func(ctx context.Context, v T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: result.Map(c.res, func(v T) U { return onSuccess(c.ctx, v) }),
	}
}

// Try chains a function that returns (U, error), like repo calls
func Try[T, U any](c Chain[T, error], try func(ctx context.Context, v T) (U, error)) Chain[U, error] {
	if c.res.IsFailure() {
		return Chain[U, error]{ctx: c.ctx, res: result.FailFrom[T, U](c.res)}
	}
	return Chain[U, error]{
		ctx: c.ctx,
		res: result.Try(func() (U, error) { return try(c.ctx, c.res.Result()) }),
	}
}

// Finally collapses a chain to a value of a different type
func Finally[T, U, E any](c Chain[T, E],
	onSuccess func(ctx context.Context, v T) U,
	onFailure func(ctx context.Context, err E) U) U {

	if c.res.IsSuccess() {
		return onSuccess(c.ctx, c.res.Result())
	}
	return onFailure(c.ctx, c.res.Err())
}
