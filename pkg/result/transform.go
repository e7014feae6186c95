package result

// Type-changing combinators live here as free functions: Go methods cannot
// introduce new type parameters.

// Map transforms the success value with fn; a failure passes through with its
// error untouched and fn is not invoked.
func Map[In, Out, E any](r Result[In, E], fn func(v In) Out) Result[Out, E] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	return Success[Out, E](fn(r.Result()))
}

// MapErr transforms the failure value with fn; a success passes through with
// its value untouched and fn is not invoked.
func MapErr[T, In, Out any](r Result[T, In], fn func(err In) Out) Result[T, Out] {
	if r.IsSuccess() {
		return Success[T, Out](r.Result())
	}
	return Fail[T, Out](fn(r.Err()))
}

// Then is the monadic bind: on success it returns fn(value) as-is, on failure
// it short-circuits without invoking fn. Sequential fallible steps compose by
// repeated Then calls, each skipped once any upstream step fails.
func Then[In, Out, E any](r Result[In, E], fn func(v In) Result[Out, E]) Result[Out, E] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	return fn(r.Result())
}

// And returns other on success, discarding r's value; a failure
// short-circuits, returning r's failure.
func And[In, Out, E any](r Result[In, E], other Result[Out, E]) Result[Out, E] {
	if r.IsFailure() {
		return FailFrom[In, Out](r)
	}
	return other
}

// Tee runs a side effect with the success value and returns r unchanged.
// Failures skip the side effect.
func Tee[T, E any](r Result[T, E], fn func(v T)) Result[T, E] {
	if r.IsSuccess() {
		fn(r.Result())
	}
	return r
}

// TeeErr runs a side effect with the failure value and returns r unchanged.
func TeeErr[T, E any](r Result[T, E], fn func(err E)) Result[T, E] {
	if r.IsFailure() {
		fn(r.Err())
	}
	return r
}

// Finally collapses a result to a plain value via one of the two handlers.
func Finally[In, Out, E any](r Result[In, E],
	onSuccess func(v In) Out,
	onFailure func(err E) Out) Out {

	if r.IsSuccess() {
		return onSuccess(r.Result())
	}
	return onFailure(r.Err())
}
