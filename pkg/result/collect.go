package result

import "errors"

// Combine scans results in order and returns a success wrapping every value,
// or the first failure encountered. Entries after the first failure are not
// inspected.
func Combine[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))

	for _, r := range results {
		if r.IsFailure() {
			return FailFrom[T, []T](r)
		}
		values = append(values, r.Result())
	}

	return Success[[]T, E](values)
}

// CombineAll scans the full slice and returns a success wrapping every value,
// or a failure joining every error encountered (errors.Join order follows
// input order). Use Combine for first-failure-wins semantics.
func CombineAll[T any](results []Result[T, error]) Result[[]T, error] {
	values := make([]T, 0, len(results))
	var errs []error

	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, r.Err())
			continue
		}
		values = append(values, r.Result())
	}

	if len(errs) > 0 {
		return Fail[[]T](errors.Join(errs...))
	}
	return Success[[]T, error](values)
}

// Partition splits results into success values and failure errors, each in
// input order. len(values) + len(errs) always equals len(results).
func Partition[T, E any](results []Result[T, E]) (values []T, errs []E) {
	values = make([]T, 0, len(results))
	errs = make([]E, 0, len(results))

	for _, r := range results {
		if r.IsSuccess() {
			values = append(values, r.Result())
		} else {
			errs = append(errs, r.Err())
		}
	}

	return values, errs
}
