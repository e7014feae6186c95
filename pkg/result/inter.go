package result

import "time"

type Provider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry a result or a failure
type WithFailure[T, E any] interface {
	Provider[T]
	// Err returns the failure value if the operation failed
	Err() E
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
}

var _ WithFailure[int, error] = Result[int, error]{}
