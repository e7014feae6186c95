package result

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil, including a typed nil pointer, map, slice,
// channel or function carried inside a non-nil interface.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Errors unpacks a joined error into its parts. A nil error yields an empty
// slice; an unjoined error yields itself.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err stems from context cancellation or a
// deadline.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
