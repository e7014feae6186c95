// Package result provides a generic two-variant Result[T, E] value and a
// combinator library for composing fallible operations without intermediate
// error checks.
//
// Highlights:
// - Success/Fail: construct a Result[T, E]
// - IsSuccess/IsFailure: inspect the variant
// - Unwrap/UnwrapOr/UnwrapOrElse/UnwrapErr/Expect: extract payloads
// - Map/MapErr/Then/And/Or/OrElse: transform and compose results
// - Combine/CombineAll/Partition: aggregate slices of results
// - FromNullable/FromPredicate/Try/Catch/CatchAsync: build results at the
//   boundary with nil-returning, error-returning or panicking code
//
// A failure short-circuits every combinator that expects a success, so a
// pipeline of Map/Then calls needs exactly one inspection at the end. Only the
// Unwrap family can panic, and only when asked for the payload the variant
// does not hold.
//
// For fluent synchronous chains see package chain; for channel-lifted
// concurrent pipelines see package pipe.
package result
