// Package chain provides a fluent, context-carrying wrapper around
// Result[T, E] for building synchronous pipelines of fallible steps.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: compose a result-returning step (free Then switches the value type)
// - Map: transform the successful value (free Map switches the value type)
// - Try: call a function (U, error) and convert the error to a failure
// - Ensure: run side effects without changing the result
// - Or: fall back to an alternative chain on failure
// - Finally: collapse the chain to a concrete value via handlers
//
// Every step short-circuits once the chain holds a failure, so callers write
// the happy path once and inspect the outcome at the end.
package chain
