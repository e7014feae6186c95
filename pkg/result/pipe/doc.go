// Package pipe lifts result combinators over channels for concurrent
// fan-out/fan-in pipelines.
//
// Common usage:
// - ToChan/FromChan: move between slices and result streams
// - Validate/Then/Map/Try/Tee: lift synchronous combinators into stages
// - Lift: build a custom stage from any result transformation
// - Run/Turnout: execute a stage with a fixed number of workers
// - Finally: collapse a result stream to plain values via handlers
//
// Stages honor context cancellation between every receive and send; a
// cancelled pipeline closes its output channel without draining the input.
// Output order across workers is not guaranteed.
package pipe
