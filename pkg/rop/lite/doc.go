// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines. It is designed for simple fan-out/fan-in
// flows without custom cancellation handling.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Validate/Try/Switch/Map/Tee: lift solo operations over channels
// - Turnout: compose stages with configurable parallelism
// - Finally: map Result[In, C] to Out on completion
//
// A cancelled context stops every stage; results in flight are dropped.
package lite
