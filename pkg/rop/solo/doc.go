// Package solo contains single-value, synchronous ROP primitives that operate
// on rop.Result. These functions form the building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct rop.Result
// - Validate/AndValidate: apply a validator producing a failure on invalid input
// - ValidateAll: run several validators and accumulate every failure
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try/FailOnError: turn Go errors into failures with a given tag
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
//
// Failures travel unchanged: every error record keeps its tag, message and
// position.
package solo
