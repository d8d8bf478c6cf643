// Package chain provides a fluent wrapper around Result[T, C]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T, C] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, C] or value
// - Then: switch to a new Result[U, C] via a function
// - ThenTry: call a function (U, error) and convert the error to a tagged failure
// - Map: transform the successful value (T -> U)
// - Validate: accumulate validation failures
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
