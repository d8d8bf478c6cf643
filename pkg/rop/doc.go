// Package rop defines Result, the outcome of an operation that either
// succeeds, optionally with a value, or fails with one or more categorized
// error records.
//
// Error tags are integer bit sets declared by the domain (see Code and
// Catalog). Category markers are single bits shared by composite tags, which
// lets a consumer ask whether every error of a failure is, say, a validation
// problem with TryAsValidationErrors.
//
// Construction:
// - Ok, Success: successes without and with a value
// - Fail, FailWith, FailError, FailErrors: failures from a tag, a (tag, message)
// pair, a record or a record list (Failed* for value-less results)
// - With, WithCode: append an error without touching the original
// - Builder: build a result incrementally before publishing it
//
// Accessors that do not match the result's state (Errors on a success, Value
// on a failure, Code with several errors) panic: they indicate a defect in
// the caller, not a failure of the operation.
package rop
