package rop

import (
	"log/slog"
)

// Result is the outcome of an operation: either a success, optionally
// carrying a value, or a failure carrying one or more error records in the
// order they were produced.
//
// A Result is immutable once constructed and safe to share between
// goroutines. The zero Result is a success whose value was never set.
type Result[T any, C Code] struct {
	errors   []Error[C]
	value    T
	hasValue bool
}

// Status is a Result that carries no value.
type Status[C Code] = Result[Unit, C]

// Ok returns the canonical value-less success.
func Ok[C Code]() Status[C] {
	return Status[C]{hasValue: true}
}

// Success returns a success carrying value.
func Success[T any, C Code](value T) Result[T, C] {
	return Result[T, C]{value: value, hasValue: true}
}

// Fail returns a failure with a single record for code and an empty message.
func Fail[T any, C Code](code C) Result[T, C] {
	return FailError[T](E(code))
}

// FailWith returns a failure with a single record (code, message).
func FailWith[T any, C Code](code C, message string) Result[T, C] {
	return FailError[T](Error[C]{Code: code, Message: message})
}

// FailError returns a failure with the single record e.
func FailError[T any, C Code](e Error[C]) Result[T, C] {
	return Result[T, C]{errors: []Error[C]{e}}
}

// FailErrors returns a failure carrying errs in the given order. It panics
// with ErrNoErrors when errs is empty: an empty failure is not a valid state.
func FailErrors[T any, C Code](errs []Error[C]) Result[T, C] {
	if len(errs) == 0 {
		panic(ErrNoErrors)
	}
	cp := make([]Error[C], len(errs))
	copy(cp, errs)
	return Result[T, C]{errors: cp}
}

// Failed is Fail for value-less results.
func Failed[C Code](code C) Status[C] {
	return Fail[Unit](code)
}

// FailedWith is FailWith for value-less results.
func FailedWith[C Code](code C, message string) Status[C] {
	return FailWith[Unit](code, message)
}

// FailedError is FailError for value-less results.
func FailedError[C Code](e Error[C]) Status[C] {
	return FailError[Unit](e)
}

// FailedErrors is FailErrors for value-less results.
func FailedErrors[C Code](errs []Error[C]) Status[C] {
	return FailErrors[Unit](errs)
}

// Convert re-types a failure to another value type, keeping its records.
// It panics when r is a success, since there is no value to convert.
func Convert[U any, T any, C Code](r Result[T, C]) Result[U, C] {
	if r.IsSuccess() {
		panic(errConvertSuccess)
	}
	return Result[U, C]{errors: r.errors}
}

// With returns a new failure holding r's records followed by e. r itself is
// left unchanged. Applied to a success, the value is dropped.
func (r Result[T, C]) With(e Error[C]) Result[T, C] {
	errs := make([]Error[C], 0, len(r.errors)+1)
	errs = append(errs, r.errors...)
	return Result[T, C]{errors: append(errs, e)}
}

// WithCode is With for a (code, message) pair.
func (r Result[T, C]) WithCode(code C, message string) Result[T, C] {
	return r.With(Error[C]{Code: code, Message: message})
}

func (r Result[T, C]) IsSuccess() bool {
	return len(r.errors) == 0
}

func (r Result[T, C]) IsFailed() bool {
	return len(r.errors) > 0
}

// Errors returns a copy of the failure's records. It panics with
// ErrInvalidState on a success.
func (r Result[T, C]) Errors() []Error[C] {
	errs := r.mustErrors()
	out := make([]Error[C], len(errs))
	copy(out, errs)
	return out
}

// Code returns the tag of the only error. It panics with ErrInvalidState on a
// success and with ErrMultipleErrors when more than one error is present.
func (r Result[T, C]) Code() C {
	errs := r.mustErrors()
	if len(errs) > 1 {
		panic(ErrMultipleErrors)
	}
	return errs[0].Code
}

// HasCode reports whether r failed with exactly one error tagged code.
func (r Result[T, C]) HasCode(code C) bool {
	return len(r.errors) == 1 && r.errors[0].Code == code
}

// ErrorsText renders every record on its own line, in order. It panics with
// ErrInvalidState on a success.
func (r Result[T, C]) ErrorsText() string {
	return errorsText(r.mustErrors())
}

// Err returns nil on success and a *FailureError otherwise.
func (r Result[T, C]) Err() error {
	if r.IsSuccess() {
		return nil
	}
	return &FailureError[C]{errs: r.errors}
}

// Value returns the success value. It panics with ErrInvalidState on a
// failure and with ErrUninitialized when the value was never set.
func (r Result[T, C]) Value() T {
	if r.IsFailed() {
		panic(errValueOfFailure)
	}
	if !r.initialized() {
		panic(errValueNotSet)
	}
	return r.value
}

// ValueOrDefault returns the success value, or the zero value of T when r
// failed or its value was never set.
func (r Result[T, C]) ValueOrDefault() T {
	if r.IsFailed() {
		var zero T
		return zero
	}
	return r.value
}

// HasValue reports whether r is a success with its value set.
func (r Result[T, C]) HasValue() bool {
	return r.IsSuccess() && r.initialized()
}

// UnhandledError builds the signal for a consumer that met an error class it
// does not handle. The message is prefix + "Unhandled error(s): " + ErrorsText.
func (r Result[T, C]) UnhandledError(prefix string) *UnhandledError {
	return &UnhandledError{msg: prefix + "Unhandled error(s): " + r.ErrorsText()}
}

// String returns "Ok" for a success and ErrorsText otherwise.
func (r Result[T, C]) String() string {
	if r.IsSuccess() {
		return "Ok"
	}
	return errorsText(r.errors)
}

// LogValue implements slog.LogValuer.
func (r Result[T, C]) LogValue() slog.Value {
	if r.IsSuccess() {
		return slog.GroupValue(slog.Bool("success", true))
	}
	codes := make([]string, len(r.errors))
	for i, e := range r.errors {
		codes[i] = e.Code.String()
	}
	return slog.GroupValue(
		slog.Bool("success", false),
		slog.Any("codes", codes),
		slog.String("errors", errorsText(r.errors)),
	)
}

func (r Result[T, C]) mustErrors() []Error[C] {
	if r.IsSuccess() {
		panic(errErrorsOfSuccess)
	}
	return r.errors
}

func (r Result[T, C]) initialized() bool {
	return r.hasValue || isUnit[T]()
}
