package rop

import (
	"errors"
	"fmt"
	"strings"
)

// Programmer-error conditions. Accessors panic with errors wrapping these
// values; they are never part of the normal failure channel.
var (
	ErrInvalidState   = errors.New("invalid result state")
	ErrMultipleErrors = errors.New("sequence contains more than one element")
	ErrUninitialized  = errors.New("uninitialized result value")
	ErrNoErrors       = errors.New("failure requires at least one error")
	ErrUnhandled      = errors.New("unhandled error")
)

var (
	errErrorsOfSuccess = fmt.Errorf("%w: attempt to access the errors of a success result", ErrInvalidState)
	errValueOfFailure  = fmt.Errorf("%w: attempt to access the value of a failed result", ErrInvalidState)
	errValueNotSet     = fmt.Errorf("%w: attempt to access the value of an uninitialized result", ErrUninitialized)
	errConvertSuccess  = fmt.Errorf("%w: attempt to convert a success result", ErrInvalidState)
)

// FailureError adapts the errors of a failed Result to the error interface.
type FailureError[C Code] struct {
	errs []Error[C]
}

func (e *FailureError[C]) Error() string {
	return errorsText(e.errs)
}

// Errors returns a copy of the failure's records.
func (e *FailureError[C]) Errors() []Error[C] {
	out := make([]Error[C], len(e.errs))
	copy(out, e.errs)
	return out
}

// UnhandledError signals that a consumer met an error class it has no
// handling for. It is a programmer error, not a domain failure.
type UnhandledError struct {
	msg string
}

func (e *UnhandledError) Error() string {
	return e.msg
}

func (e *UnhandledError) Unwrap() error {
	return ErrUnhandled
}

// IsProgrammerError reports whether err is one of the conditions raised by
// misusing a Result or by an unhandled error class.
func IsProgrammerError(err error) bool {
	return errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrMultipleErrors) ||
		errors.Is(err, ErrUninitialized) ||
		errors.Is(err, ErrNoErrors) ||
		errors.Is(err, ErrUnhandled)
}

// AsProgrammerError converts a recovered panic value into an error when it is
// a programmer-error condition of this package.
func AsProgrammerError(recovered any) (error, bool) {
	err, ok := recovered.(error)
	if !ok || !IsProgrammerError(err) {
		return nil, false
	}
	return err, true
}

func errorsText[C Code](errs []Error[C]) string {
	var b strings.Builder
	for i, e := range errs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.String())
	}
	return b.String()
}
