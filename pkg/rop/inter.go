package rop

// Outcome is the value-independent view of a Result, for consumers that only
// look at success and errors.
type Outcome[C Code] interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailed returns true if the operation produced at least one error
	IsFailed() bool
	// Errors returns the error records of a failure
	Errors() []Error[C]
	// ErrorsText renders the error records for diagnostics
	ErrorsText() string
	// TryAsValidationErrors groups the errors when all belong to flag
	TryAsValidationErrors(flag C) (*ValidationErrors, bool)
	// UnhandledError builds the programmer-error signal for unmatched errors
	UnhandledError(prefix string) *UnhandledError
}

// ValueProvider exposes the success value of a Result.
type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// ValueOrDefault returns the value or the zero value of T
	ValueOrDefault() T
	// HasValue reports whether a success value was set
	HasValue() bool
}
