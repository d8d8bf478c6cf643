package rop

import "fmt"

// Error is one categorized failure: a tag and a human-readable message.
// Two records are equal when both fields are equal.
type Error[C Code] struct {
	Code    C      `json:"code"`
	Message string `json:"message"`
}

// E returns a record for code with an empty message.
func E[C Code](code C) Error[C] {
	return Error[C]{Code: code}
}

// Ef returns a record for code with a formatted message.
func Ef[C Code](code C, format string, args ...any) Error[C] {
	return Error[C]{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithMessage returns a copy of e with the message replaced.
func (e Error[C]) WithMessage(message string) Error[C] {
	e.Message = message
	return e
}

// Is reports whether the record's tag belongs to flag.
func (e Error[C]) Is(flag C) bool {
	return HasFlag(e.Code, flag)
}

// String renders the record as "Error { Code = <name>, Message = <message> }".
func (e Error[C]) String() string {
	return fmt.Sprintf("Error { Code = %s, Message = %s }", e.Code.String(), e.Message)
}
