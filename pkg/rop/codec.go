package rop

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed is returned when decoding a document that is not a valid
// result envelope.
var ErrMalformed = errors.New("malformed result document")

// wireResult is the transport envelope. Tag values travel as numbers and are
// part of the wire contract.
type wireResult[C Code] struct {
	Errors *[]Error[C]     `json:"errors,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes a failure as {"errors":[...]}, a success with a value as
// {"value":...} and a success without value, or a value-less Status, as {}.
func (r Result[T, C]) MarshalJSON() ([]byte, error) {
	var w wireResult[C]
	switch {
	case r.IsFailed():
		errs := r.errors
		w.Errors = &errs
	case r.hasValue && !isUnit[T]():
		raw, err := json.Marshal(r.value)
		if err != nil {
			return nil, fmt.Errorf("marshal result value: %w", err)
		}
		w.Value = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the envelope written by MarshalJSON. An empty errors
// array, or errors together with a value, is rejected.
func (r *Result[T, C]) UnmarshalJSON(data []byte) error {
	var w wireResult[C]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}

	switch {
	case w.Errors != nil && len(*w.Errors) == 0:
		return fmt.Errorf("%w: %w", ErrMalformed, ErrNoErrors)
	case w.Errors != nil && len(w.Value) > 0:
		return fmt.Errorf("%w: both errors and value are present", ErrMalformed)
	case w.Errors != nil:
		*r = Result[T, C]{errors: *w.Errors}
	case len(w.Value) > 0:
		var v T
		if err := json.Unmarshal(w.Value, &v); err != nil {
			return fmt.Errorf("unmarshal result value: %w", err)
		}
		*r = Result[T, C]{value: v, hasValue: true}
	default:
		*r = Result[T, C]{}
	}
	return nil
}
