// Package schema describes the rop wire envelope as JSON schema and validates
// payloads against it.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resourceName = "rop-result.json"

var ErrInvalidPayload = errors.New("payload does not match the result envelope")

type wireError struct {
	Code    int64  `json:"code" jsonschema:"minimum=0"`
	Message string `json:"message"`
}

type envelope struct {
	Errors []wireError `json:"errors,omitempty" jsonschema:"minItems=1"`
	Value  any         `json:"value,omitempty"`
}

// Envelope returns the JSON schema of a serialized rop.Result. A payload
// carries either a non-empty errors list or an optional value, never both.
func Envelope() *invopop.Schema {
	r := &invopop.Reflector{ExpandedStruct: true}
	s := r.Reflect(&envelope{})
	s.Title = "Result"
	s.Description = "Outcome of an operation: success with an optional value, or an ordered list of errors."
	s.Not = &invopop.Schema{Required: []string{"errors", "value"}}
	return s
}

type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	raw, err := json.Marshal(Envelope())
	if err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(resourceName, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	sch, err := compiler.Compile(resourceName)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: sch}, nil
}

// Validate checks a serialized result. Mismatches wrap ErrInvalidPayload.
func (v *Validator) Validate(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := v.schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("%w: %s", ErrInvalidPayload, ve.Error())
		}
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
