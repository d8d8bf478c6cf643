package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/results/pkg/rop"
)

type code uint16

func (c code) String() string { return "code" }

func TestEnvelope_Shape(t *testing.T) {
	t.Parallel()

	s := Envelope()
	assert.Equal(t, "Result", s.Title)

	_, hasErrors := s.Properties.Get("errors")
	_, hasValue := s.Properties.Get("value")
	assert.True(t, hasErrors)
	assert.True(t, hasValue)
	assert.Empty(t, s.Required)
}

func TestValidator_AcceptsResults(t *testing.T) {
	t.Parallel()

	v, err := NewValidator()
	require.NoError(t, err)

	payloads := []any{
		rop.Ok[code](),
		rop.Success[[]int, code]([]int{0}),
		rop.Success[string, code]("John"),
		rop.FailErrors[int]([]rop.Error[code]{rop.Ef(code(1026), "m1"), rop.E(code(1))}),
	}
	for _, p := range payloads {
		raw, err := json.Marshal(p)
		require.NoError(t, err)
		assert.NoError(t, v.Validate(raw), string(raw))
	}
}

func TestValidator_RejectsMalformed(t *testing.T) {
	t.Parallel()

	v, err := NewValidator()
	require.NoError(t, err)

	for _, raw := range []string{
		`{"errors":[]}`,
		`{"errors":[{"code":1,"message":"x"}],"value":1}`,
		`{"errors":[{"code":-1,"message":"x"}]}`,
		`{"errors":[{"message":"x"}]}`,
		`{"extra":true}`,
		`[1]`,
		`{`,
	} {
		assert.ErrorIs(t, v.Validate([]byte(raw)), ErrInvalidPayload, raw)
	}
}
