package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_SetValue(t *testing.T) {
	t.Parallel()

	b := NewBuilder[[]int, testCode]()
	b.SetValue([]int{0})

	r := b.Build()
	assert.True(t, r.IsSuccess())
	assert.Equal(t, []int{0}, r.Value())
}

func TestBuilder_Empty_IsUninitializedSuccess(t *testing.T) {
	t.Parallel()

	r := NewBuilder[string, testCode]().Build()

	assert.True(t, r.IsSuccess())
	assert.False(t, r.HasValue())
	mustBeProgrammerError(t, recoverErr(t, func() { r.Value() }), ErrUninitialized)
}

func TestBuilder_AddErrors(t *testing.T) {
	t.Parallel()

	b := NewBuilder[[]int, testCode]()
	b.Add(Ef(codeInvalidZipCode, "zip")).Add().Add(Ef(codeInvalidHouseNr, "nr"))

	assert.True(t, b.IsFailed())
	assert.Equal(t, 2, b.Len())

	r := b.Build()
	assert.Equal(t, []Error[testCode]{{Code: codeInvalidZipCode, Message: "zip"}, {Code: codeInvalidHouseNr, Message: "nr"}}, r.Errors())

	b.Add(E(codeUserNotFound))
	assert.Len(t, r.Errors(), 2, "built result must not change with the builder")
}

func TestBuilder_SetValueAfterErrorPanics(t *testing.T) {
	t.Parallel()

	b := NewBuilder[string, testCode]().Add(E(codeUserNotFound))

	mustBeProgrammerError(t, recoverErr(t, func() { b.SetValue("x") }), ErrInvalidState)
}

func TestBuilder_AddDropsValue(t *testing.T) {
	t.Parallel()

	r := NewBuilder[string, testCode]().SetValue("x").Add(E(codeUserNotFound)).Build()

	assert.True(t, r.IsFailed())
	assert.Equal(t, "", r.ValueOrDefault())
}
