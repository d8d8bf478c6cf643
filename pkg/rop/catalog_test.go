package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UserNotFound", codeUserNotFound.String())
	assert.Equal(t, "InvalidZipCode", codeInvalidZipCode.String())
	assert.Equal(t, "ValidationError", codeValidation.String())
	assert.Equal(t, "4096", testCode(4096).String())

	c, ok := testCatalog.Parse("InvalidHouseNr")
	require.True(t, ok)
	assert.Equal(t, codeInvalidHouseNr, c)

	_, ok = testCatalog.Parse("Missing")
	assert.False(t, ok)
}

func TestCatalog_Categories(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []testCode{codeValidation}, testCatalog.Categories(codeInvalidZipCode))
	assert.Empty(t, testCatalog.Categories(codeNoUsersAtAddress))
	assert.Empty(t, testCatalog.Categories(codeValidation))
	assert.True(t, testCatalog.IsCategory(codeValidation))
	assert.False(t, testCatalog.IsCategory(codeInvalidZipCode))
	assert.Len(t, testCatalog.Definitions(), 5)
}

func TestNewCatalog_RejectsInvalidDefinitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		defs []Definition[testCode]
	}{
		{
			name: "category with several bits",
			defs: []Definition[testCode]{Category("Bad", testCode(3))},
		},
		{
			name: "zero category",
			defs: []Definition[testCode]{Category("Zero", testCode(0))},
		},
		{
			name: "category declared twice",
			defs: []Definition[testCode]{Category("A", testCode(1024)), Category("B", testCode(1024))},
		},
		{
			name: "duplicate value",
			defs: []Definition[testCode]{Base("A", testCode(1)), Base("B", testCode(1))},
		},
		{
			name: "duplicate name",
			defs: []Definition[testCode]{Base("A", testCode(1)), Base("A", testCode(2))},
		},
		{
			name: "empty name",
			defs: []Definition[testCode]{Base("", testCode(1))},
		},
		{
			name: "code without ordinal",
			defs: []Definition[testCode]{Category("V", testCode(1024)), Base("OnlyCategory", testCode(1024))},
		},
		{
			name: "composite without ordinal",
			defs: []Definition[testCode]{Category("V", testCode(1024)), Category("W", testCode(2048)), Base("Both", testCode(3072))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCatalog(tt.defs...)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestMustCatalog_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustCatalog(Base("A", testCode(1)), Base("B", testCode(1)))
	})
}

func TestNewCatalog_SameOrdinalDifferentCategory(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(
		Base("NoUsersAtAddress", testCode(2)),
		Category("ValidationError", testCode(1024)),
		Base("InvalidZipCode", testCode(2|1024)),
	)
	require.NoError(t, err)
	assert.Equal(t, "InvalidZipCode", c.Name(testCode(1026)))
}
