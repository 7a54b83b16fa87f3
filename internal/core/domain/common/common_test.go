package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	assert := require.New(t)

	optionalInt := NewOptional(42, true)
	assert.Equal(42, optionalInt.Value)
	assert.True(optionalInt.IsPresent)
	assert.Equal("[42]", optionalInt.String())

	optionalString := NewOptional("foo", false)
	assert.False(optionalString.IsPresent)
	assert.Equal("[-]", optionalString.String())
}

func TestOptionalPointer(t *testing.T) {
	assert := require.New(t)

	assert.Nil(Optional[string]{}.Pointer())

	p := Some("handle").Pointer()
	assert.NotNil(p)
	assert.Equal("handle", *p)
}
