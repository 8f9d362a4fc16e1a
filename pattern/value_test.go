package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Run("zero value is an empty scalar", func(t *testing.T) {
		var v Value
		assert.False(t, v.IsList())
		assert.Equal(t, "", v.String())
		assert.Nil(t, v.List())
	})

	t.Run("scalar", func(t *testing.T) {
		v := StringValue("42")
		assert.False(t, v.IsList())
		assert.Equal(t, "42", v.String())
		assert.Nil(t, v.List())
	})

	t.Run("list", func(t *testing.T) {
		v := ListValue("a", "b", "c")
		assert.True(t, v.IsList())
		assert.Equal(t, []string{"a", "b", "c"}, v.List())
		assert.Equal(t, "a/b/c", v.String())
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		v := ListValue()
		assert.True(t, v.IsList())
		assert.NotNil(t, v.List())
		assert.Empty(t, v.List())
		assert.Equal(t, "", v.String())
	})

	t.Run("clone does not alias", func(t *testing.T) {
		v := ListValue("a", "b")
		c := v.clone()
		c.List()[0] = "mutated"
		assert.Equal(t, []string{"a", "b"}, v.List())
	})
}
