package nonempty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmpty(t *testing.T) {
	_, err := New([]int{})
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = New[string](nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNewPreservesOrderAndCopies(t *testing.T) {
	in := []string{"b", "a", "b"}
	s, err := New(in)
	require.NoError(t, err)
	in[0] = "z"

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "b", s.First())
	assert.Equal(t, []string{"b", "a", "b"}, s.Items())
	assert.Equal(t, "a", s.At(1))
}

func TestItemsReturnsCopy(t *testing.T) {
	s := Of(1, 2)
	items := s.Items()
	items[0] = 9
	assert.Equal(t, 1, s.First())
}

func TestAllYieldsInOrder(t *testing.T) {
	s := Of("x", "y", "z")
	var got []string
	for i, v := range s.All() {
		assert.Equal(t, s.At(i), v)
		got = append(got, v)
	}
	assert.Equal(t, []string{"x", "y", "z"}, got)

	for range s.All() {
		break
	}
}

func TestZeroValue(t *testing.T) {
	var s Slice[int]
	assert.True(t, s.IsZero())
	assert.False(t, Of(1).IsZero())
}
