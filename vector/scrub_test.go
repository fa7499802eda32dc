package vector

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHoldsPointers(t *testing.T) {
	require.False(t, holdsPointers(reflect.TypeFor[int]()))
	require.False(t, holdsPointers(reflect.TypeFor[[4]float64]()))
	require.False(t, holdsPointers(reflect.TypeFor[struct {
		A int
		B [2]uint8
	}]()))
	require.True(t, holdsPointers(reflect.TypeFor[string]()))
	require.True(t, holdsPointers(reflect.TypeFor[[]int]()))
	require.True(t, holdsPointers(reflect.TypeFor[*int]()))
	require.True(t, holdsPointers(reflect.TypeFor[map[int]int]()))
	require.True(t, holdsPointers(reflect.TypeFor[struct{ P *int }]()))
}

func TestDeadSlotsDropReferences(t *testing.T) {
	v := Of("a", "b", "c")
	v.PopBack()
	require.Equal(t, "", v.data.Slice(2, 3)[0])
}

func TestPointerFreeDeadSlotsKeepBits(t *testing.T) {
	v := Of(1, 2, 3)
	v.PopBack()
	require.Equal(t, 3, v.data.Slice(2, 3)[0])
}
