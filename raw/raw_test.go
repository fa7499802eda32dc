package raw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewZeroCapacity(t *testing.T) {
	b := New[int](0)
	require.Equal(t, 0, b.Cap())
}

func TestTryNewTooLarge(t *testing.T) {
	_, err := TryNew[uint64](math.MaxInt)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = TryNew[uint64](-1)
	require.ErrorIs(t, err, ErrTooLarge)

	require.Panics(t, func() { New[uint64](-1) })
}

func TestAddressing(t *testing.T) {
	b := New[int](4)
	for i := 0; i < b.Cap(); i++ {
		*b.At(i) = i + 1
	}
	require.Equal(t, []int{1, 2, 3, 4}, b.Slice(0, 4))
	require.Empty(t, b.Slice(4, 4))
	require.Panics(t, func() { b.At(4) })
}

func TestSwap(t *testing.T) {
	a := New[int](2)
	b := New[int](8)
	a.Swap(&b)
	require.Equal(t, 8, a.Cap())
	require.Equal(t, 2, b.Cap())
}

func TestMoveLeavesDonorEmpty(t *testing.T) {
	a := New[int](4)
	*a.At(0) = 7
	b := a.Move()
	require.Equal(t, 0, a.Cap())
	require.Equal(t, 4, b.Cap())
	require.Equal(t, 7, *b.At(0))
}

func TestReleaseIdempotent(t *testing.T) {
	b := New[int](4)
	b.Release()
	b.Release()
	require.Equal(t, 0, b.Cap())
}

func TestCopiedBufferPanics(t *testing.T) {
	b := New[int](1)
	_ = b.At(0)
	c := b
	require.PanicsWithValue(t, "raw: illegal use of Buffer copied by value", func() { c.At(0) })
}
