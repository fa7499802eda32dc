package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const poison = -1

func poisonCopy(x int) (int, error) {
	if x == poison {
		return 0, errBuild
	}
	return x, nil
}

func TestCloneIndependence(t *testing.T) {
	a := Of(1, 2, 3)
	b, err := a.Clone()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, b.Slice())
	require.Equal(t, 3, b.Cap())
	*b.At(0) = 99
	require.Equal(t, 1, *a.At(0))
	a.Append(4)
	require.Equal(t, 3, b.Len())
}

func TestCloneEmpty(t *testing.T) {
	b, err := New[int]().Clone()
	require.NoError(t, err)
	require.Equal(t, 0, b.Len())
	require.Equal(t, 0, b.Cap())
}

func TestClonePoisonReleasesPartialCopy(t *testing.T) {
	released := 0
	src := Of(1, 2, poison)
	src.Copy = poisonCopy
	src.Release = func(*int) { released++ }
	_, err := src.Clone()
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, 2, released)
	require.Equal(t, []int{1, 2, poison}, src.Slice())
}

func TestCopyFromInPlace(t *testing.T) {
	dst := Of(1, 2, 3, 4)
	src := Of(7, 8)
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, []int{7, 8}, dst.Slice())
	require.Equal(t, 4, dst.Cap())

	require.NoError(t, dst.CopyFrom(Of(5, 6, 7)))
	require.Equal(t, []int{5, 6, 7}, dst.Slice())
	require.Equal(t, 4, dst.Cap())
}

func TestCopyFromSwap(t *testing.T) {
	dst := Of(1)
	src := Of(7, 8, 9)
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, []int{7, 8, 9}, dst.Slice())
	require.Equal(t, []int{7, 8, 9}, src.Slice())
	*dst.At(0) = 1
	require.Equal(t, 7, *src.At(0))
}

func TestCopyFromPoisonAllOrNothing(t *testing.T) {
	src := Of(1, poison, 3)
	src.Copy = poisonCopy
	dst := Of(8)
	dst.Copy = poisonCopy
	err := dst.CopyFrom(src)
	require.ErrorIs(t, err, errBuild)
	require.Equal(t, []int{8}, dst.Slice())
	require.Equal(t, 1, dst.Cap())
	require.Equal(t, []int{1, poison, 3}, src.Slice())
}

func TestCopyFromSwapUsesDestinationHook(t *testing.T) {
	copies := 0
	dst := Of(8)
	dst.Copy = func(x int) (int, error) {
		copies++
		return x, nil
	}
	src := Of(1, 2, 3)
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, 3, copies)
	require.Equal(t, []int{1, 2, 3}, dst.Slice())
}

func TestCopyFromReleasesReplacedAndDropped(t *testing.T) {
	released := 0
	dst := Of(1, 2, 3)
	dst.Release = func(*int) { released++ }
	require.NoError(t, dst.CopyFrom(Of(7, 8)))
	require.Equal(t, 3, released)
	require.Equal(t, []int{7, 8}, dst.Slice())

	// the copy-and-swap path releases the previous contents too
	released = 0
	require.NoError(t, dst.CopyFrom(Of(1, 2, 3, 4, 5, 6)))
	require.Equal(t, 2, released)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, dst.Slice())
}

func TestCopyFromHookGrowsWithinCapacity(t *testing.T) {
	dst := New[int]()
	dst.Copy = poisonCopy
	dst.Reserve(8)
	dst.Append(1, 2)
	require.NoError(t, dst.CopyFrom(Of(5, 6, 7)))
	require.Equal(t, []int{5, 6, 7}, dst.Slice())
	require.Equal(t, 8, dst.Cap())
}

func TestCopyFromSelf(t *testing.T) {
	v := Of(1, 2)
	require.NoError(t, v.CopyFrom(v))
	require.Equal(t, []int{1, 2}, v.Slice())
}

func TestMoveFrom(t *testing.T) {
	released := 0
	dst := Of(1, 2)
	dst.Release = func(*int) { released++ }
	src := Of(7, 8, 9)
	dst.MoveFrom(src)
	require.Equal(t, 2, released)
	require.Equal(t, []int{7, 8, 9}, dst.Slice())
	require.Equal(t, 0, src.Len())
	require.Equal(t, 0, src.Cap())
}

func TestReleaseHookFiresOncePerDestroyedElement(t *testing.T) {
	released := 0
	v := New[int]()
	v.Release = func(*int) { released++ }
	v.Append(1, 2, 3, 4, 5, 6, 7, 8)
	require.Equal(t, 0, released)
	v.PopBack()
	require.Equal(t, 1, released)
	v.Erase(0)
	require.Equal(t, 2, released)
	v.Delete(1, 3)
	require.Equal(t, 4, released)
	v.Resize(2)
	require.Equal(t, 6, released)
	v.Reset()
	require.Equal(t, 8, released)
}
