package vector

import (
	"fmt"

	"github.com/gernest/vec/raw"
)

// Insert places x at position i, 0 <= i <= Len(), shifting later elements one
// slot right. It returns the address of the inserted element, valid until the
// next reallocation. Insert panics when storage for the grown vector cannot
// be obtained.
func (v *Vector[T]) Insert(i int, x T) *T {
	p, err := v.InsertFunc(i, func(dst *T) error {
		*dst = x
		return nil
	})
	if err != nil {
		panic(err)
	}
	return p
}

// InsertFunc is Insert with the element built in place by build. On the
// growth path the element is built first, directly at its target slot of the
// fresh buffer, then the prefix and suffix of the old storage are relocated
// around it; a failed build discards the fresh buffer and leaves the vector
// untouched. On the in-place path the element is built into a temporary
// before the gap opens, so a failed build also leaves the vector untouched.
func (v *Vector[T]) InsertFunc(i int, build func(*T) error) (*T, error) {
	v.checkPos(i)
	if v.size == v.Cap() {
		next, err := raw.TryNew[T](nextCap(v.Cap(), v.size+1))
		if err != nil {
			return nil, err
		}
		p := next.At(i)
		if err := build(p); err != nil {
			next.Release()
			return nil, err
		}
		v.finishGrow(&next, i, 1)
		v.size++
		return p, nil
	}
	if v.size == 0 {
		p := v.data.At(0)
		var zero T
		*p = zero
		if err := build(p); err != nil {
			*p = zero
			return nil, err
		}
		v.size = 1
		return p, nil
	}
	var tmp T
	if err := build(&tmp); err != nil {
		return nil, err
	}
	copy(v.data.Slice(i+1, v.size+1), v.data.Slice(i, v.size))
	p := v.data.At(i)
	*p = tmp
	v.size++
	return p, nil
}

// Erase destroys the element at position i, 0 <= i < Len(), shifting later
// elements one slot left. The element formerly after i occupies i afterwards.
func (v *Vector[T]) Erase(i int) {
	if uint(i) >= uint(v.size) {
		panic(fmt.Sprintf("vector: index %d out of range with length %d", i, v.size))
	}
	if v.Release != nil {
		v.Release(v.data.At(i))
	}
	copy(v.data.Slice(i, v.size-1), v.data.Slice(i+1, v.size))
	v.size--
	scrub(v.data.Slice(v.size, v.size+1))
}

// Delete destroys the elements [i, j), shifting later elements left. The
// bounds follow slices.Delete: 0 <= i <= j <= Len().
func (v *Vector[T]) Delete(i, j int) {
	if i < 0 || j < i || j > v.size {
		panic(fmt.Sprintf("vector: range [%d:%d] out of range with length %d", i, j, v.size))
	}
	if i == j {
		return
	}
	v.releaseSlice(v.data.Slice(i, j))
	copy(v.data.Slice(i, v.size), v.data.Slice(j, v.size))
	old := v.size
	v.size = old - (j - i)
	scrub(v.data.Slice(v.size, old))
}
