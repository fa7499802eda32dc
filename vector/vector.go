// Package vector implements a growable contiguous container on top of the
// allocation-only lease from package raw. The container owns exactly one
// lease plus a live-element count: slots below Len hold live values, slots
// from Len up to Cap hold nothing. Append is amortized O(1) through strict
// capacity doubling, and every growth path builds the new state fully before
// the old state is given up, so a failed element constructor or copy leaves
// the container exactly as it was.
//
// A Vector is single-owner: one goroutine mutates an instance at a time.
// Distinct instances are independent. Reallocation (Reserve, growth during
// append or insert) is the only operation that invalidates element addresses
// and Slice views; everything else leaves untouched elements where they are.
package vector

import (
	"fmt"

	"github.com/gernest/vec/raw"
)

// Vector is a growable contiguous sequence of T. The zero value is an empty
// vector ready to use.
type Vector[T any] struct {
	// Copy, when set, duplicates an element wherever the container copies
	// one (Clone, CopyFrom). It may fail, and a failure on a growth path
	// leaves the destination untouched. When nil, elements copy by plain
	// assignment. Element types that own resources through Release should
	// set Copy as well, otherwise copying duplicates ownership.
	Copy func(T) (T, error)

	// Release, when set, is called once for each live element the container
	// destroys: PopBack, Erase, Delete, shrinking Resize, Reset, and the
	// elements replaced or dropped by CopyFrom and MoveFrom. It is not
	// called when elements relocate to new storage, relocation transfers
	// ownership. Set it before the first element is appended.
	Release func(*T)

	data  raw.Buffer[T]
	size  int
	grows uint64
}

// New returns an empty vector with no storage reserved.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Make returns a vector holding size zero-valued elements, with capacity
// equal to size.
func Make[T any](size int) *Vector[T] {
	v := &Vector[T]{}
	if size != 0 {
		v.data = raw.New[T](size)
		v.size = size
	}
	return v
}

// Of returns a vector holding vs in order.
func Of[T any](vs ...T) *Vector[T] {
	v := &Vector[T]{}
	v.Append(vs...)
	return v
}

// Move returns a vector that has taken over src's storage, elements and
// hooks. src is left empty.
func Move[T any](src *Vector[T]) *Vector[T] {
	v := &Vector[T]{Copy: src.Copy, Release: src.Release}
	v.data.Swap(&src.data)
	v.size = src.size
	v.grows = src.grows
	src.size = 0
	src.grows = 0
	return v
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of element slots reserved.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// At returns the address of element i. The address stays valid until the
// next reallocation. Contract: 0 <= i < Len().
func (v *Vector[T]) At(i int) *T {
	if uint(i) >= uint(v.size) {
		panic(fmt.Sprintf("vector: index %d out of range with length %d", i, v.size))
	}
	return v.data.At(i)
}

// Front returns the address of the first element, or nil when empty.
func (v *Vector[T]) Front() *T {
	if v.size == 0 {
		return nil
	}
	return v.data.At(0)
}

// Back returns the address of the last element, or nil when empty.
func (v *Vector[T]) Back() *T {
	if v.size == 0 {
		return nil
	}
	return v.data.At(v.size - 1)
}

// Slice returns the live elements as a read-write view into the vector's
// storage. The view is valid until the next reallocation.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// PopBack destroys the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		return
	}
	v.size--
	if v.Release != nil {
		v.Release(v.data.At(v.size))
	}
	scrub(v.data.Slice(v.size, v.size+1))
}

// Reset destroys all live elements and keeps the storage for reuse.
func (v *Vector[T]) Reset() {
	live := v.live()
	v.releaseSlice(live)
	scrub(live)
	v.size = 0
}

// Swap exchanges contents with other in constant time. Hooks stay with their
// instance.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.grows, other.grows = other.grows, v.grows
}

func (v *Vector[T]) live() []T {
	return v.data.Slice(0, v.size)
}

// releaseSlice runs the Release hook over live slots about to be abandoned.
func (v *Vector[T]) releaseSlice(s []T) {
	if v.Release == nil {
		return
	}
	for i := range s {
		v.Release(&s[i])
	}
}

func (v *Vector[T]) checkPos(i int) {
	if uint(i) > uint(v.size) {
		panic(fmt.Sprintf("vector: position %d out of range with length %d", i, v.size))
	}
}
