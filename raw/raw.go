// Package raw implements an allocation-only storage lease: a block of slots
// for a fixed number of elements with no notion of which slots hold live
// values. Element lifecycle is the caller's responsibility, the lease only
// does addressing and ownership transfer. This is the foundation the vector
// package builds on and it generalizes to any arena-with-explicit-construction
// layout.
package raw

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrTooLarge is returned (or carried by a panic) when a requested capacity
// is negative or its byte size is not representable.
var ErrTooLarge = errors.New("raw: buffer capacity out of range")

// Buffer is a single-owner lease over storage for exactly Cap elements.
// The zero value is an empty lease. A Buffer must not be duplicated while in
// use; ownership moves only through Move or Swap. Using a Buffer that was
// copied by value after first use panics.
type Buffer[T any] struct {
	addr *Buffer[T] // of receiver, to detect copies by value
	data []T
}

// New allocates a lease for capacity elements. Zero capacity performs no
// allocation. It panics with an error wrapping ErrTooLarge when the capacity
// cannot be represented.
func New[T any](capacity int) Buffer[T] {
	b, err := TryNew[T](capacity)
	if err != nil {
		panic(err)
	}
	return b
}

// TryNew is New returning the allocation failure instead of panicking. The
// error wraps ErrTooLarge and records the rejected request.
func TryNew[T any](capacity int) (Buffer[T], error) {
	if capacity == 0 {
		return Buffer[T]{}, nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if capacity < 0 || (size > 0 && capacity > math.MaxInt/size) {
		return Buffer[T]{}, errors.Wrapf(ErrTooLarge, "%d elements of %d bytes", capacity, size)
	}
	return Buffer[T]{data: make([]T, capacity)}, nil
}

func (b *Buffer[T]) copyCheck() {
	if b.addr == nil {
		b.addr = b
	} else if b.addr != b {
		panic("raw: illegal use of Buffer copied by value")
	}
}

// Cap returns the number of element slots held by the lease.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// At returns the address of slot i. Contract: 0 <= i < Cap(). A breach panics
// through the usual bounds check.
func (b *Buffer[T]) At(i int) *T {
	b.copyCheck()
	return &b.data[i]
}

// Slice returns slots [i, j) for bulk transfer or scrubbing. Both bounds may
// equal Cap(), so the one-past-the-end form Slice(n, n) is legal address
// arithmetic the same way it is on any Go slice.
func (b *Buffer[T]) Slice(i, j int) []T {
	b.copyCheck()
	return b.data[i:j]
}

// Swap exchanges storage with other in constant time, no allocation.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.copyCheck()
	other.copyCheck()
	b.data, other.data = other.data, b.data
}

// Move transfers ownership of the storage to the returned Buffer, leaving b
// in the empty state.
func (b *Buffer[T]) Move() Buffer[T] {
	b.copyCheck()
	out := Buffer[T]{data: b.data}
	*b = Buffer[T]{}
	return out
}

// Release drops the storage and resets b to the zero value. It is idempotent
// and never inspects slot contents; live elements are the owner's problem.
func (b *Buffer[T]) Release() {
	b.copyCheck()
	*b = Buffer[T]{}
}
