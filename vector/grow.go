package vector

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/gernest/vec/raw"
)

// Reserve ensures storage for at least n elements, reallocating to exactly n
// when n exceeds Cap. It is a no-op otherwise and never changes Len. Reserve
// panics when the storage cannot be obtained; the vector is unchanged then.
func (v *Vector[T]) Reserve(n int) {
	if err := v.TryReserve(n); err != nil {
		panic(err)
	}
}

// TryReserve is Reserve reporting unobtainable storage as an error wrapping
// raw.ErrTooLarge instead of panicking.
func (v *Vector[T]) TryReserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	next, err := raw.TryNew[T](n)
	if err != nil {
		return errors.Wrapf(err, "vector: reserve %d", n)
	}
	v.finishGrow(&next, v.size, 0)
	return nil
}

// Resize sets Len to n, reserving exactly n slots first. Shrinking destroys
// the elements [n, Len); growing makes the elements [Len, n) live with the
// zero value.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vector: resize to negative size %d", n))
	}
	v.Reserve(n)
	switch {
	case n < v.size:
		excess := v.data.Slice(n, v.size)
		v.releaseSlice(excess)
		scrub(excess)
	case n > v.size:
		clear(v.data.Slice(v.size, n))
	}
	v.size = n
}

// Append adds vs at the end. When capacity runs out it grows along the
// doubling ladder 0, 1, 2, 4, ... until vs fits, which keeps append amortized
// O(1).
func (v *Vector[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	if need := v.size + len(vs); need > v.Cap() {
		v.grow(need)
	}
	copy(v.data.Slice(v.size, v.size+len(vs)), vs)
	v.size += len(vs)
}

// AppendFunc appends one element built in place by build. On the growth path
// the element is built first, into its final slot of the fresh buffer, before
// any existing element is relocated: a failed build discards the fresh buffer
// and leaves the vector, capacity included, exactly as it was. The returned
// address is valid until the next reallocation.
func (v *Vector[T]) AppendFunc(build func(*T) error) (*T, error) {
	if v.size == v.Cap() {
		next, err := raw.TryNew[T](nextCap(v.Cap(), v.size+1))
		if err != nil {
			return nil, err
		}
		p := next.At(v.size)
		if err := build(p); err != nil {
			next.Release()
			return nil, err
		}
		v.finishGrow(&next, v.size, 1)
		v.size++
		return p, nil
	}
	p := v.data.At(v.size)
	var zero T
	// reused slots of scrub-exempt types may hold stale bits
	*p = zero
	if err := build(p); err != nil {
		*p = zero
		return nil, err
	}
	v.size++
	return p, nil
}

func (v *Vector[T]) grow(need int) {
	next, err := raw.TryNew[T](nextCap(v.Cap(), need))
	if err != nil {
		panic(err)
	}
	v.finishGrow(&next, v.size, 0)
}

// finishGrow relocates the live prefix into next, leaving gap open slots at
// position pos, and adopts next as the vector's storage. Relocation transfers
// element values as plain memory, it runs no element code and cannot fail, so
// no Release calls happen here.
func (v *Vector[T]) finishGrow(next *raw.Buffer[T], pos, gap int) {
	if pos > 0 {
		copy(next.Slice(0, pos), v.data.Slice(0, pos))
	}
	if pos < v.size {
		copy(next.Slice(pos+gap, v.size+gap), v.data.Slice(pos, v.size))
	}
	v.data.Release()
	v.data.Swap(next)
	v.grows++
}

// nextCap walks the doubling ladder from cur until it covers need.
func nextCap(cur, need int) int {
	n := max(cur, 1)
	for n < need {
		if n > math.MaxInt/2 {
			return need
		}
		n *= 2
	}
	return n
}
