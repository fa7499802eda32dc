package vector

import (
	"github.com/gernest/vec/raw"
)

// Clone returns an independent copy of v with capacity equal to v.Len().
// Hooks carry over. With a Copy hook installed a failed element copy releases
// whatever the clone had built so far and reports the failure; v is left
// unchanged either way.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{Copy: v.Copy, Release: v.Release}
	if v.size == 0 {
		return out, nil
	}
	next, err := v.cloneSlots(v.live())
	if err != nil {
		return nil, err
	}
	out.data.Swap(&next)
	out.size = v.size
	return out, nil
}

// cloneSlots builds a fresh buffer holding copies of s made through v's Copy
// hook. A failed copy releases the elements built so far and drops the
// buffer.
func (v *Vector[T]) cloneSlots(s []T) (raw.Buffer[T], error) {
	next, err := raw.TryNew[T](len(s))
	if err != nil {
		return raw.Buffer[T]{}, err
	}
	dst := next.Slice(0, len(s))
	if v.Copy == nil {
		copy(dst, s)
		return next.Move(), nil
	}
	for i := range s {
		c, err := v.Copy(s[i])
		if err != nil {
			v.releaseSlice(dst[:i])
			next.Release()
			return raw.Buffer[T]{}, err
		}
		dst[i] = c
	}
	return next.Move(), nil
}

// CopyFrom makes v an element-wise copy of src, using v's Copy hook on both
// paths. When src does not fit in v's storage the copy is built fully on the
// side and swapped in, one extra allocation for the strong guarantee: a
// failure leaves v untouched. When src fits, storage is reused in place:
// overlapping slots are released and assigned, excess slots destroyed,
// missing slots copied in fresh; a failed element copy on this path leaves v
// valid with the elements copied so far.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if src.size > v.Cap() {
		next, err := v.cloneSlots(src.live())
		if err != nil {
			return err
		}
		v.releaseSlice(v.live())
		v.data.Release()
		v.data.Swap(&next)
		v.size = src.size
		v.grows++
		return nil
	}
	s := src.live()
	if v.Copy == nil {
		v.releaseSlice(v.data.Slice(0, min(v.size, len(s))))
		copy(v.data.Slice(0, len(s)), s)
	} else {
		n := min(v.size, len(s))
		for i := 0; i < n; i++ {
			c, err := v.Copy(s[i])
			if err != nil {
				return err
			}
			p := v.data.At(i)
			if v.Release != nil {
				v.Release(p)
			}
			*p = c
		}
		for i := n; i < len(s); i++ {
			c, err := v.Copy(s[i])
			if err != nil {
				v.size = i
				return err
			}
			*v.data.At(i) = c
		}
	}
	if v.size > len(s) {
		excess := v.data.Slice(len(s), v.size)
		v.releaseSlice(excess)
		scrub(excess)
	}
	v.size = len(s)
	return nil
}

// MoveFrom destroys v's contents and takes over src's storage and elements in
// constant time. src is left empty with no storage. Hooks stay with their
// instance.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.releaseSlice(v.live())
	v.data.Release()
	v.data.Swap(&src.data)
	v.size, src.size = src.size, 0
}
