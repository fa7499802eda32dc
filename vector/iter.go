package vector

import "iter"

// All ranges over the live elements with their indexes.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values ranges over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.live() {
			if !yield(x) {
				return
			}
		}
	}
}
