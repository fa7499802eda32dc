package vector

import "sync"

// Pool recycles vectors. Put resets the vector, clears its hooks and keeps
// its storage, so a recycled vector comes back empty and hook-free with
// capacity intact. A checked out vector follows the usual single-owner rules.
type Pool[T any] struct {
	pool sync.Pool
}

func (p *Pool[T]) Get() *Vector[T] {
	v := p.pool.Get()
	if v != nil {
		return v.(*Vector[T])
	}
	return &Vector[T]{}
}

func (p *Pool[T]) Put(v *Vector[T]) {
	v.Reset()
	v.Copy = nil
	v.Release = nil
	p.pool.Put(v)
}
