package vector

// Stats is a snapshot of a vector's storage accounting.
type Stats struct {
	// Len is the live element count.
	Len int
	// Cap is the reserved slot count.
	Cap int
	// Grows counts the reallocations this instance performed.
	Grows uint64
	// Utilization is Len over Cap, 0 for an unallocated vector.
	Utilization float64
}

// Stats reports storage accounting for v.
func (v *Vector[T]) Stats() Stats {
	s := Stats{Len: v.size, Cap: v.Cap(), Grows: v.grows}
	if s.Cap > 0 {
		s.Utilization = float64(s.Len) / float64(s.Cap)
	}
	return s
}
