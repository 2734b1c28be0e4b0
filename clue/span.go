package clue

// Span is a non-owning view over a contiguous run of int32 values backed by
// someone else's slice. AssociationMap.Bin returns a Span over the segment
// of its values array belonging to one key, the same way a CSR matrix row
// is a view rather than a copy.
type Span struct {
	buf []int32
}

// Len returns the number of elements in the span.
func (s Span) Len() int {
	return len(s.buf)
}

// At returns the element at index i. It panics if i is out of range,
// matching ordinary Go slice semantics.
func (s Span) At(i int) int32 {
	return s.buf[i]
}

// Slice returns the underlying slice. Callers must not retain it past the
// lifetime of the AssociationMap it came from, and must not mutate it.
func (s Span) Slice() []int32 {
	return s.buf
}
