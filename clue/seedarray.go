package clue

// SeedArray is a bounded VecArray of point indices promoted to seeds
// during stage 4, built with atomic push-back across worker goroutines
// since seed marking runs as one parallel pass over all points.
type SeedArray struct {
	vec *VecArray[int32]
}

// NewSeedArray allocates a SeedArray with room for up to nPoints seeds —
// the only sizing bound a seed list can have, since there can never be
// more seeds than points.
func NewSeedArray(nPoints int) *SeedArray {
	return &SeedArray{vec: NewVecArray[int32](max(nPoints, 1))}
}

// Reset empties the seed array, reallocating if nPoints exceeds capacity.
func (s *SeedArray) Reset(nPoints int) {
	if s.vec.Cap() < nPoints {
		s.vec = NewVecArray[int32](nPoints)
		return
	}
	s.vec.Reset()
}

// Push atomically records point i as a new seed, returning its zero-based
// seed position (which becomes that point's clusterId).
func (s *SeedArray) Push(i int32) int {
	return s.vec.Push(i)
}

// Len returns the number of seeds recorded.
func (s *SeedArray) Len() int { return s.vec.Len() }

// At returns the point index of the seed at position i.
func (s *SeedArray) At(i int) int32 { return s.vec.At(i) }
