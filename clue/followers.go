package clue

// Followers is the second AssociationMap the pipeline builds: key = nh_i
// (the nearest-higher index computed in stage 3), value = i. A point with
// nh_i = -1 (a seed or a disconnected outlier) never appears as a value.
//
// Grounded in original_source's data_structures/internal/Followers.hpp and
// core/detail/SetupFollowers.hpp.
type Followers struct {
	assoc *AssociationMap
}

// NewFollowers allocates a Followers map sized for nPoints keys and values.
func NewFollowers(nPoints int) *Followers {
	return &Followers{assoc: NewAssociationMap(nPoints, nPoints)}
}

// Reset reallocates storage if nPoints exceeds current capacity.
func (f *Followers) Reset(nPoints int) {
	f.assoc.Reset(nPoints, nPoints)
}

// Build populates the followers map from each point's nearestHigher(i)
// value, where nearestHigher(i) < 0 drops point i (it is a seed or has no
// higher-density neighbour within range).
func (f *Followers) Build(queue Queue, nPoints int, nearestHigher func(i int) int32) {
	f.assoc.Fill(queue, nPoints, nearestHigher)
}

// Of returns the indices of every point whose nearestHigher equals v.
func (f *Followers) Of(v int) Span {
	return f.assoc.Bin(v)
}
