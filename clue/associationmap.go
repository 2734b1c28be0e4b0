package clue

import "sync/atomic"

// AssociationMap is a compressed-sparse-row mapping from keys in [0, K) to
// a contiguous run of int32 values, built in three parallel passes (count,
// scan, scatter) over a Queue. Tiles uses one AssociationMap keyed by tile
// id; Followers uses a second keyed by nearest-higher index.
//
// Grounded in original_source's data_structures/detail/AssociationMap.hpp:
// same count/scan/scatter shape, same offsets[K+1]/values[V] storage, with
// the GPU-oriented atomic block counter in the scan pass replaced by the
// sequential carry pass in prefixscan.go (see DESIGN.md and SPEC_FULL.md
// §5 for why that's safe here: goroutines are joined via the queue before
// the next pass starts, so there's no asynchronous block-completion order
// to resolve).
type AssociationMap struct {
	values  []int32
	offsets []int32
}

// NewAssociationMap allocates an AssociationMap with room for k keys and
// up to v values.
func NewAssociationMap(k, v int) *AssociationMap {
	return &AssociationMap{
		values:  make([]int32, v),
		offsets: make([]int32, k+1),
	}
}

// Reset reallocates the map's storage if the requested sizes exceed
// current capacity, otherwise reuses existing storage in place.
func (m *AssociationMap) Reset(k, v int) {
	if cap(m.offsets) < k+1 {
		m.offsets = make([]int32, k+1)
	} else {
		m.offsets = m.offsets[:k+1]
	}
	if cap(m.values) < v {
		m.values = make([]int32, v)
	} else {
		m.values = m.values[:v]
	}
	for i := range m.offsets {
		m.offsets[i] = 0
	}
}

// Size returns K, the number of keys.
func (m *AssociationMap) Size() int {
	return len(m.offsets) - 1
}

// Extents returns (K, V): the number of keys and the maximum number of
// values the map is currently sized to hold.
func (m *AssociationMap) Extents() (k, v int) {
	return m.Size(), len(m.values)
}

// Count returns the number of values associated with key k.
func (m *AssociationMap) Count(k int) int {
	return int(m.offsets[k+1] - m.offsets[k])
}

// Bin returns a Span over the values associated with key k.
func (m *AssociationMap) Bin(k int) Span {
	lo, hi := m.offsets[k], m.offsets[k+1]
	return Span{buf: m.values[lo:hi]}
}

// Fill builds the map from n items, where keyFn(i) returns the key for
// item i, or a negative value to drop it.
func (m *AssociationMap) Fill(queue Queue, n int, keyFn func(i int) int32) {
	keys := make([]int32, n)
	queue.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			keys[i] = keyFn(i)
		}
	})
	m.FillFromKeys(queue, keys)
}

// FillFromKeys builds the map from a precomputed key slice, one key per
// item; a negative key drops that item.
func (m *AssociationMap) FillFromKeys(queue Queue, keys []int32) {
	k, _ := m.Extents()
	if k == 0 || len(m.values) == 0 {
		return
	}

	sizes := make([]atomic.Int32, k)

	// Pass 2: count. Each item with a non-negative key bumps its bin's
	// counter atomically, since many goroutines touch the same bin.
	queue.ParallelFor(len(keys), func(start, end int) {
		for i := start; i < end; i++ {
			key := keys[i]
			if key < 0 || int(key) >= k {
				continue
			}
			sizes[key].Add(1)
		}
	})

	sizesSnapshot := make([]int32, k)
	for i := range sizes {
		sizesSnapshot[i] = sizes[i].Load()
	}

	// Pass 3: multi-block exclusive prefix scan of sizes into offsets.
	exclusivePrefixScan(queue, sizesSnapshot, m.offsets)

	cursor := make([]atomic.Int32, k)
	for i := 0; i < k; i++ {
		cursor[i].Store(m.offsets[i])
	}

	// Pass 4: scatter. Each item atomically claims the next free slot in
	// its bin by fetch-and-add on the cursor, then writes its own index
	// there.
	queue.ParallelFor(len(keys), func(start, end int) {
		for i := start; i < end; i++ {
			key := keys[i]
			if key < 0 || int(key) >= k {
				continue
			}
			slot := cursor[key].Add(1) - 1
			m.values[slot] = int32(i)
		}
	})
}
