package clue

import (
	"math"
	"sync/atomic"
)

func float32bits(f float32) uint32    { return math.Float32bits(f) }
func float32frombits(b uint32) float32 { return math.Float32frombits(b) }

// foldMin atomically updates dst to hold the bit pattern of
// min(current value, v), retrying the compare-and-swap until it wins.
func foldMin(dst *atomic.Uint32, v float32) {
	for {
		old := dst.Load()
		if v >= math.Float32frombits(old) {
			return
		}
		if dst.CompareAndSwap(old, math.Float32bits(v)) {
			return
		}
	}
}

// foldMax atomically updates dst to hold the bit pattern of
// max(current value, v), retrying the compare-and-swap until it wins.
func foldMax(dst *atomic.Uint32, v float32) {
	for {
		old := dst.Load()
		if v <= math.Float32frombits(old) {
			return
		}
		if dst.CompareAndSwap(old, math.Float32bits(v)) {
			return
		}
	}
}

// CoordinateExtremes holds the per-dimension [min, max] bounding box of a
// point set, computed once per Clusterer run during Tiles setup.
type CoordinateExtremes struct {
	mins []float32
	maxs []float32
}

// NewCoordinateExtremes allocates extremes for ndim dimensions.
func NewCoordinateExtremes(ndim int) *CoordinateExtremes {
	return &CoordinateExtremes{
		mins: make([]float32, ndim),
		maxs: make([]float32, ndim),
	}
}

// Min returns the minimum coordinate observed along dimension d.
func (c *CoordinateExtremes) Min(d int) float32 { return c.mins[d] }

// Max returns the maximum coordinate observed along dimension d.
func (c *CoordinateExtremes) Max(d int) float32 { return c.maxs[d] }

// Range returns Max(d) - Min(d).
func (c *CoordinateExtremes) Range(d int) float32 { return c.maxs[d] - c.mins[d] }

// Ndim returns the number of dimensions.
func (c *CoordinateExtremes) Ndim() int { return len(c.mins) }

// computeExtremes fills c with the per-dimension min/max of column, one
// dimension at a time, using a two-phase parallel reduction: each worker
// reduces its contiguous chunk to a local (min, max) pair, then folds that
// pair into the running global extremes with an atomic compare-and-swap.
//
// Grounded in the teacher's contrib/vec/reduce_base.go BaseMinMax: same
// "load a chunk, reduce to scalar, combine across chunks" shape, with the
// per-chunk SIMD load/Min/Max replaced by a plain scalar loop since there
// is no lane width to exploit here — the reduction runs once per
// dimension over a dataset of points, not per point over a coordinate
// vector only a few lanes wide.
func computeExtremes(queue Queue, column func(d, i int) float32, ndim, n int) *CoordinateExtremes {
	c := NewCoordinateExtremes(ndim)
	if n == 0 {
		return c
	}

	for d := 0; d < ndim; d++ {
		d := d

		// Each ParallelFor chunk reduces its own contiguous range to a
		// local (min, max) pair, then atomically folds that pair into the
		// running global extremes. The fold is a compare-and-swap retry
		// loop rather than a lock, matching the lock-free style of the
		// rest of the package's atomic counters.
		globalMinBits := atomic.Uint32{}
		globalMaxBits := atomic.Uint32{}
		globalMinBits.Store(float32bits(column(d, 0)))
		globalMaxBits.Store(float32bits(column(d, 0)))

		queue.ParallelFor(n, func(start, end int) {
			if start >= end {
				return
			}
			localMin := column(d, start)
			localMax := localMin
			for i := start + 1; i < end; i++ {
				v := column(d, i)
				if v < localMin {
					localMin = v
				}
				if v > localMax {
					localMax = v
				}
			}
			foldMin(&globalMinBits, localMin)
			foldMax(&globalMaxBits, localMax)
		})

		c.mins[d] = float32frombits(globalMinBits.Load())
		c.maxs[d] = float32frombits(globalMaxBits.Load())
	}

	return c
}
