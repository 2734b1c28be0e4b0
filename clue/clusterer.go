package clue

import "context"

// Clusterer holds validated clustering parameters and the internal
// structures (Tiles, Followers, SeedArray) that MakeClusters reuses across
// calls, reallocating only when a larger point count demands it.
//
// Grounded in original_source's CLUEAlpakaAlgo (include/CLUE/CLUEAlgoAlpaka.h):
// same parameter set and same "validate once, reuse buffers across runs"
// shape, with the alpaka device buffers replaced by the Go Tiles/Followers/
// SeedArray types built in this package.
type Clusterer struct {
	dc            float32
	rhoc          float32
	dm            float32
	seedDC        float32
	pointsPerTile int
	wrapped       map[int]bool

	tiles     *Tiles
	followers *Followers
	seeds     *SeedArray
	device    *PointsDevice
}

// ClustererOption configures optional Clusterer parameters.
type ClustererOption func(*Clusterer)

// WithDM overrides the S3 search half-width (default: dc).
func WithDM(dm float32) ClustererOption {
	return func(c *Clusterer) { c.dm = dm }
}

// WithSeedDC overrides the S4 seed-promotion delta threshold (default: dc).
func WithSeedDC(seedDC float32) ClustererOption {
	return func(c *Clusterer) { c.seedDC = seedDC }
}

// WithPointsPerTile overrides the S1 tiling density tuning constant
// (default: 128).
func WithPointsPerTile(n int) ClustererOption {
	return func(c *Clusterer) { c.pointsPerTile = n }
}

// WithWrappedDimension marks dimension d as topologically circular.
func WithWrappedDimension(d int) ClustererOption {
	return func(c *Clusterer) { c.wrapped[d] = true }
}

// NewClusterer validates dc/rhoc and any supplied options, returning
// ErrInvalidParameter if dc or rhoc is non-positive, or if an option sets
// pointsPerTile to a non-positive value. dm and seedDC default to dc when
// left unset (at or below zero after options run).
func NewClusterer(dc, rhoc float32, opts ...ClustererOption) (*Clusterer, error) {
	if dc <= 0 || rhoc <= 0 {
		return nil, ErrInvalidParameter
	}

	c := &Clusterer{
		dc:            dc,
		rhoc:          rhoc,
		pointsPerTile: 128,
		wrapped:       make(map[int]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.pointsPerTile <= 0 {
		return nil, ErrInvalidParameter
	}
	if c.dm <= 0 {
		c.dm = dc
	}
	if c.seedDC <= 0 {
		c.seedDC = dc
	}
	return c, nil
}

// SetParameters updates dc/rhoc in place, re-validating them the same way
// NewClusterer does. Internal buffers are unaffected; they resize lazily
// on the next MakeClusters call.
func (c *Clusterer) SetParameters(dc, rhoc float32) error {
	if dc <= 0 || rhoc <= 0 {
		return ErrInvalidParameter
	}
	c.dc = dc
	c.rhoc = rhoc
	return nil
}

func (c *Clusterer) distanceParameter(ndim int, v float32) DistanceParameter {
	return ScalarDistanceParameter(v)
}

func (c *Clusterer) applyWrapped(ndim int) {
	for d := 0; d < ndim; d++ {
		c.tiles.SetWrapped(d, c.wrapped[d])
	}
}

// MakeClusters runs the full four-stage pipeline over hostPoints, writing
// ClusterID, IsSeed and NearestHigher results back into it. blockSize is
// accepted for API fidelity with the original's work-division launch
// parameter; the Queue implementations in this package compute their own
// chunking from their worker count, so blockSize does not change dispatch
// behavior here (see DESIGN.md).
//
// K and M are resolved at the call site, not stored on the Clusterer,
// because a single Clusterer may be reused across calls with different
// kernel/metric choices (the original allows the same per run).
//
// Go disallows type parameters on methods, so MakeClusters is a
// package-level generic function taking *Clusterer as its first argument
// rather than a method, the one place this package's API shape must
// differ from the original's object-oriented call.
func MakeClusters[K Kernel, M DistanceMetric](ctx context.Context, c *Clusterer, queue Queue, hostPoints *PointsHost, metric M, kernel K, blockSize int) error {
	ndim := hostPoints.Ndim()
	n := hostPoints.N()

	if c.device == nil || c.device.Ndim() != ndim || c.device.N() != n {
		c.device = NewPointsDevice(ndim, n)
	}
	CopyToDevice(hostPoints, c.device)

	if c.tiles == nil {
		c.tiles = NewTiles(ndim)
	}
	c.applyWrapped(ndim)

	if c.followers == nil {
		c.followers = NewFollowers(n)
	} else {
		c.followers.Reset(n)
	}

	if c.seeds == nil {
		c.seeds = NewSeedArray(n)
	} else {
		c.seeds.Reset(n)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := stage1FillTiles(queue, c.tiles, c.device, c.pointsPerTile); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	dc := c.distanceParameter(ndim, c.dc)
	stage2ComputeDensity(queue, c.tiles, c.device, kernel, metric, dc)

	if err := ctx.Err(); err != nil {
		return err
	}
	dm := c.distanceParameter(ndim, c.dm)
	stage3NearestHigher(queue, c.tiles, c.device, dm)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := stage4Assign(ctx, queue, c.device, c.followers, c.seeds, c.rhoc, c.seedDC); err != nil {
		return err
	}

	CopyToHost(c.device, hostPoints)
	return nil
}

// GetClusters returns an AssociationMap keyed by cluster id, mapping each
// cluster to the point indices it contains. Outliers (ClusterID == -1) are
// never included as a key.
func (c *Clusterer) GetClusters(hostPoints *PointsHost) *AssociationMap {
	n := hostPoints.N()
	nClusters := 0
	for i := 0; i < n; i++ {
		if id := hostPoints.ClusterID(i); id+1 > int32(nClusters) {
			nClusters = int(id + 1)
		}
	}

	m := NewAssociationMap(nClusters, n)
	queue := NewSequentialQueue()
	m.Fill(queue, n, func(i int) int32 { return hostPoints.ClusterID(i) })
	return m
}
