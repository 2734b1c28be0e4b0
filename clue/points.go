package clue

// PointsHost is the caller-owned structure-of-arrays point store: Ndim
// coordinate columns, a weight column, and the derived ρ/δ columns plus
// the three int32 result columns (clusterId, isSeed, nearestHigher). The
// float32 columns are carved out of one contiguous []float32 buffer and the
// int32 columns out of one contiguous []int32 buffer (see floatColumn and
// intColumn), the way the teacher carves one allocation into typed
// sub-slices for its worker-pool work items, except here the slices are
// float32/int32 columns of a point table instead of work-item descriptors.
type PointsHost struct {
	ndim int
	n    int

	floats []float32 // (ndim+3) columns of n: coords..., weight, rho, delta
	ints   []int32   // 3 columns of n: clusterId, isSeed, nearestHigher
}

// NewPointsHost allocates a PointsHost for n points of ndim dimensions.
func NewPointsHost(ndim, n int) *PointsHost {
	p := &PointsHost{ndim: ndim}
	p.resize(n)
	return p
}

func (p *PointsHost) resize(n int) {
	p.n = n
	p.floats = make([]float32, (p.ndim+3)*n)
	p.ints = make([]int32, 3*n)
	for i := range p.ints {
		p.ints[i] = -1
	}
	for i := 0; i < n; i++ {
		p.SetIsSeed(i, 0)
	}
}

// Ndim returns the number of coordinate dimensions.
func (p *PointsHost) Ndim() int { return p.ndim }

// N returns the number of points.
func (p *PointsHost) N() int { return p.n }

func (p *PointsHost) floatColumn(col int) []float32 {
	return p.floats[col*p.n : (col+1)*p.n]
}

func (p *PointsHost) intColumn(col int) []int32 {
	return p.ints[col*p.n : (col+1)*p.n]
}

// Coord returns the coordinate of point i along dimension d. Coord does not
// check d against Ndim, matching the rest of the package's hot-path
// accessors: a d in [Ndim, Ndim+3) reads the weight, ρ or δ column, and a
// d outside [0, Ndim+3) panics like a slice index. CoordChecked returns
// ErrDimensionOutOfRange instead.
func (p *PointsHost) Coord(d, i int) float32 {
	return p.floatColumn(d)[i]
}

// SetCoord sets the coordinate of point i along dimension d.
func (p *PointsHost) SetCoord(d, i int, v float32) {
	p.floatColumn(d)[i] = v
}

// CoordChecked returns the coordinate of point i along dimension d,
// returning ErrDimensionOutOfRange if d >= Ndim().
func (p *PointsHost) CoordChecked(d, i int) (float32, error) {
	if d < 0 || d >= p.ndim {
		return 0, ErrDimensionOutOfRange
	}
	return p.Coord(d, i), nil
}

func (p *PointsHost) Weight(i int) float32     { return p.floatColumn(p.ndim)[i] }
func (p *PointsHost) SetWeight(i int, v float32) { p.floatColumn(p.ndim)[i] = v }

func (p *PointsHost) Rho(i int) float32      { return p.floatColumn(p.ndim + 1)[i] }
func (p *PointsHost) SetRho(i int, v float32) { p.floatColumn(p.ndim + 1)[i] = v }

func (p *PointsHost) Delta(i int) float32      { return p.floatColumn(p.ndim + 2)[i] }
func (p *PointsHost) SetDelta(i int, v float32) { p.floatColumn(p.ndim + 2)[i] = v }

func (p *PointsHost) ClusterID(i int) int32      { return p.intColumn(0)[i] }
func (p *PointsHost) SetClusterID(i int, v int32) { p.intColumn(0)[i] = v }

func (p *PointsHost) IsSeed(i int) int32      { return p.intColumn(1)[i] }
func (p *PointsHost) SetIsSeed(i int, v int32) { p.intColumn(1)[i] = v }

func (p *PointsHost) NearestHigher(i int) int32      { return p.intColumn(2)[i] }
func (p *PointsHost) SetNearestHigher(i int, v int32) { p.intColumn(2)[i] = v }

// PointsDevice mirrors PointsHost's layout exactly. In this single-process
// Go port "device" means a second SoA buffer in the same address space
// (kept for API fidelity with the original host/device split and for a
// future real-GPU backend), not a separate memory space.
type PointsDevice struct {
	PointsHost
}

// NewPointsDevice allocates a PointsDevice for n points of ndim dimensions.
func NewPointsDevice(ndim, n int) *PointsDevice {
	return &PointsDevice{PointsHost: *NewPointsHost(ndim, n)}
}

// CopyToDevice copies coordinates and weights from host to device. Only
// the input columns are copied — ρ/δ/clusterId/isSeed/nearestHigher are
// stage outputs, written directly into the device buffer by the pipeline.
func CopyToDevice(host *PointsHost, device *PointsDevice) {
	if device.ndim != host.ndim || device.n != host.n {
		device.ndim = host.ndim
		device.resize(host.n)
	}
	for d := 0; d < host.ndim; d++ {
		copy(device.floatColumn(d), host.floatColumn(d))
	}
	copy(device.floatColumn(host.ndim), host.floatColumn(host.ndim)) // weight
}

// CopyToHost copies the derived result columns (ρ, δ, clusterId, isSeed,
// nearestHigher) from device back to host.
func CopyToHost(device *PointsDevice, host *PointsHost) {
	copy(host.floatColumn(host.ndim+1), device.floatColumn(device.ndim+1)) // rho
	copy(host.floatColumn(host.ndim+2), device.floatColumn(device.ndim+2)) // delta
	copy(host.ints, device.ints)
}
