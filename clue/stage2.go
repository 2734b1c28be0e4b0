package clue

// stage2ComputeDensity computes each point's local energy density ρ by
// summing a kernel-weighted contribution from every neighbour within dc of
// it (inclusive), restricted to the tiles overlapping that search box so
// the cost stays near-linear instead of O(n^2).
//
// K and M are resolved at compile time instead of through an interface
// vtable, the same static-dispatch trade the teacher's SIMD lane code
// makes for its Kernel-equivalent inner loops: one generic instantiation
// per (Kernel, DistanceMetric) pair the caller actually uses, rather than
// one shared function doing interface dispatch per point.
//
// Grounded in original_source's kernels/KernelCalculateLocalDensity.h.
func stage2ComputeDensity[K Kernel, M DistanceMetric](queue Queue, tiles *Tiles, points *PointsDevice, kernel K, metric M, dc DistanceParameter) {
	n := points.N()
	ndim := points.Ndim()

	queue.ParallelFor(n, func(start, end int) {
		coordsI := make([]float32, ndim)
		coordsJ := make([]float32, ndim)
		lo := make([]float32, ndim)
		hi := make([]float32, ndim)

		for i := start; i < end; i++ {
			for d := 0; d < ndim; d++ {
				c := points.Coord(d, i)
				coordsI[d] = c
				lo[d] = c - dc.At(d)
				hi[d] = c + dc.At(d)
			}

			boxes := tiles.SearchBox(lo, hi)
			var rho float32

			tiles.ForEachBinInBox(boxes, func(bin int) {
				neighbours := tiles.PointsInBin(bin)
				for k := 0; k < neighbours.Len(); k++ {
					j := int(neighbours.At(k))
					for d := 0; d < ndim; d++ {
						coordsJ[d] = points.Coord(d, j)
					}
					dv := tiles.DistanceVector(coordsI, coordsJ)
					if dc.GreaterAny(dv) {
						continue
					}
					r := metric.Reduce(dv)
					if r > dc.Scalar() {
						continue
					}
					rho += kernel.Weight(r, int32(i), int32(j)) * points.Weight(j)
				}
			})

			points.SetRho(i, rho)
		}
	})
	queue.Wait()
}
