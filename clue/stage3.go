package clue

import "math"

// stage3NearestHigher finds, for every point i, the nearest point j with
// strictly higher density (or equal density and a higher index — the
// mandatory tie-break that keeps results stable across backends) within
// dm, recording the distance as δ_i and the neighbour's index as nh_i.
// Points with no such neighbour get δ_i = +Inf, nh_i = -1.
//
// Grounded in original_source's kernels/KernelCalculateNearestHigher.h.
func stage3NearestHigher(queue Queue, tiles *Tiles, points *PointsDevice, dm DistanceParameter) {
	n := points.N()
	ndim := points.Ndim()

	queue.ParallelFor(n, func(start, end int) {
		coordsI := make([]float32, ndim)
		coordsJ := make([]float32, ndim)
		lo := make([]float32, ndim)
		hi := make([]float32, ndim)

		for i := start; i < end; i++ {
			rhoI := points.Rho(i)
			for d := 0; d < ndim; d++ {
				c := points.Coord(d, i)
				coordsI[d] = c
				lo[d] = c - dm.At(d)
				hi[d] = c + dm.At(d)
			}

			boxes := tiles.SearchBox(lo, hi)
			bestRSq := float32(math.MaxFloat32)
			bestJ := int32(-1)

			tiles.ForEachBinInBox(boxes, func(bin int) {
				neighbours := tiles.PointsInBin(bin)
				for k := 0; k < neighbours.Len(); k++ {
					j := int(neighbours.At(k))
					if j == i {
						continue
					}
					rhoJ := points.Rho(j)
					isHigher := rhoJ > rhoI || (rhoJ == rhoI && rhoJ > 0 && j > i)
					if !isHigher {
						continue
					}
					for d := 0; d < ndim; d++ {
						coordsJ[d] = points.Coord(d, j)
					}
					dv := tiles.DistanceVector(coordsI, coordsJ)
					if dm.GreaterAny(dv) {
						continue
					}
					rSq := float32(0)
					for _, c := range dv {
						rSq += c * c
					}
					if rSq > dm.Scalar()*dm.Scalar() {
						continue
					}
					if rSq < bestRSq {
						bestRSq = rSq
						bestJ = int32(j)
					}
				}
			})

			bestR := float32(math.Inf(1))
			if bestJ >= 0 {
				bestR = float32(math.Sqrt(float64(bestRSq)))
			}
			points.SetDelta(i, bestR)
			points.SetNearestHigher(i, bestJ)
		}
	})
	queue.Wait()
}
