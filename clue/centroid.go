package clue

// ClusterCentroid returns the weighted mean position of every point with
// ClusterID == id, weighted by Weight. It returns ErrInvalidParameter if id
// is negative or no point belongs to that cluster.
//
// Not present in the indexed original_source corpus (centroid computation
// is left to downstream consumers of the original's Python bindings); this
// is an original addition, kept in the teacher's plain-function style
// rather than grounded in a specific source file — see DESIGN.md.
func ClusterCentroid(hostPoints *PointsHost, id int32) ([]float32, error) {
	if id < 0 {
		return nil, ErrInvalidParameter
	}

	ndim := hostPoints.Ndim()
	sum := make([]float32, ndim)
	var totalWeight float32

	for i := 0; i < hostPoints.N(); i++ {
		if hostPoints.ClusterID(i) != id {
			continue
		}
		w := hostPoints.Weight(i)
		for d := 0; d < ndim; d++ {
			sum[d] += hostPoints.Coord(d, i) * w
		}
		totalWeight += w
	}

	if totalWeight == 0 {
		return nil, ErrInvalidParameter
	}
	for d := range sum {
		sum[d] /= totalWeight
	}
	return sum, nil
}

// ClusterCentroids returns the weighted-mean centroid of every non-outlier
// cluster found in hostPoints, indexed by cluster id.
func ClusterCentroids(hostPoints *PointsHost) [][]float32 {
	nClusters := 0
	for i := 0; i < hostPoints.N(); i++ {
		if id := hostPoints.ClusterID(i); id+1 > int32(nClusters) {
			nClusters = int(id + 1)
		}
	}

	centroids := make([][]float32, nClusters)
	for id := 0; id < nClusters; id++ {
		c, err := ClusterCentroid(hostPoints, int32(id))
		if err != nil {
			continue
		}
		centroids[id] = c
	}
	return centroids
}
