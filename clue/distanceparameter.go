package clue

// DistanceParameter is a threshold expressible either as one scalar
// broadcast to every dimension, or as one value per dimension, letting
// callers express anisotropic cutoffs without changing the metric.
type DistanceParameter struct {
	scalar     float32
	perDim     []float32
	isPerDim   bool
}

// ScalarDistanceParameter returns a DistanceParameter broadcasting v to
// every dimension.
func ScalarDistanceParameter(v float32) DistanceParameter {
	return DistanceParameter{scalar: v}
}

// PerDimDistanceParameter returns a DistanceParameter with one threshold
// per dimension.
func PerDimDistanceParameter(values []float32) DistanceParameter {
	return DistanceParameter{perDim: values, isPerDim: true}
}

// At returns the threshold for dimension d.
func (p DistanceParameter) At(d int) float32 {
	if p.isPerDim {
		return p.perDim[d]
	}
	return p.scalar
}

// Scalar returns the isotropic threshold used to gate a metric-reduced
// distance r against this parameter. For a per-dimension parameter this is
// the threshold along dimension 0 — the box bounds still vary per
// dimension, but the scalar acceptance test (as in the original
// density/nearest-higher kernels, which compare against a single dc or dm)
// is always a single cutoff.
func (p DistanceParameter) Scalar() float32 {
	if p.isPerDim {
		return p.perDim[0]
	}
	return p.scalar
}

// LessEqualAll reports whether diff[d] <= At(d) for every dimension
// (component-wise AND).
func (p DistanceParameter) LessEqualAll(diff []float32) bool {
	for d, v := range diff {
		if v > p.At(d) {
			return false
		}
	}
	return true
}

// GreaterAny reports whether diff[d] > At(d) for any dimension
// (component-wise OR of strict inequalities).
func (p DistanceParameter) GreaterAny(diff []float32) bool {
	for d, v := range diff {
		if v > p.At(d) {
			return true
		}
	}
	return false
}
