package clue

import "math"

// Kernel weights a point j's contribution to point i's local density in
// stage 2, as a function of the distance r between them. Implementations
// must return 1 when i==j so that every point contributes its own weight
// to its own density (the self term).
//
// Grounded in original_source's CLUEstering/include/CLUE/ConvolutionalKernel.h.
type Kernel interface {
	Weight(r float32, i, j int32) float32
}

// FlatKernel weights every non-self neighbour equally.
type FlatKernel struct {
	Flat float32
}

// NewFlatKernel returns a FlatKernel with the given flat weight.
func NewFlatKernel(flat float32) FlatKernel {
	return FlatKernel{Flat: flat}
}

func (k FlatKernel) Weight(r float32, i, j int32) float32 {
	if i == j {
		return 1
	}
	return k.Flat
}

// GaussianKernel weights neighbours by a Gaussian bump centered at Mu with
// standard deviation Sigma, scaled by Amplitude.
type GaussianKernel struct {
	Mu, Sigma, Amplitude float32
}

// NewGaussianKernel returns a GaussianKernel with the given parameters.
func NewGaussianKernel(mu, sigma, amplitude float32) GaussianKernel {
	return GaussianKernel{Mu: mu, Sigma: sigma, Amplitude: amplitude}
}

func (k GaussianKernel) Weight(r float32, i, j int32) float32 {
	if i == j {
		return 1
	}
	diff := r - k.Mu
	exponent := -(diff * diff) / (2 * k.Sigma * k.Sigma)
	return k.Amplitude * float32(math.Exp(float64(exponent)))
}

// ExponentialKernel weights neighbours by exponential decay with rate
// Lambda, scaled by Amplitude.
type ExponentialKernel struct {
	Lambda, Amplitude float32
}

// NewExponentialKernel returns an ExponentialKernel with the given parameters.
func NewExponentialKernel(lambda, amplitude float32) ExponentialKernel {
	return ExponentialKernel{Lambda: lambda, Amplitude: amplitude}
}

func (k ExponentialKernel) Weight(r float32, i, j int32) float32 {
	if i == j {
		return 1
	}
	return k.Amplitude * float32(math.Exp(float64(-k.Lambda*r)))
}
