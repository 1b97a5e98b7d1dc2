// Package vector is the continuous genotype: individuals are fixed-length
// sequences of scalar genes optimized by Gaussian perturbation.
package vector

import "gendist/internal/evo"

// Scalar is a continuous gene. Being a plain value, cloning is the identity.
type Scalar float64

func (s Scalar) Clone() Scalar {
	return s
}

func (s Scalar) Equal(other Scalar) bool {
	return s == other
}

// NewIndividual builds a scalar individual from raw values.
func NewIndividual(values ...float64) evo.Individual[Scalar] {
	ind := make(evo.Individual[Scalar], len(values))
	for i, v := range values {
		ind[i] = Scalar(v)
	}
	return ind
}

// Values returns the individual's genes as a float slice.
func Values(ind evo.Individual[Scalar]) []float64 {
	out := make([]float64, len(ind))
	for i, g := range ind {
		out[i] = float64(g)
	}
	return out
}
