package vector

import (
	"errors"
	"fmt"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"gendist/internal/evo"
)

// GaussianMutator redraws every gene from a normal distribution centered on
// the gene's current value with standard deviation Sigma. It never modifies
// its input and draws only from its own source.
type GaussianMutator struct {
	Sigma float64
	Src   xrand.Source
}

// NewGaussianMutator builds a mutator with a private source seeded from seed.
func NewGaussianMutator(sigma float64, seed uint64) *GaussianMutator {
	return &GaussianMutator{Sigma: sigma, Src: xrand.NewSource(seed)}
}

func (m *GaussianMutator) Name() string {
	return "gaussian"
}

func (m *GaussianMutator) Mutate(ind evo.Individual[Scalar]) (evo.Individual[Scalar], error) {
	if m == nil || m.Src == nil {
		return nil, errors.New("random source is required")
	}
	if m.Sigma <= 0 {
		return nil, fmt.Errorf("sigma must be > 0, got %v", m.Sigma)
	}
	if len(ind) == 0 {
		return nil, evo.ErrEmptyIndividual
	}

	out := make(evo.Individual[Scalar], len(ind))
	for i, g := range ind {
		dist := distuv.Normal{Mu: float64(g), Sigma: m.Sigma, Src: m.Src}
		out[i] = Scalar(dist.Rand())
	}
	return out, nil
}
