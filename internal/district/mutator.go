package district

import (
	"errors"
	"fmt"
	"math/rand"

	"gendist/internal/evo"
)

// NeighborMutator reassigns one uniformly chosen unit to the district one of
// its uniformly chosen neighbors currently belongs to. District labels evolve
// inside individuals, so the neighbor's label is read from the individual
// being mutated; the atlas supplies adjacency only.
type NeighborMutator struct {
	Atlas *Atlas
	Rand  *rand.Rand
}

func (m *NeighborMutator) Name() string {
	return "neighbor_reassign"
}

func (m *NeighborMutator) Mutate(ind evo.Individual[Assignment]) (evo.Individual[Assignment], error) {
	if m == nil || m.Rand == nil {
		return nil, errors.New("random source is required")
	}
	if m.Atlas == nil {
		return nil, errors.New("atlas is required")
	}
	if len(ind) == 0 {
		return nil, evo.ErrEmptyIndividual
	}

	pos := m.Rand.Intn(len(ind))
	gene := ind[pos]
	neighbors := m.Atlas.Neighbors(gene.Unit)
	if len(neighbors) == 0 {
		return nil, fmt.Errorf("unit %d: %w", gene.Unit, evo.ErrNoNeighbors)
	}
	chosen := neighbors[m.Rand.Intn(len(neighbors))]

	neighborPos := -1
	for i, g := range ind {
		if g.Unit == chosen {
			neighborPos = i
			break
		}
	}
	if neighborPos < 0 {
		return nil, fmt.Errorf("neighbor %d of unit %d is not part of the individual", chosen, gene.Unit)
	}

	out := ind.Clone()
	out[pos] = Assignment{Unit: gene.Unit, District: ind[neighborPos].District}
	return out, nil
}
