package district

import (
	"errors"
	"math/rand"
	"testing"

	"gendist/internal/evo"
)

// gridUnits is a 2x2 grid: 1-2 on top, 3-4 below, edge-adjacent.
func gridUnits() []Unit {
	return []Unit{
		{ID: 1, District: 1, Republicans: 100, Democrats: 50, Neighbors: []UnitID{2, 3}},
		{ID: 2, District: 1, Republicans: 40, Democrats: 90, Neighbors: []UnitID{1, 4}},
		{ID: 3, District: 2, Republicans: 70, Democrats: 70, Neighbors: []UnitID{1, 4}},
		{ID: 4, District: 2, Republicans: 20, Democrats: 80, Neighbors: []UnitID{2, 3}},
	}
}

func TestAssignmentGene(t *testing.T) {
	a := Assignment{Unit: 1, District: 2}
	if !a.Equal(a.Clone()) {
		t.Fatal("clone not value-equal")
	}
	if a.Equal(Assignment{Unit: 1, District: 3}) {
		t.Fatal("distinct districts compare equal")
	}
}

func TestNewAtlasValidation(t *testing.T) {
	if _, err := NewAtlas(nil); err == nil {
		t.Fatal("expected error for empty unit set")
	}

	dup := []Unit{{ID: 1}, {ID: 1}}
	if _, err := NewAtlas(dup); err == nil {
		t.Fatal("expected error for duplicate unit")
	}

	dangling := []Unit{{ID: 1, Neighbors: []UnitID{9}}}
	if _, err := NewAtlas(dangling); err == nil {
		t.Fatal("expected error for unknown neighbor")
	}
}

func TestAtlasPrototype(t *testing.T) {
	atlas, err := NewAtlas(gridUnits())
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}
	if atlas.Len() != 4 {
		t.Fatalf("atlas length %d, want 4", atlas.Len())
	}

	proto := atlas.Prototype()
	want := []Assignment{{1, 1}, {2, 1}, {3, 2}, {4, 2}}
	if len(proto) != len(want) {
		t.Fatalf("prototype length %d, want %d", len(proto), len(want))
	}
	for i, gene := range proto {
		if gene != want[i] {
			t.Fatalf("prototype gene %d = %v, want %v", i, gene, want[i])
		}
	}
}

func TestAtlasCopiesNeighbors(t *testing.T) {
	atlas, err := NewAtlas(gridUnits())
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}

	neighbors := atlas.Neighbors(1)
	neighbors[0] = 99
	if got := atlas.Neighbors(1); got[0] != 2 {
		t.Fatalf("atlas neighbors mutated through returned slice: %v", got)
	}
}

func TestNeighborMutatorInvariant(t *testing.T) {
	atlas, err := NewAtlas(gridUnits())
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}
	mutator := &NeighborMutator{Atlas: atlas, Rand: rand.New(rand.NewSource(5))}

	ind := atlas.Prototype()
	for i := 0; i < 500; i++ {
		out, err := mutator.Mutate(ind)
		if err != nil {
			t.Fatalf("mutate %d: %v", i, err)
		}
		if len(out) != len(ind) {
			t.Fatalf("mutate %d: length %d, want %d", i, len(out), len(ind))
		}

		changed := 0
		for pos := range out {
			if out[pos] == ind[pos] {
				continue
			}
			changed++
			if out[pos].Unit != ind[pos].Unit {
				t.Fatalf("mutate %d: unit identity changed at %d: %v", i, pos, out[pos])
			}
			held := false
			for _, n := range atlas.Neighbors(out[pos].Unit) {
				for _, g := range ind {
					if g.Unit == n && g.District == out[pos].District {
						held = true
					}
				}
			}
			if !held {
				t.Fatalf("mutate %d: new district %d not held by any neighbor of unit %d",
					i, out[pos].District, out[pos].Unit)
			}
		}
		if changed > 1 {
			t.Fatalf("mutate %d: %d genes changed, want at most 1", i, changed)
		}
		ind = out
	}
}

func TestNeighborMutatorPure(t *testing.T) {
	atlas, err := NewAtlas(gridUnits())
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}
	mutator := &NeighborMutator{Atlas: atlas, Rand: rand.New(rand.NewSource(6))}

	ind := atlas.Prototype()
	want := ind.Clone()
	if _, err := mutator.Mutate(ind); err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if !ind.Equal(want) {
		t.Fatalf("input mutated in place: %v", ind)
	}
}

func TestNeighborMutatorNoNeighbors(t *testing.T) {
	atlas, err := NewAtlas([]Unit{{ID: 1, District: 1}})
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}
	mutator := &NeighborMutator{Atlas: atlas, Rand: rand.New(rand.NewSource(7))}

	if _, err := mutator.Mutate(atlas.Prototype()); !errors.Is(err, evo.ErrNoNeighbors) {
		t.Fatalf("expected ErrNoNeighbors, got %v", err)
	}
}

func TestNeighborMutatorErrors(t *testing.T) {
	atlas, err := NewAtlas(gridUnits())
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}

	bare := &NeighborMutator{Atlas: atlas}
	if _, err := bare.Mutate(atlas.Prototype()); err == nil {
		t.Fatal("expected error without a random source")
	}

	noAtlas := &NeighborMutator{Rand: rand.New(rand.NewSource(8))}
	if _, err := noAtlas.Mutate(atlas.Prototype()); err == nil {
		t.Fatal("expected error without an atlas")
	}

	mutator := &NeighborMutator{Atlas: atlas, Rand: rand.New(rand.NewSource(9))}
	if _, err := mutator.Mutate(nil); !errors.Is(err, evo.ErrEmptyIndividual) {
		t.Fatalf("expected ErrEmptyIndividual, got %v", err)
	}
}

func TestBalanceObjective(t *testing.T) {
	atlas, err := NewAtlas(gridUnits())
	if err != nil {
		t.Fatalf("new atlas: %v", err)
	}
	obj := BalanceObjective{Atlas: atlas}

	// District 1 holds units 1,2: margin |140-140| = 0.
	// District 2 holds units 3,4: margin |90-150| = 60.
	if got := obj.Score(atlas.Prototype()); got != -60 {
		t.Fatalf("score = %v, want -60", got)
	}

	// Moving unit 4 into district 1: |160-220| + |70-70| = 60.
	moved := atlas.Prototype()
	moved[3] = Assignment{Unit: 4, District: 1}
	if got := obj.Score(moved); got != -60 {
		t.Fatalf("score after move = %v, want -60", got)
	}

	pop := []evo.Individual[Assignment]{atlas.Prototype(), moved}
	if got := obj.ScorePopulation(pop); got != -60 {
		t.Fatalf("population score = %v, want -60", got)
	}
}
