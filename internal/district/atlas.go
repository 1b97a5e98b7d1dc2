package district

import (
	"fmt"

	"gendist/internal/evo"
)

// Atlas is the read-only adjacency reference consulted by the mutator and the
// objective. It is never modified after construction; only an individual's
// own genes carry evolving district labels.
type Atlas struct {
	order []UnitID
	units map[UnitID]Unit
}

// NewAtlas validates the unit set and freezes it. Duplicate unit IDs and
// neighbor references to unknown units are rejected.
func NewAtlas(units []Unit) (*Atlas, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("atlas requires at least one unit")
	}

	byID := make(map[UnitID]Unit, len(units))
	order := make([]UnitID, 0, len(units))
	for _, u := range units {
		if _, ok := byID[u.ID]; ok {
			return nil, fmt.Errorf("duplicate unit %d", u.ID)
		}
		u.Neighbors = append([]UnitID(nil), u.Neighbors...)
		byID[u.ID] = u
		order = append(order, u.ID)
	}
	for _, u := range byID {
		for _, n := range u.Neighbors {
			if _, ok := byID[n]; !ok {
				return nil, fmt.Errorf("unit %d references unknown neighbor %d", u.ID, n)
			}
		}
	}

	return &Atlas{order: order, units: byID}, nil
}

// Len is the number of units in the atlas.
func (a *Atlas) Len() int {
	return len(a.order)
}

// Unit looks up one record by ID.
func (a *Atlas) Unit(id UnitID) (Unit, bool) {
	u, ok := a.units[id]
	if !ok {
		return Unit{}, false
	}
	u.Neighbors = append([]UnitID(nil), u.Neighbors...)
	return u, true
}

// Neighbors returns a copy of the unit's neighbor identifiers.
func (a *Atlas) Neighbors(id UnitID) []UnitID {
	u, ok := a.units[id]
	if !ok {
		return nil
	}
	return append([]UnitID(nil), u.Neighbors...)
}

// Prototype builds the engine prototype individual in atlas order, seeding
// every gene with the unit's source district.
func (a *Atlas) Prototype() evo.Individual[Assignment] {
	ind := make(evo.Individual[Assignment], len(a.order))
	for i, id := range a.order {
		ind[i] = Assignment{Unit: id, District: a.units[id].District}
	}
	return ind
}
