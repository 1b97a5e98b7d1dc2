// Package district is the discrete genotype: each gene assigns one voting
// unit to a legislative district, and mutation may only move a unit into a
// district one of its graph neighbors currently belongs to.
package district

import "gendist/internal/evo"

// UnitID identifies a voting unit.
type UnitID int

// DistrictID is the legislative district label carried by a gene.
type DistrictID int

// Assignment is the discrete gene: one unit's current district label. It is a
// plain value; individuals never share mutable gene records.
type Assignment struct {
	Unit     UnitID
	District DistrictID
}

func (a Assignment) Clone() Assignment {
	return a
}

func (a Assignment) Equal(other Assignment) bool {
	return a == other
}

// Unit is one atlas record: the seed district from the source data, the
// partisan vote tallies, and the identifiers of adjacent units.
type Unit struct {
	ID          UnitID
	District    DistrictID
	Republicans int
	Democrats   int
	Other       int
	Neighbors   []UnitID
}

var _ evo.Gene[Assignment] = Assignment{}
