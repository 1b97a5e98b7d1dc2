package evo

import "errors"

var (
	// ErrInvalidConfig marks engine construction failures.
	ErrInvalidConfig = errors.New("invalid engine config")

	// ErrEmptyIndividual is returned by strategies handed an individual with
	// no genes.
	ErrEmptyIndividual = errors.New("individual has no genes")

	// ErrLengthMismatch is returned when two individuals of different length
	// are crossed, or when a strategy returns an individual whose length no
	// longer matches the prototype.
	ErrLengthMismatch = errors.New("individual length mismatch")

	// ErrNoNeighbors is returned by neighbor-constrained mutation when the
	// chosen unit has no neighbors to borrow a label from.
	ErrNoNeighbors = errors.New("unit has no neighbors")
)
