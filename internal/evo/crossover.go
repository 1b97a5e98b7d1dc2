package evo

import (
	"errors"
	"fmt"
	"math/rand"
)

// SinglePointCrosser exchanges the tails of two equal-length individuals at a
// uniformly random cut index in [0, n-1]. Slot references move between the
// pair; no gene value is invented or lost.
type SinglePointCrosser[G Gene[G]] struct {
	Rand *rand.Rand
}

func (c *SinglePointCrosser[G]) Name() string {
	return "single_point"
}

func (c *SinglePointCrosser[G]) Cross(a, b Individual[G]) (Individual[G], Individual[G], error) {
	if c == nil || c.Rand == nil {
		return nil, nil, errors.New("random source is required")
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, ErrEmptyIndividual
	}
	if len(a) != len(b) {
		return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	cut := c.Rand.Intn(len(a))
	left := make(Individual[G], len(a))
	right := make(Individual[G], len(b))
	copy(left, a[:cut])
	copy(left[cut:], b[cut:])
	copy(right, b[:cut])
	copy(right[cut:], a[cut:])
	return left, right, nil
}
