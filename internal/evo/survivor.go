package evo

import (
	"fmt"
	"sort"
)

// SurvivorPolicy produces the next generation from the previous one and the
// mutated/crossed candidate set. Implementations must return exactly size
// individuals; the engine re-checks before committing.
type SurvivorPolicy[G Gene[G]] interface {
	Name() string
	Select(prev, candidates []Scored[G], size int) ([]Scored[G], error)
}

// FullReplacement commits the candidate set as-is: every generation fully
// replaces the last.
type FullReplacement[G Gene[G]] struct{}

func (FullReplacement[G]) Name() string {
	return "full_replacement"
}

func (FullReplacement[G]) Select(_, candidates []Scored[G], size int) ([]Scored[G], error) {
	if len(candidates) != size {
		return nil, fmt.Errorf("candidate count %d does not match population size %d", len(candidates), size)
	}
	out := make([]Scored[G], size)
	copy(out, candidates)
	return out, nil
}

// FitnessTruncation ranks the union of the previous generation and the
// candidates by fitness and keeps the top size entries. Candidates win ties,
// so a neutral mutation still displaces its parent.
type FitnessTruncation[G Gene[G]] struct{}

func (FitnessTruncation[G]) Name() string {
	return "fitness_truncation"
}

func (FitnessTruncation[G]) Select(prev, candidates []Scored[G], size int) ([]Scored[G], error) {
	if size < 1 {
		return nil, fmt.Errorf("population size must be >= 1, got %d", size)
	}
	union := make([]Scored[G], 0, len(prev)+len(candidates))
	union = append(union, candidates...)
	union = append(union, prev...)
	if len(union) < size {
		return nil, fmt.Errorf("only %d individuals available for population size %d", len(union), size)
	}
	sort.SliceStable(union, func(i, j int) bool {
		return union[i].Fitness > union[j].Fitness
	})
	out := make([]Scored[G], size)
	copy(out, union[:size])
	return out, nil
}
