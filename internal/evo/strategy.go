package evo

// Objective scores a single individual. Higher is fitter. The engine calls
// Score once per individual before mutation and again for every individual a
// generation step touched.
type Objective[G Gene[G]] interface {
	Name() string
	Score(ind Individual[G]) float64
}

// PopulationObjective is the optional aggregate form of an objective. When the
// engine's objective also satisfies it, the population-level score is recorded
// in diagnostics. It never gates a generation step.
type PopulationObjective[G Gene[G]] interface {
	ScorePopulation(pop []Individual[G]) float64
}

// Mutator perturbs one individual. Implementations must be pure: the input is
// never modified, and the only state a mutator touches besides its arguments
// is its own random source.
type Mutator[G Gene[G]] interface {
	Name() string
	Mutate(ind Individual[G]) (Individual[G], error)
}

// Crosser recombines a pair of equal-length individuals into a new pair.
// Implementations must not modify their inputs.
type Crosser[G Gene[G]] interface {
	Name() string
	Cross(a, b Individual[G]) (Individual[G], Individual[G], error)
}

// Scored pairs an individual with its most recent fitness.
type Scored[G Gene[G]] struct {
	Individual Individual[G]
	Fitness    float64
}
