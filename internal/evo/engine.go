package evo

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Config collects everything an engine needs: the prototype individual, the
// population parameters, and the three injected strategies. Rates outside
// [0, 1] are clamped at construction.
type Config[G Gene[G]] struct {
	Prototype      Individual[G]
	PopulationSize int
	MutationRate   float64
	CrossoverRate  float64
	Seed           int64
	Objective      Objective[G]
	Crosser        Crosser[G]
	Mutator        Mutator[G]
	Survivor       SurvivorPolicy[G]
}

// GenerationDiagnostics summarizes the committed population after a
// generation step. PopulationScore is present only when the objective also
// implements PopulationObjective.
type GenerationDiagnostics struct {
	Generation      int      `json:"generation"`
	BestFitness     float64  `json:"best_fitness"`
	MeanFitness     float64  `json:"mean_fitness"`
	MinFitness      float64  `json:"min_fitness"`
	Touched         int      `json:"touched"`
	CrossedPairs    int      `json:"crossed_pairs"`
	PopulationScore *float64 `json:"population_score,omitempty"`
}

// Engine owns a fixed-size population and advances it one generation per
// Generation call. All randomness flows from the seeded source created at
// construction plus whatever private sources the strategies own.
type Engine[G Gene[G]] struct {
	cfg          Config[G]
	rng          *rand.Rand
	protoLen     int
	numMutate    int
	numCrossover int
	generation   int
	population   []Individual[G]
	scores       []float64
	diagnostics  GenerationDiagnostics
}

// NewEngine validates the config and seeds the population with
// PopulationSize clones of the prototype.
func NewEngine[G Gene[G]](cfg Config[G]) (*Engine[G], error) {
	if cfg.PopulationSize < 1 {
		return nil, fmt.Errorf("%w: population size must be >= 1, got %d", ErrInvalidConfig, cfg.PopulationSize)
	}
	if len(cfg.Prototype) == 0 {
		return nil, fmt.Errorf("%w: prototype must have at least one gene", ErrInvalidConfig)
	}
	if cfg.Objective == nil {
		return nil, fmt.Errorf("%w: objective is required", ErrInvalidConfig)
	}
	if cfg.Crosser == nil {
		return nil, fmt.Errorf("%w: crosser is required", ErrInvalidConfig)
	}
	if cfg.Mutator == nil {
		return nil, fmt.Errorf("%w: mutator is required", ErrInvalidConfig)
	}
	if math.IsNaN(cfg.MutationRate) || math.IsInf(cfg.MutationRate, 0) {
		return nil, fmt.Errorf("%w: mutation rate must be finite, got %v", ErrInvalidConfig, cfg.MutationRate)
	}
	if math.IsNaN(cfg.CrossoverRate) || math.IsInf(cfg.CrossoverRate, 0) {
		return nil, fmt.Errorf("%w: crossover rate must be finite, got %v", ErrInvalidConfig, cfg.CrossoverRate)
	}
	cfg.MutationRate = clampRate(cfg.MutationRate)
	cfg.CrossoverRate = clampRate(cfg.CrossoverRate)
	if cfg.Survivor == nil {
		cfg.Survivor = FullReplacement[G]{}
	}

	numMutate := int(math.Ceil(cfg.MutationRate * float64(cfg.PopulationSize)))
	numCrossover := int(math.Ceil(cfg.CrossoverRate * float64(cfg.PopulationSize)))
	if numMutate > cfg.PopulationSize {
		return nil, fmt.Errorf("%w: mutation count %d exceeds population size %d", ErrInvalidConfig, numMutate, cfg.PopulationSize)
	}
	if numCrossover > cfg.PopulationSize {
		return nil, fmt.Errorf("%w: crossover count %d exceeds population size %d", ErrInvalidConfig, numCrossover, cfg.PopulationSize)
	}

	population := make([]Individual[G], cfg.PopulationSize)
	for i := range population {
		population[i] = cfg.Prototype.Clone()
	}

	return &Engine[G]{
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		protoLen:     len(cfg.Prototype),
		numMutate:    numMutate,
		numCrossover: numCrossover,
		population:   population,
	}, nil
}

// Generation advances the population by exactly one step: fitness snapshot,
// mutation of numMutate random individuals, single-point recombination of the
// first numCrossover/2 pairs of a uniform shuffle, re-evaluation of touched
// individuals, survivor selection, commit. Either the whole step commits or
// the previous population stays observable.
func (e *Engine[G]) Generation(ctx context.Context) error {
	gen := e.generation + 1
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("generation %d: %w", gen, err)
	}

	prev := make([]Scored[G], len(e.population))
	for i, ind := range e.population {
		prev[i] = Scored[G]{Individual: ind, Fitness: e.cfg.Objective.Score(ind)}
	}

	type candidate struct {
		ind     Individual[G]
		fitness float64
		touched bool
	}
	cands := make([]candidate, len(prev))
	for i, s := range prev {
		cands[i] = candidate{ind: s.Individual, fitness: s.Fitness}
	}

	for _, idx := range e.rng.Perm(len(cands))[:e.numMutate] {
		mutated, err := e.cfg.Mutator.Mutate(cands[idx].ind.Clone())
		if err != nil {
			return fmt.Errorf("generation %d: mutate %s: %w", gen, e.cfg.Mutator.Name(), err)
		}
		if len(mutated) != e.protoLen {
			return fmt.Errorf("generation %d: mutate %s: produced length %d, want %d: %w",
				gen, e.cfg.Mutator.Name(), len(mutated), e.protoLen, ErrLengthMismatch)
		}
		cands[idx] = candidate{ind: mutated, touched: true}
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("generation %d: %w", gen, err)
	}

	e.rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})
	pairs := e.numCrossover / 2
	for p := 0; p < pairs; p++ {
		a, b := cands[2*p], cands[2*p+1]
		left, right, err := e.cfg.Crosser.Cross(a.ind.Clone(), b.ind.Clone())
		if err != nil {
			return fmt.Errorf("generation %d: cross %s: %w", gen, e.cfg.Crosser.Name(), err)
		}
		if len(left) != e.protoLen || len(right) != e.protoLen {
			return fmt.Errorf("generation %d: cross %s: produced lengths %d/%d, want %d: %w",
				gen, e.cfg.Crosser.Name(), len(left), len(right), e.protoLen, ErrLengthMismatch)
		}
		cands[2*p] = candidate{ind: left, touched: true}
		cands[2*p+1] = candidate{ind: right, touched: true}
	}

	touchedCount := 0
	scored := make([]Scored[G], len(cands))
	for i := range cands {
		if cands[i].touched {
			cands[i].fitness = e.cfg.Objective.Score(cands[i].ind)
			touchedCount++
		}
		scored[i] = Scored[G]{Individual: cands[i].ind, Fitness: cands[i].fitness}
	}

	survivors, err := e.cfg.Survivor.Select(prev, scored, e.cfg.PopulationSize)
	if err != nil {
		return fmt.Errorf("generation %d: survivor %s: %w", gen, e.cfg.Survivor.Name(), err)
	}
	if len(survivors) != e.cfg.PopulationSize {
		return fmt.Errorf("generation %d: survivor %s: returned %d individuals, want %d",
			gen, e.cfg.Survivor.Name(), len(survivors), e.cfg.PopulationSize)
	}
	for i, s := range survivors {
		if len(s.Individual) != e.protoLen {
			return fmt.Errorf("generation %d: survivor %s: individual %d has length %d, want %d: %w",
				gen, e.cfg.Survivor.Name(), i, len(s.Individual), e.protoLen, ErrLengthMismatch)
		}
	}

	population := make([]Individual[G], len(survivors))
	scores := make([]float64, len(survivors))
	for i, s := range survivors {
		population[i] = s.Individual
		scores[i] = s.Fitness
	}
	e.population = population
	e.scores = scores
	e.generation = gen
	e.diagnostics = e.summarize(gen, scores, touchedCount, pairs)
	return nil
}

func (e *Engine[G]) summarize(generation int, scores []float64, touched, crossedPairs int) GenerationDiagnostics {
	d := GenerationDiagnostics{
		Generation:   generation,
		Touched:      touched,
		CrossedPairs: crossedPairs,
	}
	if len(scores) == 0 {
		return d
	}
	d.BestFitness = scores[0]
	d.MinFitness = scores[0]
	for _, s := range scores {
		if s > d.BestFitness {
			d.BestFitness = s
		}
		if s < d.MinFitness {
			d.MinFitness = s
		}
	}
	d.MeanFitness = stat.Mean(scores, nil)
	if agg, ok := e.cfg.Objective.(PopulationObjective[G]); ok {
		score := agg.ScorePopulation(e.population)
		d.PopulationScore = &score
	}
	return d
}

// Population returns a cloned snapshot of the current generation.
func (e *Engine[G]) Population() []Individual[G] {
	out := make([]Individual[G], len(e.population))
	for i, ind := range e.population {
		out[i] = ind.Clone()
	}
	return out
}

// Scores returns the fitness values committed with the current generation.
// Empty until the first Generation call.
func (e *Engine[G]) Scores() []float64 {
	return append([]float64(nil), e.scores...)
}

// Generations reports how many steps have committed.
func (e *Engine[G]) Generations() int {
	return e.generation
}

// Diagnostics returns the summary of the most recent committed step.
func (e *Engine[G]) Diagnostics() GenerationDiagnostics {
	return e.diagnostics
}

// NumMutate is the per-generation mutation count derived from the config.
func (e *Engine[G]) NumMutate() int {
	return e.numMutate
}

// NumCrossover is the per-generation crossover count derived from the config.
func (e *Engine[G]) NumCrossover() int {
	return e.numCrossover
}

func clampRate(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
