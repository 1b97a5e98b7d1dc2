// Package gendist is the embeddable entry point: it opens a store, drives an
// evolution engine to completion for one of the supported genotype domains,
// and persists the resulting artifacts.
package gendist

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"gendist/internal/district"
	"gendist/internal/evo"
	"gendist/internal/model"
	"gendist/internal/storage"
	"gendist/internal/vector"
)

const (
	DomainVector    = "vector"
	DomainDistricts = "districts"

	SurvivorReplace  = "replace"
	SurvivorTruncate = "truncate"

	defaultDBPath = "gendist.db"
)

type Options struct {
	StoreKind string
	DBPath    string
}

type Client struct {
	store storage.Store
}

// RunRequest configures one evolution run. Prototype and Sigma drive the
// vector domain; UnitsPath and NeighborsPath drive the districts domain.
type RunRequest struct {
	Domain         string
	PopulationSize int
	Generations    int
	MutationRate   float64
	CrossoverRate  float64
	Seed           int64
	Survivor       string

	Prototype []float64
	Sigma     float64

	UnitsPath     string
	NeighborsPath string
}

type RunSummary struct {
	RunID            string
	Domain           string
	BestFitness      float64
	BestByGeneration []float64
}

// Open builds a client over the configured store backend and initializes it.
func Open(ctx context.Context, opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Run dispatches on the request domain.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	switch req.Domain {
	case DomainVector:
		return c.RunVector(ctx, req)
	case DomainDistricts:
		return c.RunDistricts(ctx, req)
	default:
		return RunSummary{}, fmt.Errorf("unsupported domain: %q", req.Domain)
	}
}

// RunVector evolves a continuous individual toward the sphere optimum.
func (c *Client) RunVector(ctx context.Context, req RunRequest) (RunSummary, error) {
	if err := validateRequest(req); err != nil {
		return RunSummary{}, err
	}
	if len(req.Prototype) == 0 {
		return RunSummary{}, errors.New("prototype is required for the vector domain")
	}
	sigma := req.Sigma
	if sigma <= 0 {
		sigma = 1.0
	}

	survivor, err := survivorPolicy[vector.Scalar](req.Survivor)
	if err != nil {
		return RunSummary{}, err
	}
	engine, err := evo.NewEngine(evo.Config[vector.Scalar]{
		Prototype:      vector.NewIndividual(req.Prototype...),
		PopulationSize: req.PopulationSize,
		MutationRate:   req.MutationRate,
		CrossoverRate:  req.CrossoverRate,
		Seed:           req.Seed,
		Objective:      vector.SphereObjective{},
		Crosser:        &evo.SinglePointCrosser[vector.Scalar]{Rand: rand.New(rand.NewSource(req.Seed + 1))},
		Mutator:        vector.NewGaussianMutator(sigma, uint64(req.Seed)+2),
		Survivor:       survivor,
	})
	if err != nil {
		return RunSummary{}, err
	}

	best, history, err := drive(ctx, engine, req.Generations)
	if err != nil {
		return RunSummary{}, err
	}

	summary, err := c.persist(ctx, req, DomainVector, survivor.Name(), best, history)
	if err != nil {
		return RunSummary{}, err
	}
	return summary, nil
}

// RunDistricts evolves district assignments over the unit adjacency graph
// loaded from the request's flat files.
func (c *Client) RunDistricts(ctx context.Context, req RunRequest) (RunSummary, error) {
	if err := validateRequest(req); err != nil {
		return RunSummary{}, err
	}
	if req.UnitsPath == "" || req.NeighborsPath == "" {
		return RunSummary{}, errors.New("units and neighbors paths are required for the districts domain")
	}

	atlas, err := district.LoadAtlas(req.UnitsPath, req.NeighborsPath)
	if err != nil {
		return RunSummary{}, err
	}
	survivor, err := survivorPolicy[district.Assignment](req.Survivor)
	if err != nil {
		return RunSummary{}, err
	}
	engine, err := evo.NewEngine(evo.Config[district.Assignment]{
		Prototype:      atlas.Prototype(),
		PopulationSize: req.PopulationSize,
		MutationRate:   req.MutationRate,
		CrossoverRate:  req.CrossoverRate,
		Seed:           req.Seed,
		Objective:      district.BalanceObjective{Atlas: atlas},
		Crosser:        &evo.SinglePointCrosser[district.Assignment]{Rand: rand.New(rand.NewSource(req.Seed + 1))},
		Mutator:        &district.NeighborMutator{Atlas: atlas, Rand: rand.New(rand.NewSource(req.Seed + 2))},
		Survivor:       survivor,
	})
	if err != nil {
		return RunSummary{}, err
	}

	best, history, err := drive(ctx, engine, req.Generations)
	if err != nil {
		return RunSummary{}, err
	}

	summary, err := c.persist(ctx, req, DomainDistricts, survivor.Name(), best, history)
	if err != nil {
		return RunSummary{}, err
	}

	plan := bestPlan(engine, summary.RunID)
	if err := c.store.SavePlan(ctx, plan); err != nil {
		return RunSummary{}, err
	}
	return summary, nil
}

// Runs lists persisted runs, newest first.
func (c *Client) Runs(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	runs, err := c.store.ListRuns(ctx)
	if err != nil {
		return nil, err
	}
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Fitness returns the per-generation best-fitness history of a run.
func (c *Client) Fitness(ctx context.Context, runID string) ([]float64, error) {
	history, ok, err := c.store.GetFitnessHistory(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no fitness history for run %s", runID)
	}
	return history, nil
}

// Plan returns the final district assignment of a districts run.
func (c *Client) Plan(ctx context.Context, runID string) (model.Plan, error) {
	plan, ok, err := c.store.GetPlan(ctx, runID)
	if err != nil {
		return model.Plan{}, err
	}
	if !ok {
		return model.Plan{}, fmt.Errorf("no plan for run %s", runID)
	}
	return plan, nil
}

func validateRequest(req RunRequest) error {
	if req.PopulationSize < 1 {
		return fmt.Errorf("population size must be >= 1, got %d", req.PopulationSize)
	}
	if req.Generations < 1 {
		return fmt.Errorf("generations must be >= 1, got %d", req.Generations)
	}
	return nil
}

func survivorPolicy[G evo.Gene[G]](name string) (evo.SurvivorPolicy[G], error) {
	switch name {
	case "", SurvivorReplace:
		return evo.FullReplacement[G]{}, nil
	case SurvivorTruncate:
		return evo.FitnessTruncation[G]{}, nil
	default:
		return nil, fmt.Errorf("unsupported survivor policy: %q", name)
	}
}

func drive[G evo.Gene[G]](ctx context.Context, engine *evo.Engine[G], generations int) (float64, []float64, error) {
	best := math.Inf(-1)
	history := make([]float64, 0, generations)
	for gen := 0; gen < generations; gen++ {
		if err := engine.Generation(ctx); err != nil {
			return 0, nil, err
		}
		d := engine.Diagnostics()
		history = append(history, d.BestFitness)
		if d.BestFitness > best {
			best = d.BestFitness
		}
	}
	return best, history, nil
}

func (c *Client) persist(ctx context.Context, req RunRequest, domain, survivor string, best float64, history []float64) (RunSummary, error) {
	runID := fmt.Sprintf("%s-%s", domain, uuid.NewString())
	record := model.RunRecord{
		VersionedRecord: storage.Stamp(),
		ID:              runID,
		Domain:          domain,
		Seed:            req.Seed,
		PopulationSize:  req.PopulationSize,
		Generations:     req.Generations,
		MutationRate:    req.MutationRate,
		CrossoverRate:   req.CrossoverRate,
		Survivor:        survivor,
		BestFitness:     best,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := c.store.SaveRun(ctx, record); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveFitnessHistory(ctx, runID, history); err != nil {
		return RunSummary{}, err
	}
	return RunSummary{
		RunID:            runID,
		Domain:           domain,
		BestFitness:      best,
		BestByGeneration: history,
	}, nil
}

func bestPlan(engine *evo.Engine[district.Assignment], runID string) model.Plan {
	population := engine.Population()
	scores := engine.Scores()

	bestIdx := 0
	for i := range scores {
		if scores[i] > scores[bestIdx] {
			bestIdx = i
		}
	}

	entries := make([]model.PlanEntry, len(population[bestIdx]))
	for i, gene := range population[bestIdx] {
		entries[i] = model.PlanEntry{Unit: int(gene.Unit), District: int(gene.District)}
	}
	return model.Plan{
		VersionedRecord: storage.Stamp(),
		RunID:           runID,
		Fitness:         scores[bestIdx],
		Entries:         entries,
	}
}
