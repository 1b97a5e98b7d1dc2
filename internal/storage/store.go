package storage

import (
	"context"

	"gendist/internal/model"
)

// Store defines persistence operations for run artifacts.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]model.RunRecord, error)
	SaveFitnessHistory(ctx context.Context, runID string, history []float64) error
	GetFitnessHistory(ctx context.Context, runID string) ([]float64, bool, error)
	SavePlan(ctx context.Context, plan model.Plan) error
	GetPlan(ctx context.Context, runID string) (model.Plan, bool, error)
}
