package storage

import (
	"context"
	"testing"

	"gendist/internal/model"
)

func testRun(id, createdAt string) model.RunRecord {
	return model.RunRecord{
		VersionedRecord: Stamp(),
		ID:              id,
		Domain:          "vector",
		Seed:            7,
		PopulationSize:  10,
		Generations:     5,
		MutationRate:    0.2,
		CrossoverRate:   0.4,
		Survivor:        "full_replacement",
		BestFitness:     -1.5,
		CreatedAtUTC:    createdAt,
	}
}

func TestMemoryStoreRunRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	want := testRun("run-a", "2026-01-02T03:04:05Z")
	if err := store.SaveRun(ctx, want); err != nil {
		t.Fatalf("save run: %v", err)
	}

	got, ok, err := store.GetRun(ctx, "run-a")
	if err != nil || !ok {
		t.Fatalf("get run: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("run mismatch: got %+v want %+v", got, want)
	}

	if _, ok, err := store.GetRun(ctx, "absent"); err != nil || ok {
		t.Fatalf("absent run: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreListRunsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	for _, run := range []model.RunRecord{
		testRun("run-b", "2026-01-01T00:00:00Z"),
		testRun("run-a", "2026-01-03T00:00:00Z"),
		testRun("run-c", "2026-01-01T00:00:00Z"),
	} {
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("save run %s: %v", run.ID, err)
		}
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	wantIDs := []string{"run-a", "run-b", "run-c"}
	if len(runs) != len(wantIDs) {
		t.Fatalf("got %d runs, want %d", len(runs), len(wantIDs))
	}
	for i, id := range wantIDs {
		if runs[i].ID != id {
			t.Fatalf("run %d = %s, want %s", i, runs[i].ID, id)
		}
	}
}

func TestMemoryStoreFitnessHistory(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	history := []float64{-10, -4, -1}
	if err := store.SaveFitnessHistory(ctx, "run-a", history); err != nil {
		t.Fatalf("save history: %v", err)
	}
	history[0] = 99

	got, ok, err := store.GetFitnessHistory(ctx, "run-a")
	if err != nil || !ok {
		t.Fatalf("get history: ok=%v err=%v", ok, err)
	}
	if len(got) != 3 || got[0] != -10 {
		t.Fatalf("history not copied on save: %v", got)
	}

	got[1] = 99
	again, _, _ := store.GetFitnessHistory(ctx, "run-a")
	if again[1] != -4 {
		t.Fatalf("history not copied on read: %v", again)
	}

	if _, ok, err := store.GetFitnessHistory(ctx, "absent"); err != nil || ok {
		t.Fatalf("absent history: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStorePlanRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init: %v", err)
	}

	plan := model.Plan{
		VersionedRecord: Stamp(),
		RunID:           "run-a",
		Fitness:         -60,
		Entries:         []model.PlanEntry{{Unit: 1, District: 1}, {Unit: 2, District: 2}},
	}
	if err := store.SavePlan(ctx, plan); err != nil {
		t.Fatalf("save plan: %v", err)
	}

	got, ok, err := store.GetPlan(ctx, "run-a")
	if err != nil || !ok {
		t.Fatalf("get plan: ok=%v err=%v", ok, err)
	}
	if got.Fitness != -60 || len(got.Entries) != 2 {
		t.Fatalf("plan mismatch: %+v", got)
	}
}
