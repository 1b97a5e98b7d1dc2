package main

import (
	"os"
	"path/filepath"
	"testing"

	"gendist/pkg/gendist"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadRunRequest(t *testing.T) {
	path := writeConfig(t, `{
		"domain": "vector",
		"population_size": 20,
		"generations": 50,
		"mutation_rate": 0.2,
		"crossover_rate": 0.4,
		"seed": 7,
		"survivor": "truncate",
		"prototype": [1.5, -2, 3],
		"sigma": 0.5
	}`)

	req, err := loadRunRequest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Domain != gendist.DomainVector {
		t.Fatalf("domain = %q", req.Domain)
	}
	if req.PopulationSize != 20 || req.Generations != 50 || req.Seed != 7 {
		t.Fatalf("counts mismatch: %+v", req)
	}
	if req.MutationRate != 0.2 || req.CrossoverRate != 0.4 || req.Sigma != 0.5 {
		t.Fatalf("rates mismatch: %+v", req)
	}
	if req.Survivor != gendist.SurvivorTruncate {
		t.Fatalf("survivor = %q", req.Survivor)
	}
	want := []float64{1.5, -2, 3}
	if len(req.Prototype) != len(want) {
		t.Fatalf("prototype = %v", req.Prototype)
	}
	for i, v := range want {
		if req.Prototype[i] != v {
			t.Fatalf("prototype[%d] = %v, want %v", i, req.Prototype[i], v)
		}
	}
}

func TestLoadRunRequestDistricts(t *testing.T) {
	path := writeConfig(t, `{
		"domain": "districts",
		"population_size": 10,
		"generations": 5,
		"units_path": "units.tsv",
		"neighbors_path": "neighbors.tsv"
	}`)

	req, err := loadRunRequest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if req.Domain != gendist.DomainDistricts {
		t.Fatalf("domain = %q", req.Domain)
	}
	if req.UnitsPath != "units.tsv" || req.NeighborsPath != "neighbors.tsv" {
		t.Fatalf("paths mismatch: %+v", req)
	}
}

func TestLoadRunRequestMissingDomain(t *testing.T) {
	path := writeConfig(t, `{"population_size": 10}`)
	if _, err := loadRunRequest(path); err == nil {
		t.Fatal("expected error for missing domain")
	}
}

func TestLoadRunRequestInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"domain": `)
	if _, err := loadRunRequest(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadRunRequestMissingFile(t *testing.T) {
	if _, err := loadRunRequest(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
