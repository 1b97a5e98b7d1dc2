package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord describes one completed evolution run.
type RunRecord struct {
	VersionedRecord
	ID             string  `json:"id"`
	Domain         string  `json:"domain"`
	Seed           int64   `json:"seed"`
	PopulationSize int     `json:"population_size"`
	Generations    int     `json:"generations"`
	MutationRate   float64 `json:"mutation_rate"`
	CrossoverRate  float64 `json:"crossover_rate"`
	Survivor       string  `json:"survivor"`
	BestFitness    float64 `json:"best_fitness"`
	CreatedAtUTC   string  `json:"created_at_utc"`
}

// Plan is the best district assignment a run produced.
type Plan struct {
	VersionedRecord
	RunID   string      `json:"run_id"`
	Fitness float64     `json:"fitness"`
	Entries []PlanEntry `json:"entries"`
}

// PlanEntry assigns one voting unit to a district.
type PlanEntry struct {
	Unit     int `json:"unit"`
	District int `json:"district"`
}
