package vector

import "gendist/internal/evo"

// SphereObjective scores an individual by negated squared distance from a
// target point; the optimum is 0 at the target. A nil target means the
// origin. Also implements the population-level aggregate as the mean score.
type SphereObjective struct {
	Target []float64
}

func (o SphereObjective) Name() string {
	return "sphere"
}

func (o SphereObjective) Score(ind evo.Individual[Scalar]) float64 {
	sum := 0.0
	for i, g := range ind {
		v := float64(g)
		if i < len(o.Target) {
			v -= o.Target[i]
		}
		sum += v * v
	}
	return -sum
}

func (o SphereObjective) ScorePopulation(pop []evo.Individual[Scalar]) float64 {
	if len(pop) == 0 {
		return 0
	}
	total := 0.0
	for _, ind := range pop {
		total += o.Score(ind)
	}
	return total / float64(len(pop))
}
