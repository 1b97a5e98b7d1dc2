package district

import "gendist/internal/evo"

// BalanceObjective scores an assignment by partisan balance: for every
// district it sums the unit vote tallies and accumulates the absolute
// republican/democrat margin, negated so that a perfectly balanced map scores
// 0 and lopsided maps score lower. Also provides the population mean as the
// aggregate form.
type BalanceObjective struct {
	Atlas *Atlas
}

func (o BalanceObjective) Name() string {
	return "partisan_balance"
}

func (o BalanceObjective) Score(ind evo.Individual[Assignment]) float64 {
	type tally struct {
		republicans int
		democrats   int
	}
	byDistrict := make(map[DistrictID]*tally)
	for _, gene := range ind {
		unit, ok := o.Atlas.Unit(gene.Unit)
		if !ok {
			continue
		}
		t := byDistrict[gene.District]
		if t == nil {
			t = &tally{}
			byDistrict[gene.District] = t
		}
		t.republicans += unit.Republicans
		t.democrats += unit.Democrats
	}

	total := 0
	for _, t := range byDistrict {
		margin := t.republicans - t.democrats
		if margin < 0 {
			margin = -margin
		}
		total += margin
	}
	return -float64(total)
}

func (o BalanceObjective) ScorePopulation(pop []evo.Individual[Assignment]) float64 {
	if len(pop) == 0 {
		return 0
	}
	total := 0.0
	for _, ind := range pop {
		total += o.Score(ind)
	}
	return total / float64(len(pop))
}
