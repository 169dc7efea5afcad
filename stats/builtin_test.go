package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/kataklinger/galex"
	"github.com/kataklinger/galex/internal/galextest"
	"github.com/kataklinger/galex/stats"
)

type constGenotype float64

func (g constGenotype) Clone() galex.Genotype { return g }

func newStatsTestPopulation(t *testing.T, values ...float64) *galex.Population {
	t.Helper()
	cmp := galex.ComparatorFunc(func(a, b galex.Fitness) int { return a.Compare(b) })
	fit := galex.FitnessOpFunc(func(_ context.Context, g galex.Genotype) (galex.Fitness, error) {
		v := galextest.Scalar(g.(constGenotype))
		return &v, nil
	})
	init := galex.InitializerFunc(func(branch int) galex.Genotype { return constGenotype(0) })
	pop := galex.NewPopulation(galex.PopulationParams{Size: 0}, init, fit, cmp, nil)
	for _, v := range values {
		if err := pop.Insert(context.Background(), constGenotype(v), nil); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return pop
}

func TestPopulationSizeTracksLength(t *testing.T) {
	pop := newStatsTestPopulation(t, 1, 2, 3)
	tr := &stats.PopulationSize{}
	v := tr.Evaluate(galex.StatsSnapshot{Population: pop, Branch: 0})
	if v.Len() != 1 || v.Max() != 3 {
		t.Fatalf("PopulationSize.Evaluate = %+v, want a single observation of 3", v)
	}
}

func TestRawFitnessScansEveryMember(t *testing.T) {
	pop := newStatsTestPopulation(t, 1, 2, 3)
	tr := &stats.RawFitness{}
	v := tr.Evaluate(galex.StatsSnapshot{Population: pop, Branch: 0})
	if v.Len() != 3 {
		t.Fatalf("RawFitness observed %d members, want 3", v.Len())
	}
	if v.Max() != 3 || v.Min() != 1 {
		t.Fatalf("RawFitness range = [%v, %v], want [1, 3]", v.Min(), v.Max())
	}
}

func TestRegistryObserveBindsAndStoresValues(t *testing.T) {
	pop := newStatsTestPopulation(t, 4, 5, 6)
	reg := stats.NewRegistry(&stats.PopulationSize{})
	reg.Bind(&stats.RawFitness{})

	reg.Observe(galex.StatsSnapshot{Population: pop, Branch: 0})

	size, ok := reg.Value(stats.IDPopulationSize)
	if !ok || size.Max() != 3 {
		t.Fatalf("PopulationSize value = %+v, ok=%v, want Max()==3", size, ok)
	}
	raw, ok := reg.Value(stats.IDRawFitness)
	if !ok || raw.Max() != 6 {
		t.Fatalf("RawFitness value = %+v, ok=%v, want Max()==6", raw, ok)
	}
	if _, ok := reg.Value("nonexistent"); ok {
		t.Fatal("Value should report false for an unobserved ID")
	}
}

func TestOperationCountTicksIndependently(t *testing.T) {
	cross := stats.NewOperationCount("crossover")
	mutate := stats.NewOperationCount("mutation")

	cross.Tick()
	cross.Tick()
	mutate.Tick()

	if got := cross.Evaluate(galex.StatsSnapshot{}); got.Max() != 2 {
		t.Fatalf("crossover count = %v, want 2", got.Max())
	}
	if got := mutate.Evaluate(galex.StatsSnapshot{}); got.Max() != 1 {
		t.Fatalf("mutation count = %v, want 1", got.Max())
	}
	if cross.ID() == mutate.ID() {
		t.Fatal("distinct OperationCount names must produce distinct IDs")
	}
}

func TestOperationTimeRecordsDurations(t *testing.T) {
	timer := stats.NewOperationTime("selection")
	timer.Record(10 * time.Millisecond)
	v := timer.Record(20 * time.Millisecond)
	if v.Len() != 2 {
		t.Fatalf("OperationTime recorded %d samples, want 2", v.Len())
	}
}
