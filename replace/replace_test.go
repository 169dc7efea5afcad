package replace_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/kataklinger/galex"
	"github.com/kataklinger/galex/internal/galextest"
	"github.com/kataklinger/galex/replace"
)

var cmp = galex.ComparatorFunc(func(a, b galex.Fitness) int { return a.Compare(b) })

// scalarGenotype wraps a float64 so fitnessOfScalar can read it back
// without needing any real representation; tests only care about fitness
// ordering, not the genotype itself.
type scalarGenotype float64

func (g scalarGenotype) Clone() galex.Genotype { return g }

var fitnessOfScalar = galex.FitnessOpFunc(func(_ context.Context, g galex.Genotype) (galex.Fitness, error) {
	v := galextest.Scalar(g.(scalarGenotype))
	return &v, nil
})

func newReplaceTestPopulation(t *testing.T, values ...float64) *galex.Population {
	t.Helper()
	params := galex.PopulationParams{Size: 0}
	init := galex.InitializerFunc(func(branch int) galex.Genotype { return scalarGenotype(0) })
	pop := galex.NewPopulation(params, init, fitnessOfScalar, cmp, nil)

	for _, v := range values {
		if err := pop.Insert(context.Background(), scalarGenotype(v), nil); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	return pop
}

func makeOffspring(t *testing.T, n int) []*galex.ChromosomeStorage {
	t.Helper()
	r := rand.New(rand.NewSource(2))
	out := make([]*galex.ChromosomeStorage, n)
	for i := range out {
		cs := galex.NewChromosomeStorage(galextest.NewPermutation(r, 4), nil)
		v := galextest.Scalar(float64(i))
		cs.SetScaledFitness(&v)
		out[i] = cs
	}
	return out
}

func TestGenerationalReplacesEveryMember(t *testing.T) {
	pop := newReplaceTestPopulation(t, 1, 2, 3)
	offspring := makeOffspring(t, 3)

	idx := replace.Generational()(pop, offspring, 0)
	if len(idx) != 3 {
		t.Fatalf("len(idx) = %d, want 3", len(idx))
	}
	seen := map[int]bool{}
	for _, i := range idx {
		seen[i] = true
	}
	for i := 0; i < 3; i++ {
		if !seen[i] {
			t.Fatalf("index %d missing from Generational's victim set", i)
		}
	}
}

func TestRandomReplacesDistinctIndices(t *testing.T) {
	pop := newReplaceTestPopulation(t, 1, 2, 3, 4, 5)
	offspring := makeOffspring(t, 3)
	r := rand.New(rand.NewSource(9))

	idx := replace.Random(r)(pop, offspring, 0)
	if len(idx) != 3 {
		t.Fatalf("len(idx) = %d, want 3", len(idx))
	}
	seen := map[int]bool{}
	for _, i := range idx {
		if seen[i] {
			t.Fatalf("Random produced duplicate index %d", i)
		}
		seen[i] = true
	}
}

func TestParentReplacesOnlyItsOwnParentSlot(t *testing.T) {
	pop := newReplaceTestPopulation(t, 1, 2, 3)
	parent := pop.Members().At(1)

	child := galex.NewChromosomeStorage(&galextest.Vector{Values: []float64{9}}, nil)
	child.SetParent(parent)

	idx := replace.Parent()(pop, []*galex.ChromosomeStorage{child}, 0)
	if len(idx) != 1 || idx[0] != 1 {
		t.Fatalf("Parent() idx = %v, want [1]", idx)
	}
}

func TestParentSkipsChildWithNoSurvivingParent(t *testing.T) {
	pop := newReplaceTestPopulation(t, 1, 2, 3)
	orphan := galex.NewChromosomeStorage(&galextest.Vector{Values: []float64{9}}, nil)

	idx := replace.Parent()(pop, []*galex.ChromosomeStorage{orphan}, 0)
	if len(idx) != 0 {
		t.Fatalf("Parent() idx = %v, want empty for a parentless child", idx)
	}
}

func TestElitistProtectsTheBestMembers(t *testing.T) {
	pop := newReplaceTestPopulation(t, 10, 1, 2)
	offspring := makeOffspring(t, 3)

	base := replace.Generational()
	guarded := replace.Elitist(1, cmp, base)

	idx := guarded(pop, offspring, 0)
	bestIdx := 0
	for i := 1; i < pop.Len(); i++ {
		if cmp.Compare(pop.Members().At(i).ScaledFitness(), pop.Members().At(bestIdx).ScaledFitness()) > 0 {
			bestIdx = i
		}
	}
	for _, i := range idx {
		if i == bestIdx {
			t.Fatalf("Elitist allowed the best member (index %d) to be replaced", bestIdx)
		}
	}
}

func TestWorstReplacesLowestScoredMembers(t *testing.T) {
	pop := newReplaceTestPopulation(t, 5, 1, 9, 2)
	offspring := makeOffspring(t, 2)

	idx := replace.Worst(cmp)(pop, offspring, 0)
	if len(idx) != 2 {
		t.Fatalf("len(idx) = %d, want 2", len(idx))
	}
	threshold := galextest.Scalar(2)
	for _, i := range idx {
		v := pop.Members().At(i).ScaledFitness()
		if cmp.Compare(v, &threshold) > 0 {
			t.Fatalf("Worst selected a member scoring %v, expected one of the two lowest", v)
		}
	}
}
