package galex_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/kataklinger/galex"
	"github.com/kataklinger/galex/internal/galextest"
)

func newTestPopulation(t *testing.T, size int) *galex.Population {
	t.Helper()
	r := rand.New(rand.NewSource(7))
	dist := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}
	params := galex.PopulationParams{Size: size, Fill: galex.FillOnInit}
	init := galextest.PermutationInitializer{Size: 4, RNG: r}
	fit := galextest.TourLength{Dist: dist}
	cmp := galex.ComparatorFunc(func(a, b galex.Fitness) int { return a.Compare(b) })
	pop := galex.NewPopulation(params, init, fit, cmp, nil)
	if err := pop.Initialize(context.Background(), 0); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return pop
}

func TestPopulationInitializeFillsToSize(t *testing.T) {
	pop := newTestPopulation(t, 10)
	if got := pop.Len(); got != 10 {
		t.Fatalf("Len() = %d, want 10", got)
	}
}

func TestPopulationInsertAndRemove(t *testing.T) {
	pop := newTestPopulation(t, 5)
	r := rand.New(rand.NewSource(1))
	g := galextest.NewPermutation(r, 4)
	if err := pop.Insert(context.Background(), g, nil); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if got := pop.Len(); got != 6 {
		t.Fatalf("Len() after Insert = %d, want 6", got)
	}
	pop.Remove(0)
	if got := pop.Len(); got != 5 {
		t.Fatalf("Len() after Remove = %d, want 5", got)
	}
}

func TestPopulationNextGeneration(t *testing.T) {
	pop := newTestPopulation(t, 8)
	r := rand.New(rand.NewSource(3))
	cross := galextest.PermutationCrossover{RNG: r}

	ops := galex.GenerationOps{
		Select: func(p *galex.Population, branch int) [][]*galex.ChromosomeStorage {
			groups := make([][]*galex.ChromosomeStorage, p.Len())
			for i := range groups {
				a := p.Members().At(r.Intn(p.Len()))
				b := p.Members().At(r.Intn(p.Len()))
				groups[i] = []*galex.ChromosomeStorage{a, b}
			}
			return groups
		},
		Vary: func(branch int, parents []*galex.ChromosomeStorage) galex.Genotype {
			out := cross.Cross(branch, parents[0].Genotype(), parents[1].Genotype())
			return out[0]
		},
		Replace: func(p *galex.Population, offspring []*galex.ChromosomeStorage, branch int) []int {
			idx := make([]int, len(offspring))
			for i := range idx {
				idx[i] = i % p.Len()
			}
			return idx
		},
	}

	before := pop.Len()
	if err := pop.NextGeneration(context.Background(), ops, 0); err != nil {
		t.Fatalf("NextGeneration: %v", err)
	}
	if pop.Len() != before {
		t.Fatalf("Len() changed across NextGeneration: got %d, want %d", pop.Len(), before)
	}
}

func TestGroupShuffleRestoresOrder(t *testing.T) {
	g := galex.NewGroup(4)
	r := rand.New(rand.NewSource(42))
	perm := galextest.NewPermutation(r, 4)
	cmp := galex.ComparatorFunc(func(a, b galex.Fitness) int { return a.Compare(b) })
	_ = cmp

	storages := make([]*galex.ChromosomeStorage, 0, 4)
	for i := 0; i < 4; i++ {
		cs := galex.NewChromosomeStorage(perm, nil)
		storages = append(storages, cs)
		g.Add(cs)
	}
	original := g.Snapshot()

	g.Shuffle(r)
	g.RestoreShuffle()
	restored := g.Snapshot()

	for i := range original {
		if original[i] != restored[i] {
			t.Fatalf("RestoreShuffle did not restore original order at index %d", i)
		}
	}
}

func TestTagBufferRoundTrip(t *testing.T) {
	mgr := galex.NewTagManager()
	h := galex.AddTag[int](mgr)
	buf := galex.NewTagBuffer(mgr)

	galex.Set(buf, h, 42)
	if got := galex.Get(buf, h); got != 42 {
		t.Fatalf("Get() = %d, want 42", got)
	}
}

func TestTagBufferTypeMismatchErrors(t *testing.T) {
	mgr := galex.NewTagManager()
	h := galex.AddTag[int](mgr)
	buf := galex.NewTagBuffer(mgr)

	other := galex.TagHandle[string]{}
	_, err := galex.TryGet(buf, other)
	if err == nil {
		t.Fatal("expected error for unregistered handle, got nil")
	}
	_ = h
}
