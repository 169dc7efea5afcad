package migrate_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/kataklinger/galex"
	"github.com/kataklinger/galex/internal/galextest"
	"github.com/kataklinger/galex/migrate"
	"github.com/kataklinger/galex/replace"
	"github.com/kataklinger/galex/sel"
)

func newMigrateTestPopulation(t *testing.T, size int) *galex.Population {
	t.Helper()
	r := rand.New(rand.NewSource(11))
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

func TestPortPushEvictsOldestPastCapacity(t *testing.T) {
	port := migrate.NewPort(2)
	r := rand.New(rand.NewSource(1))
	a := galex.NewChromosomeStorage(galextest.NewPermutation(r, 4), nil)
	b := galex.NewChromosomeStorage(galextest.NewPermutation(r, 4), nil)
	c := galex.NewChromosomeStorage(galextest.NewPermutation(r, 4), nil)

	port.Push(a)
	port.Push(b)
	port.Push(c)

	if port.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", port.Len())
	}
	drained := port.Drain()
	if len(drained) != 2 || drained[0] != b || drained[1] != c {
		t.Fatalf("expected oldest entry evicted, got %v", drained)
	}
	if port.Len() != 0 {
		t.Fatal("Drain should empty the port")
	}
}

func TestMigrationRunStagesSelectedMembers(t *testing.T) {
	source := newMigrateTestPopulation(t, 6)
	port := migrate.NewPort(4)
	cmp := galex.ComparatorFunc(func(a, b galex.Fitness) int { return a.Compare(b) })

	mig := migrate.NewMigration(func(pool []*galex.ChromosomeStorage) []*galex.ChromosomeStorage {
		return sel.TopN(pool, 2, cmp)
	}, port, 2)

	mig.Run(source)
	if port.Len() != 2 {
		t.Fatalf("port.Len() = %d, want 2", port.Len())
	}
}

func TestAdoptionRunInstallsDrainedOffspring(t *testing.T) {
	target := newMigrateTestPopulation(t, 5)
	port := migrate.NewPort(4)
	r := rand.New(rand.NewSource(2))
	migrant := galex.NewChromosomeStorage(galextest.NewPermutation(r, 4), nil)
	fit := galextest.Scalar(-999)
	migrant.SetRawFitness(&fit)
	migrant.SetScaledFitness(&fit)
	port.Push(migrant)

	ad := migrate.NewAdoption(port, replace.Random(r))
	ad.Run(target, 0)

	if port.Len() != 0 {
		t.Fatal("Adoption.Run should drain the port")
	}

	found := false
	target.Members().Each(func(cs *galex.ChromosomeStorage) {
		if cs == migrant {
			found = true
		}
	})
	if !found {
		t.Fatal("expected the migrant chromosome to be installed into target")
	}
}

func TestAdoptionRunOnEmptyPortIsNoop(t *testing.T) {
	target := newMigrateTestPopulation(t, 5)
	port := migrate.NewPort(4)
	r := rand.New(rand.NewSource(3))
	ad := migrate.NewAdoption(port, replace.Random(r))

	before := target.Len()
	ad.Run(target, 0)
	if target.Len() != before {
		t.Fatalf("Len() changed on empty-port adoption: %d -> %d", before, target.Len())
	}
}
