package mopareto

import (
	"math/rand"

	"github.com/kataklinger/galex"
)

// PESA maintains a bounded, non-dominated archive crowded via a HyperGrid,
// the Pareto Envelope-based Selection Algorithm: new candidates enter the
// archive only if non-dominated by it, and the archive is trimmed back to
// capacity by repeatedly evicting from the most crowded hyperbox.
type PESA struct {
	Divisions int
	Capacity  int

	archive []*galex.ChromosomeStorage
}

// NewPESA creates an empty archive.
func NewPESA(divisions, capacity int) *PESA {
	return &PESA{Divisions: divisions, Capacity: capacity}
}

// Archive returns the current archive contents.
func (a *PESA) Archive() []*galex.ChromosomeStorage { return a.archive }

// Consider offers a candidate to the archive: it is added if nothing in
// the archive dominates it, any archive members it dominates are evicted,
// and if the archive now exceeds capacity, the most crowded members are
// evicted until it fits.
func (a *PESA) Consider(cand *galex.ChromosomeStorage) {
	candFit := candidateFitness(cand)

	kept := a.archive[:0]
	for _, member := range a.archive {
		if Dominates(candidateFitness(member), candFit) {
			// an existing archive member already dominates the candidate;
			// the candidate is discarded and nothing changes.
			return
		}
		if !Dominates(candFit, candidateFitness(member)) {
			kept = append(kept, member)
		}
	}
	a.archive = append(kept, cand)

	for len(a.archive) > a.Capacity && a.Capacity > 0 {
		a.evictMostCrowded()
	}
}

func (a *PESA) evictMostCrowded() {
	fits := multiFitnessOf(a.archive)
	grid := NewHyperGrid(fits, a.Divisions)
	density := grid.Density(fits)

	worst := 0
	for i, d := range density {
		if d > density[worst] {
			worst = i
		}
	}
	a.archive = append(a.archive[:worst], a.archive[worst+1:]...)
}

// Select draws n members from the archive for breeding, preferring members
// in less-crowded hyperboxes (binary tournament on density, lower wins),
// the PESA selection rule.
func (a *PESA) Select(r *rand.Rand, n int) []*galex.ChromosomeStorage {
	if len(a.archive) == 0 {
		return nil
	}
	fits := multiFitnessOf(a.archive)
	grid := NewHyperGrid(fits, a.Divisions)
	density := grid.Density(fits)

	out := make([]*galex.ChromosomeStorage, n)
	for i := range out {
		x := r.Intn(len(a.archive))
		y := r.Intn(len(a.archive))
		if density[y] < density[x] {
			x = y
		}
		out[i] = a.archive[x]
	}
	return out
}

func candidateFitness(cs *galex.ChromosomeStorage) galex.MultiFitness {
	if mf, ok := cs.ScaledFitness().(galex.MultiFitness); ok {
		return mf
	}
	return cs.RawFitness().(galex.MultiFitness)
}
