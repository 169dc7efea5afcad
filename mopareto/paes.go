package mopareto

import "github.com/kataklinger/galex"

// PAES implements the (1+1) Pareto Archived Evolution Strategy: a single
// current solution is repeatedly mutated, the mutant is compared against
// the current solution and a bounded archive (crowded via HyperGrid, as in
// PESA), and either the mutant or the current solution survives to become
// current for the next iteration. Unlike every other type in this package,
// PAES's Select returns the single current solution (the caller mutates
// it) and its Accept updates exactly one "current solution" slot plus the
// archive — this shape is intentional (see
// this module's design notes on the PAES open question) rather than being
// forced into the general multi-candidate selection/replacement interfaces
// the rest of this package uses.
type PAES struct {
	Divisions int
	Capacity  int

	current *galex.ChromosomeStorage
	archive []*galex.ChromosomeStorage
}

// NewPAES creates a PAES state seeded with an initial solution.
func NewPAES(divisions, capacity int, seed *galex.ChromosomeStorage) *PAES {
	p := &PAES{Divisions: divisions, Capacity: capacity, current: seed}
	p.archive = append(p.archive, seed)
	return p
}

// Current returns the present current solution.
func (p *PAES) Current() *galex.ChromosomeStorage { return p.current }

// Archive returns the current archive contents.
func (p *PAES) Archive() []*galex.ChromosomeStorage { return p.archive }

// Select always returns exactly the current solution as the sole parent to
// mutate — PAES has no crossover and no population to draw multiple
// parents from.
func (p *PAES) Select() *galex.ChromosomeStorage {
	return p.current
}

// Accept evaluates a freshly-mutated candidate against the current
// solution and archive, updating both:
//
//   - If the candidate dominates the current solution, it replaces it and
//     is added to the archive.
//   - If the current solution dominates the candidate, the candidate is
//     discarded.
//   - Otherwise (mutually non-dominating), the candidate is tested for
//     acceptance into the archive (same rule as PESA.Consider); if it
//     enters the archive and the archive is less crowded at its location
//     than the current solution's, the candidate also becomes current.
func (p *PAES) Accept(candidate *galex.ChromosomeStorage) {
	candFit := candidateFitness(candidate)
	curFit := candidateFitness(p.current)

	switch {
	case Dominates(candFit, curFit):
		p.current = candidate
		p.addToArchive(candidate)
		return
	case Dominates(curFit, candFit):
		return
	}

	before := len(p.archive)
	p.addToArchive(candidate)
	admitted := len(p.archive) != before || p.archive[len(p.archive)-1] == candidate

	if admitted && p.lessCrowdedThanCurrent(candidate) {
		p.current = candidate
	}
}

func (p *PAES) addToArchive(cand *galex.ChromosomeStorage) {
	candFit := candidateFitness(cand)
	kept := p.archive[:0]
	for _, member := range p.archive {
		if Dominates(candidateFitness(member), candFit) {
			return
		}
		if !Dominates(candFit, candidateFitness(member)) {
			kept = append(kept, member)
		}
	}
	p.archive = append(kept, cand)

	for len(p.archive) > p.Capacity && p.Capacity > 0 {
		fits := multiFitnessOf(p.archive)
		grid := NewHyperGrid(fits, p.Divisions)
		density := grid.Density(fits)
		worst := 0
		for i, d := range density {
			if d > density[worst] {
				worst = i
			}
		}
		p.archive = append(p.archive[:worst], p.archive[worst+1:]...)
	}
}

func (p *PAES) lessCrowdedThanCurrent(candidate *galex.ChromosomeStorage) bool {
	fits := multiFitnessOf(append(append([]*galex.ChromosomeStorage{}, p.archive...), p.current))
	grid := NewHyperGrid(fits, p.Divisions)
	density := grid.Density(fits)
	// the current solution was appended last, above.
	curDensity := density[len(density)-1]

	for i, member := range p.archive {
		if member == candidate {
			return density[i] < curDensity
		}
	}
	return false
}
