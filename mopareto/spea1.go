package mopareto

import "github.com/kataklinger/galex"

// AssignSPEA1 computes classic SPEA fitness over a combined
// population+archive pool. Per the original algorithm, lower fitness is
// better: non-dominated members get a "strength" in [0,1) equal to the
// number of pool members they dominate divided by (pool size + 1), and
// dominated members get
// 1 + (sum of strengths of every non-dominated member that dominates
// them), guaranteeing every dominated member scores worse than every
// non-dominated one. This is the one place in this package where the
// return convention is "lower is better", matching SPEA's original
// formulation; callers feeding it into this module's Comparator must
// negate before wrapping into a Fitness.
func AssignSPEA1(pool []galex.MultiFitness) []float64 {
	n := len(pool)
	strength := make([]float64, n)
	nonDominated := make([]bool, n)

	for i := range pool {
		dominatedCount := 0
		isDominated := false
		for j := range pool {
			if i == j {
				continue
			}
			if Dominates(pool[i], pool[j]) {
				dominatedCount++
			}
			if Dominates(pool[j], pool[i]) {
				isDominated = true
			}
		}
		strength[i] = float64(dominatedCount) / float64(n+1)
		nonDominated[i] = !isDominated
	}

	fitness := make([]float64, n)
	for i := range pool {
		if nonDominated[i] {
			fitness[i] = strength[i]
			continue
		}
		var sum float64
		for j := range pool {
			if nonDominated[j] && Dominates(pool[j], pool[i]) {
				sum += strength[j]
			}
		}
		fitness[i] = 1 + sum
	}
	return fitness
}
