// Package mopareto implements Pareto-based multi-objective algorithms:
// non-dominated sorting (NSGA, NSGA-II), strength-based fitness assignment
// (SPEA, SPEA-2), hypergrid-crowding selection (PESA), and an archived
// evolution strategy (PAES). None of these have a teacher precedent in
// cbarrick-evo (a single-objective framework); they are grounded on
// original_source and enriched by mihai-snyk-descheduler's weighted
// multi-objective vocabulary for comparing MultiFitness values. Numeric
// style follows cbarrick-evo's stats.go: plain functions, light comments.
package mopareto

import "github.com/kataklinger/galex"

// Dominates reports whether a Pareto-dominates b: a is no worse than b in
// every objective and strictly better in at least one, using the
// maximize-is-better orientation galex.MultiFitness.Component guarantees.
func Dominates(a, b galex.MultiFitness) bool {
	strictlyBetter := false
	for i := 0; i < a.Len(); i++ {
		av, bv := a.Component(i), b.Component(i)
		if av < bv {
			return false
		}
		if av > bv {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// Front is one layer of a non-dominated sort: the indices (into the
// originally-supplied pool) of members not dominated by any other member
// still under consideration.
type Front []int

// FastNonDominatedSort partitions pool into successive non-dominated
// fronts, the classic O(MN^2) algorithm from NSGA-II, also reused as the
// first stage of NSGA-I's fitness assignment.
func FastNonDominatedSort(pool []galex.MultiFitness) []Front {
	n := len(pool)
	dominatedBy := make([][]int, n) // indices this member dominates
	dominationCount := make([]int, n)
	var fronts []Front

	first := Front{}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			switch {
			case Dominates(pool[p], pool[q]):
				dominatedBy[p] = append(dominatedBy[p], q)
			case Dominates(pool[q], pool[p]):
				dominationCount[p]++
			}
		}
		if dominationCount[p] == 0 {
			first = append(first, p)
		}
	}
	fronts = append(fronts, first)

	current := first
	for len(current) > 0 {
		var next Front
		for _, p := range current {
			for _, q := range dominatedBy[p] {
				dominationCount[q]--
				if dominationCount[q] == 0 {
					next = append(next, q)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		fronts = append(fronts, next)
		current = next
	}
	return fronts
}

// Rank returns, for each member of pool, the index of the front it belongs
// to (0 = non-dominated), derived from FastNonDominatedSort.
func Rank(pool []galex.MultiFitness) []int {
	fronts := FastNonDominatedSort(pool)
	rank := make([]int, len(pool))
	for r, front := range fronts {
		for _, i := range front {
			rank[i] = r
		}
	}
	return rank
}

// multiFitnessOf extracts the MultiFitness values backing a storage pool,
// panicking if any member's scaled fitness does not implement
// galex.MultiFitness — every mopareto algorithm requires a multi-objective
// fitness type.
func multiFitnessOf(pool []*galex.ChromosomeStorage) []galex.MultiFitness {
	out := make([]galex.MultiFitness, len(pool))
	for i, cs := range pool {
		mf, ok := cs.ScaledFitness().(galex.MultiFitness)
		if !ok {
			mf, ok = cs.RawFitness().(galex.MultiFitness)
		}
		if !ok {
			panic("mopareto: member fitness does not implement galex.MultiFitness")
		}
		out[i] = mf
	}
	return out
}
