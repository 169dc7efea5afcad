package mopareto

import (
	"math"

	"github.com/kataklinger/galex"
	"github.com/kataklinger/galex/sharing"
)

// NSGA1Params configures the classic NSGA fitness assignment.
type NSGA1Params struct {
	// Dummy is the starting dummy fitness assigned to the first
	// (non-dominated) front; each subsequent front's dummy fitness is set
	// just below the lowest shared fitness of the front ahead of it.
	Dummy float64

	// Kernel is the sharing function applied within each front, using
	// objective-space distance between members as its argument.
	Kernel sharing.Kernel
}

// AssignNSGA1 computes classic-NSGA dummy+shared fitness for pool and
// returns one scalar per member, in pool order. Front 0 (non-dominated)
// gets the largest values, each subsequent front strictly smaller, so any
// scalar comparator naturally prefers earlier fronts, and within a front
// prefers less-crowded members via fitness sharing — exactly the
// generational-sharing scheme original_source's NSGA-I implements.
func AssignNSGA1(pool []galex.MultiFitness, params NSGA1Params) []float64 {
	fronts := FastNonDominatedSort(pool)
	result := make([]float64, len(pool))

	dummy := params.Dummy
	for _, front := range fronts {
		shared := shareFront(pool, front, params.Kernel)
		lowest := dummy
		for i, idx := range front {
			fit := dummy * shared[i]
			result[idx] = fit
			if fit < lowest {
				lowest = fit
			}
		}
		// next front's dummy sits strictly below this front's worst shared
		// fitness, guaranteeing fronts never interleave under a scalar sort.
		dummy = lowest * 0.9
	}
	return result
}

// shareFront computes, for each member index in front, 1/nicheCount using
// objective-space distances restricted to members of the same front (the
// sharing niche only ever competes within a front, never across fronts).
func shareFront(pool []galex.MultiFitness, front Front, k sharing.Kernel) []float64 {
	n := len(front)
	niche := make([]float64, n)
	for i, pi := range front {
		for _, pj := range front {
			niche[i] += k.Value(objectiveDistance(pool[pi], pool[pj]))
		}
	}
	shared := make([]float64, n)
	for i := range shared {
		if niche[i] <= 0 {
			shared[i] = 1
			continue
		}
		shared[i] = 1 / niche[i]
	}
	return shared
}

func objectiveDistance(a, b galex.MultiFitness) float64 {
	var sum float64
	for i := 0; i < a.Len(); i++ {
		d := a.Component(i) - b.Component(i)
		sum += d * d
	}
	return math.Sqrt(sum)
}
