// Package sharing implements fitness sharing: a fitness-scaling technique
// that penalizes members for crowding near genetically similar neighbors,
// encouraging a population to spread across multiple optima instead of
// converging on one. There is no direct teacher precedent for this (the
// sharing kernel is new, grounded on original_source's design); its numeric
// style (plain functions over float64s, no logging, comment-light) follows
// cbarrick-evo's stats.go register.
package sharing

import (
	"math"

	"github.com/kataklinger/galex"
)

// Kernel computes the sharing contribution of one member to another at
// distance d, per the classic triangular sharing function
// k(d) = 1 - (d/sigma)^alpha for d < sigma, 0 otherwise.
type Kernel struct {
	Sigma float64
	Alpha float64
}

// Value returns k(d).
func (k Kernel) Value(d float64) float64 {
	if k.Sigma <= 0 || d >= k.Sigma {
		return 0
	}
	return 1 - math.Pow(d/k.Sigma, k.Alpha)
}

// Apply computes each member's niche count (the sum of kernel
// contributions from every member, including itself) and overwrites its
// scaled fitness with raw fitness divided by that niche count, the
// standard fitness-sharing scaling rule. Distances come from
// RawFitness().Distance. Only Fitness types implementing Scalable are
// divided; any other type gets an unscaled clone of its raw fitness.
func Apply(pool []*galex.ChromosomeStorage, k Kernel) {
	n := len(pool)
	if n == 0 {
		return
	}
	niche := make([]float64, n)
	for i := range pool {
		for j := range pool {
			d := pool[i].RawFitness().Distance(pool[j].RawFitness())
			niche[i] += k.Value(d)
		}
	}
	for i, cs := range pool {
		scaled := scaleByNiche(cs.RawFitness(), niche[i])
		cs.SetScaledFitness(scaled)
	}
}

// scaleByNiche returns f divided by nicheCount when f implements Scalable
// (via Scale(1/nicheCount)). Since Fitness has no generic "scale by scalar"
// operation, any other type, and any non-positive nicheCount, yields an
// unscaled clone of f.
func scaleByNiche(f galex.Fitness, nicheCount float64) galex.Fitness {
	if nicheCount <= 0 {
		return f.Clone()
	}
	if scalable, ok := f.(Scalable); ok {
		return scalable.Scale(1 / nicheCount)
	}
	return f.Clone()
}

// Scalable is implemented by Fitness types that support direct scaling by a
// scalar multiplier, letting Apply divide out the niche count exactly
// instead of falling back to an unscaled clone.
type Scalable interface {
	galex.Fitness
	Scale(factor float64) galex.Fitness
}
