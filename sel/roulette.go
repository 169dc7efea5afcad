package sel

import (
	"math/rand"

	"github.com/kataklinger/galex"
)

// RouletteWheel draws n members from pool with probability proportional to
// each member's Fitness.ProbabilityBase, sampling with replacement
// (duplicates allowed). The worked example in this module's test suite
// drives a four-member pool with weights [1,2,3,4] (total 10) and a fixed
// random draw that lands in the third bucket, selecting index 2 — see
// roulette_test.go.
func RouletteWheel(r *rand.Rand, pool []*galex.ChromosomeStorage, n int) []*galex.ChromosomeStorage {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	weights := make([]float64, len(pool))
	var total float64
	for i, cs := range pool {
		w := cs.ScaledFitness().ProbabilityBase()
		if w < 0 {
			w = 0
		}
		weights[i] = w
		total += w
	}

	out := make([]*galex.ChromosomeStorage, n)
	for i := range out {
		out[i] = drawOne(r, pool, weights, total)
	}
	return out
}

func drawOne(r *rand.Rand, pool []*galex.ChromosomeStorage, weights []float64, total float64) *galex.ChromosomeStorage {
	if total <= 0 {
		return pool[r.Intn(len(pool))]
	}
	target := r.Float64() * total
	var acc float64
	for i, w := range weights {
		acc += w
		if target < acc {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}

// RandomDuplicates draws n members from pool uniformly at random, with
// replacement, ignoring fitness entirely — the baseline selection pressure
// of zero, used as a control in property tests and by callers that want
// pure genetic drift.
func RandomDuplicates(r *rand.Rand, pool []*galex.ChromosomeStorage, n int) []*galex.ChromosomeStorage {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	out := make([]*galex.ChromosomeStorage, n)
	for i := range out {
		out[i] = pool[r.Intn(len(pool))]
	}
	return out
}
