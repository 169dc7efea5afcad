package sel

import (
	"math/rand"

	"github.com/kataklinger/galex"
)

// Tournament returns the best of k randomly-drawn competitors from pool,
// under cmp's sense of "better" (greater Compare result wins), the
// generalization of cbarrick-evo's sel.Tournament from a fixed "all
// suitors" call to a k-wide random draw.
func Tournament(r *rand.Rand, pool []*galex.ChromosomeStorage, k int, cmp galex.Comparator) *galex.ChromosomeStorage {
	if len(pool) == 0 || k <= 0 {
		return nil
	}
	best := pool[r.Intn(len(pool))]
	for i := 1; i < k; i++ {
		cand := pool[r.Intn(len(pool))]
		if cmp.Compare(cand.ScaledFitness(), best.ScaledFitness()) > 0 {
			best = cand
		}
	}
	return best
}

// BinaryTournament draws two random competitors and returns the fitter,
// the direct port of cbarrick-evo's sel.BinaryTournament.
func BinaryTournament(r *rand.Rand, pool []*galex.ChromosomeStorage, cmp galex.Comparator) *galex.ChromosomeStorage {
	return Tournament(r, pool, 2, cmp)
}
