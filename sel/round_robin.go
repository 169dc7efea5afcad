package sel

import (
	"math/rand"
	"sort"

	"github.com/kataklinger/galex"
)

// rrScore pairs a competitor with its accumulated win count, the same
// bookkeeping cbarrick-evo's sel.rrcomp used, without that package's
// channel-per-match concurrency (matches run synchronously here since
// round-robin scoring is cheap compared to fitness evaluation).
type rrScore struct {
	cs   *galex.ChromosomeStorage
	wins int
}

// RoundRobin returns the best n competitors after the given number of
// round-robin tournament rounds, the synchronous port of cbarrick-evo's
// sel.RoundRobin: in each round, competitors are paired up via a rotating
// schedule and the fitter of each pair scores a win; after all rounds,
// competitors are ranked by total wins.
func RoundRobin(r *rand.Rand, pool []*galex.ChromosomeStorage, n, rounds int, cmp galex.Comparator) []*galex.ChromosomeStorage {
	size := len(pool)
	if size == 0 || n <= 0 {
		return nil
	}

	scored := make([]rrScore, size)
	for i, cs := range pool {
		scored[i] = rrScore{cs: cs}
	}

	odd := size%2 != 0
	if odd {
		scored = append(scored, rrScore{cs: nil, wins: -1})
		size++
	}

	sched := r.Perm(size)
	half := size / 2
	for round := 0; round < rounds; round++ {
		for i := 0; i < half; i++ {
			a, b := sched[i], sched[size-1-i]
			winner := a
			if beats(scored[a].cs, scored[b].cs, cmp) {
				winner = b
			}
			scored[winner].wins++
		}
		carry := sched[0]
		copy(sched, sched[1:])
		sched[size-2] = carry
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].wins > scored[j].wins })

	if n > len(scored) {
		n = len(scored)
	}
	out := make([]*galex.ChromosomeStorage, 0, n)
	for _, s := range scored[:n] {
		if s.cs != nil {
			out = append(out, s.cs)
		}
	}
	return out
}

// beats reports whether b is strictly fitter than a under cmp; a bye (nil
// competitor) always loses, matching the teacher's dummy-with-negative-
// infinity-fitness trick for odd-sized pools.
func beats(a, b *galex.ChromosomeStorage, cmp galex.Comparator) bool {
	if b == nil {
		return false
	}
	if a == nil {
		return true
	}
	return cmp.Compare(b.ScaledFitness(), a.ScaledFitness()) > 0
}
