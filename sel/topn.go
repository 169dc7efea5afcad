package sel

import (
	"sort"

	"github.com/kataklinger/galex"
)

// TopN returns the n best members of pool under cmp, without mutating
// pool. Ties are broken by input order (stable sort), matching how
// cbarrick-evo's sel.RoundRobin stably sorted its competitor pool.
func TopN(pool []*galex.ChromosomeStorage, n int, cmp galex.Comparator) []*galex.ChromosomeStorage {
	return extremeN(pool, n, cmp, 1)
}

// BottomN returns the n worst members of pool under cmp.
func BottomN(pool []*galex.ChromosomeStorage, n int, cmp galex.Comparator) []*galex.ChromosomeStorage {
	return extremeN(pool, n, cmp, -1)
}

func extremeN(pool []*galex.ChromosomeStorage, n int, cmp galex.Comparator, sign int) []*galex.ChromosomeStorage {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	ranked := append([]*galex.ChromosomeStorage(nil), pool...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return sign*cmp.Compare(ranked[i].ScaledFitness(), ranked[j].ScaledFitness()) > 0
	})
	return ranked[:n]
}
