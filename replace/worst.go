package replace

import (
	"sort"

	"github.com/kataklinger/galex"
)

// Worst replaces the len(offspring) current members with the lowest scaled
// fitness under cmp, generational-GA's classic "kill the weakest" policy.
// If offspring is larger than the population, only the population's full
// size worth of indices are returned.
func Worst(cmp galex.Comparator) Policy {
	return func(p *galex.Population, offspring []*galex.ChromosomeStorage, _ int) []int {
		n := len(offspring)
		if n > p.Len() {
			n = p.Len()
		}
		idx := make([]int, p.Len())
		for i := range idx {
			idx[i] = i
		}
		sort.Slice(idx, func(a, b int) bool {
			ca := p.Members().At(idx[a]).ScaledFitness()
			cb := p.Members().At(idx[b]).ScaledFitness()
			return cmp.Compare(ca, cb) < 0
		})
		return idx[:n]
	}
}
