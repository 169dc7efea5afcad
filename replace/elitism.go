package replace

import (
	"sort"

	"github.com/kataklinger/galex"
)

// Elitist wraps an underlying policy, first protecting the elite best
// members (under cmp) from replacement regardless of what the wrapped
// policy picked, the generalization of cbarrick-evo's sel.Elite sliding
// best-window into a replace-stage guard rather than a separate
// selection-stage pool.
func Elitist(elite int, cmp galex.Comparator, base Policy) Policy {
	return func(p *galex.Population, offspring []*galex.ChromosomeStorage, branch int) []int {
		victims := base(p, offspring, branch)
		if elite <= 0 {
			return victims
		}
		protected := eliteIndices(p, elite, cmp)
		out := victims[:0]
		for _, v := range victims {
			if !protected[v] {
				out = append(out, v)
			}
		}
		return out
	}
}

func eliteIndices(p *galex.Population, elite int, cmp galex.Comparator) map[int]bool {
	n := p.Len()
	if elite > n {
		elite = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ca := p.Members().At(idx[a]).ScaledFitness()
		cb := p.Members().At(idx[b]).ScaledFitness()
		return cmp.Compare(ca, cb) > 0
	})
	protected := make(map[int]bool, elite)
	for _, i := range idx[:elite] {
		protected[i] = true
	}
	return protected
}
