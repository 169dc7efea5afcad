package replace

import (
	"sort"

	"github.com/kataklinger/galex"
)

// Crowding replaces the current member most similar to each offspring
// (by Fitness.Distance) among its k nearest, and only if the offspring is
// fitter under cmp — the classic deterministic-crowding policy, which
// preserves diversity better than Worst by not concentrating replacement
// pressure on the single worst niche.
func Crowding(cmp galex.Comparator, k int) Policy {
	return func(p *galex.Population, offspring []*galex.ChromosomeStorage, _ int) []int {
		idx := make([]int, 0, len(offspring))
		for _, child := range offspring {
			candidates := nearest(p, child, k)
			sort.Slice(candidates, func(a, b int) bool {
				da := p.Members().At(candidates[a]).ScaledFitness().Distance(child.ScaledFitness())
				db := p.Members().At(candidates[b]).ScaledFitness().Distance(child.ScaledFitness())
				return da < db
			})
			if len(candidates) == 0 {
				continue
			}
			victim := candidates[0]
			if cmp.Compare(child.ScaledFitness(), p.Members().At(victim).ScaledFitness()) > 0 {
				idx = append(idx, victim)
			}
		}
		return idx
	}
}

func nearest(p *galex.Population, child *galex.ChromosomeStorage, k int) []int {
	n := p.Len()
	if k > n {
		k = n
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	sort.Slice(all, func(a, b int) bool {
		da := p.Members().At(all[a]).ScaledFitness().Distance(child.ScaledFitness())
		db := p.Members().At(all[b]).ScaledFitness().Distance(child.ScaledFitness())
		return da < db
	})
	return all[:k]
}
