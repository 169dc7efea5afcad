package replace

import "github.com/kataklinger/galex"

// Parent replaces each offspring's own parent slot (by identity, scanning
// the population for a match), falling back to leaving it in place if the
// parent is no longer a member — e.g. it was already displaced by an
// earlier offspring in the same batch. This models steady-state "child
// replaces parent" turnover, as opposed to Worst/Random's population-wide
// policies.
func Parent() Policy {
	return func(p *galex.Population, offspring []*galex.ChromosomeStorage, _ int) []int {
		idx := make([]int, 0, len(offspring))
		taken := make(map[int]bool, len(offspring))
		for _, child := range offspring {
			parent := child.Parent()
			if parent == nil {
				continue
			}
			for i := 0; i < p.Len(); i++ {
				if taken[i] {
					continue
				}
				if p.Members().At(i) == parent {
					idx = append(idx, i)
					taken[i] = true
					break
				}
			}
		}
		return idx
	}
}
