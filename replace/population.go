package replace

import "github.com/kataklinger/galex"

// Generational replaces every current member unconditionally, the
// population-wide turnover cbarrick-evo's pop/gen population performs each
// iteration (its "turnover" closure swaps the entire next-generation slice
// in). offspring must have exactly p.Len() entries; extra offspring beyond
// the population size are ignored.
func Generational() Policy {
	return func(p *galex.Population, offspring []*galex.ChromosomeStorage, _ int) []int {
		n := p.Len()
		if len(offspring) < n {
			n = len(offspring)
		}
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
}
