package replace

import (
	"math/rand"

	"github.com/kataklinger/galex"
)

// Random replaces len(offspring) distinct, uniformly-random current member
// indices, the generalization of cbarrick-evo's gen population's
// single-slot random injection (`i := rand.Intn(len(next))`) to an
// arbitrary batch size.
func Random(r *rand.Rand) Policy {
	return func(p *galex.Population, offspring []*galex.ChromosomeStorage, _ int) []int {
		n := len(offspring)
		if n > p.Len() {
			n = p.Len()
		}
		perm := r.Perm(p.Len())
		return perm[:n]
	}
}
