// Package replace implements survivor-selection policies: given a
// population and a batch of freshly-evaluated offspring, decide which
// current member indices the offspring displace. These are the concrete
// galex.GenerationOps.Replace implementations this module ships, grounded
// on cbarrick-evo's turnover/injection logic (pop/gen's "turnover" closure,
// gen's random-index injection) generalized from "always replace
// everything" or "replace one random slot" into named, composable
// policies.
package replace

import "github.com/kataklinger/galex"

// Policy selects which current-member indices a batch of offspring
// replaces. It matches the shape galex.GenerationOps.Replace expects.
type Policy func(p *galex.Population, offspring []*galex.ChromosomeStorage, branch int) []int
