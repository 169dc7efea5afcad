package migrate

import "github.com/kataklinger/galex"

// Adoption wraps a replace.Policy-shaped function and feeds chromosomes
// drained from a Port into a target population as replacement offspring,
// the receive side of cross-population transfer. This is the Go
// equivalent of gen.population.Cross's inject channel and diffusion.node's
// valuec channel, generalized so the receiving population doesn't block
// waiting on the sender: whatever accumulated in the port since the last
// adoption run is adopted in one pass.
type Adoption struct {
	Port    *Port
	Replace func(p *galex.Population, offspring []*galex.ChromosomeStorage, branch int) []int
}

// NewAdoption creates an Adoption that drains port and replaces members
// of the target population chosen by replace.
func NewAdoption(port *Port, replace func(p *galex.Population, offspring []*galex.ChromosomeStorage, branch int) []int) *Adoption {
	return &Adoption{Port: port, Replace: replace}
}

// Prepare is a no-op hook kept for lifecycle symmetry with other ops.
func (a *Adoption) Prepare() {}

// Clear empties the underlying port without adopting its contents, used
// when a generation fails and staging areas must be reset before the
// error propagates.
func (a *Adoption) Clear() { a.Port.Clear() }

// Update is a no-op hook kept for lifecycle symmetry with other ops.
func (a *Adoption) Update() {}

// Run drains the port and replaces members of target chosen by the
// wrapped replacement policy. Once drained, offspring are either adopted
// or dropped; they are never pushed back onto the port.
func (a *Adoption) Run(target *galex.Population, branch int) {
	offspring := a.Port.Drain()
	if len(offspring) == 0 {
		return
	}
	idx := a.Replace(target, offspring, branch)
	n := len(idx)
	if n > len(offspring) {
		n = len(offspring)
	}
	for i := 0; i < n; i++ {
		target.InstallOffspring(idx[i], offspring[i])
	}
}
