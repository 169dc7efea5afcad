// Package rng adapts cbarrick-evo's direct, package-level math/rand calls
// (rand.Intn, rand.Float64, rand.Perm, ...) to the barrier-synchronized
// concurrency model: since branches run concurrently, sharing the global
// generator across them would force every draw through its internal lock
// and make runs depend on goroutine scheduling order. Instead each branch
// owns its own *rand.Rand, seeded deterministically from a run seed so a
// population's evolution is reproducible regardless of how branches are
// scheduled.
package rng

import "math/rand"

// Pool hands out one independent generator per branch, each seeded from a
// run seed combined with the branch index so the same (seed, branchCount)
// pair always reproduces the same per-branch streams.
type Pool struct {
	seed int64
	gens []*rand.Rand
}

// NewPool creates a Pool of count independent generators derived from
// seed.
func NewPool(seed int64, count int) *Pool {
	p := &Pool{seed: seed, gens: make([]*rand.Rand, count)}
	for i := range p.gens {
		p.gens[i] = rand.New(rand.NewSource(mix(seed, i)))
	}
	return p
}

// mix combines a run seed and a branch index into a distinct seed per
// branch using splitmix64-style bit mixing, so adjacent branch indices
// don't produce correlated seeds.
func mix(seed int64, branch int) int64 {
	s := uint64(seed) + uint64(branch)*0x9E3779B97F4A7C15
	s = (s ^ (s >> 30)) * 0xBF58476D1CE4E5B9
	s = (s ^ (s >> 27)) * 0x94D049BB133111EB
	s = s ^ (s >> 31)
	return int64(s)
}

// For returns the generator owned by branch. Panics if branch is out of
// range, since a scheduler asking for an unknown branch is a programming
// error, not a runtime condition to recover from.
func (p *Pool) For(branch int) *rand.Rand {
	return p.gens[branch]
}

// Len reports the number of branches this pool serves.
func (p *Pool) Len() int { return len(p.gens) }

// Reseed replaces every branch's generator with a fresh one derived from
// a new seed, keeping the branch count unchanged. Useful for running the
// same population configuration across multiple independent trials.
func (p *Pool) Reseed(seed int64) {
	p.seed = seed
	for i := range p.gens {
		p.gens[i] = rand.New(rand.NewSource(mix(seed, i)))
	}
}

// Seed reports the run seed this pool was last (re)seeded with.
func (p *Pool) Seed() int64 { return p.seed }
