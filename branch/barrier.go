// Package branch implements the barrier-synchronized multi-branch
// concurrency model this engine's components run under: branches advance
// in lockstep through a sequence of phases, and cross-branch reductions
// (merging crossover buffers, installing a replacement generation) only
// happen in a single-branch critical section between barriers. This is
// the generalization of cbarrick-evo's pop/gen population, whose "mate"
// closure fanned work out across a sync.WaitGroup and waited for every
// goroutine before turning over the next generation — the same fan-out-
// then-reduce shape, but exposed as a reusable scheduler instead of being
// baked into one population type, and using golang.org/x/sync/errgroup so
// a single branch's error aborts the whole pass instead of silently
// completing with partial results.
package branch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Work is one branch's share of a barrier-synchronized pass.
type Work func(ctx context.Context, branch int) error

// Barrier runs count independent branches of fn concurrently and blocks
// until every branch completes or one returns an error, in which case the
// remaining branches are canceled via ctx and the first error is returned.
// This is the single synchronization point the concurrency model allows:
// nothing crosses between branches until Barrier returns.
func Barrier(ctx context.Context, count int, fn Work) error {
	g, gctx := errgroup.WithContext(ctx)
	for b := 0; b < count; b++ {
		b := b
		g.Go(func() error {
			return fn(gctx, b)
		})
	}
	return g.Wait()
}

// Scheduler runs a fixed sequence of named phases, each a Barrier across
// the same branch count, stopping at the first phase whose barrier
// returns an error. This mirrors the op-pass structure the concurrency
// model describes: a generation is a sequence of phases (select, vary,
// evaluate, merge, replace), each barrier-synchronized, with no phase
// starting until every branch finished the previous one.
type Scheduler struct {
	Branches int
}

// NewScheduler creates a scheduler for the given number of branches.
func NewScheduler(branches int) *Scheduler {
	return &Scheduler{Branches: branches}
}

// Phase is one named, barrier-synchronized step of a generation pass.
type Phase struct {
	Name string
	Run  Work
}

// Run executes phases in order, one Barrier per phase, stopping at the
// first error.
func (s *Scheduler) Run(ctx context.Context, phases []Phase) error {
	for _, p := range phases {
		if err := Barrier(ctx, s.Branches, p.Run); err != nil {
			return &PhaseError{Phase: p.Name, Err: err}
		}
	}
	return nil
}

// PhaseError identifies which named phase failed, since errgroup's own
// error only carries the underlying branch error.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string { return "branch: phase " + e.Phase + ": " + e.Err.Error() }

func (e *PhaseError) Unwrap() error { return e.Err }
