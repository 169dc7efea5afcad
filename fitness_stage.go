package galex

import "context"

// FitnessStage runs a population's FitnessOp over a batch of genotypes off
// the population's critical section, the generalization of component E:
// evaluation is the expensive step in any generation, so it is staged
// separately from the (cheap, serialized) bookkeeping that installs
// results. Concurrency here is provided by the caller's branch.Barrier; this
// type just sequences evaluate-then-collect for one branch's share of work.
type FitnessStage struct {
	op FitnessOp
}

// NewFitnessStage wraps op for staged, per-branch evaluation.
func NewFitnessStage(op FitnessOp) *FitnessStage {
	return &FitnessStage{op: op}
}

// Evaluated pairs a genotype with the fitness computed for it, or the error
// that evaluation produced.
type Evaluated struct {
	Genotype Genotype
	Fitness  Fitness
	Err      error
}

// EvaluateBatch runs op.Evaluate over every genotype in gs, in the calling
// goroutine, returning results in the same order. Callers that want
// parallel evaluation across branches call this once per branch via
// branch.Barrier rather than this type spawning goroutines itself, keeping
// this module's single source of parallelism at the branch layer.
func (s *FitnessStage) EvaluateBatch(ctx context.Context, gs []Genotype) []Evaluated {
	out := make([]Evaluated, len(gs))
	for i, g := range gs {
		fit, err := s.op.Evaluate(ctx, g)
		out[i] = Evaluated{Genotype: g, Fitness: fit, Err: err}
	}
	return out
}

// FirstError returns the first non-nil error among a batch of results, or
// nil if every evaluation succeeded.
func FirstError(results []Evaluated) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
