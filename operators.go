package galex

import "context"

// Genotype is the representation of a candidate solution. The engine never
// inspects a genotype's internals; it only clones, compares, and varies them
// through the operators below. Callers supply a concrete genotype the same
// way cbarrick-evo callers supply a concrete Genome.
type Genotype interface {
	// Clone returns an independent copy safe to mutate without affecting
	// the receiver.
	Clone() Genotype
}

// Fitness is the scalar (or scalarizable) outcome of evaluating a genotype.
// Raw fitness and scaled fitness are both represented by this interface;
// which one a given value is depends on where it is stored.
type Fitness interface {
	// Add accumulates other into the receiver in place, used when merging
	// contributions from multiple branches or objectives.
	Add(other Fitness)

	// Sub is the inverse of Add.
	Sub(other Fitness)

	// Compare returns <0, 0, >0 as the receiver is worse than, equal to, or
	// better than other under the comparator's sense of "better" for
	// scalarizable fitness; multi-objective comparators generally ignore
	// this and use Pareto dominance instead (see mopareto).
	Compare(other Fitness) int

	// ProbabilityBase returns the non-negative weight used by
	// probability-proportional selection (roulette wheel). Implementations
	// of minimizing objectives must already invert/shift so this is
	// monotonic with "better".
	ProbabilityBase() float64

	// Distance returns a non-negative measure of dissimilarity to other,
	// used by fitness sharing and crowding.
	Distance(other Fitness) float64

	// Clone returns an independent copy.
	Clone() Fitness
}

// MultiFitness extends Fitness with vector-component access for the
// multi-objective algorithms in mopareto.
type MultiFitness interface {
	Fitness

	// Len returns the number of objective components.
	Len() int

	// Component returns the i'th objective value, in maximize-is-better
	// orientation.
	Component(i int) float64
}

// Comparator orders two Fitness values. Populations are configured with one
// Comparator for raw fitness and may hold a second for scaled fitness.
type Comparator interface {
	Compare(a, b Fitness) int
}

// ComparatorFunc adapts a function to a Comparator.
type ComparatorFunc func(a, b Fitness) int

func (f ComparatorFunc) Compare(a, b Fitness) int { return f(a, b) }

// Initializer produces the starting genotype for a fresh storage slot, e.g.
// a random individual or a seed from a prior run.
type Initializer interface {
	Initialize(branch int) Genotype
}

// InitializerFunc adapts a function to an Initializer.
type InitializerFunc func(branch int) Genotype

func (f InitializerFunc) Initialize(branch int) Genotype { return f(branch) }

// Crossover combines one or more parents into offspring genotypes.
type Crossover interface {
	Cross(branch int, parents ...Genotype) []Genotype
}

// Mutation perturbs a genotype in place (or returns a mutated copy,
// depending on the concrete operator's contract with its Genotype type).
type Mutation interface {
	Mutate(branch int, g Genotype) Genotype
}

// FitnessOp computes raw fitness for a genotype. Evaluation is allowed to be
// expensive and is always run off the critical section (see
// fitness_stage.go), so it takes a context for cancellation.
type FitnessOp interface {
	Evaluate(ctx context.Context, g Genotype) (Fitness, error)
}

// FitnessOpFunc adapts a function to a FitnessOp.
type FitnessOpFunc func(ctx context.Context, g Genotype) (Fitness, error)

func (f FitnessOpFunc) Evaluate(ctx context.Context, g Genotype) (Fitness, error) {
	return f(ctx, g)
}

// ScaledFitnessPrototype produces a zero-valued Fitness of whatever concrete
// type scaling operations (sharing, sel.RouletteWheel, ...) should
// accumulate into, distinct from the FitnessOp's raw output type when the
// two differ (e.g. raw is a single float, scaled is shared/crowded).
type ScaledFitnessPrototype interface {
	New() Fitness
}
