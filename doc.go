// Package galex is a population evaluation and scaling engine for
// evolutionary-computation algorithms: it owns chromosome storage, fitness
// evaluation, and generation replacement, while leaving representation
// (Genotype), variation (Crossover/Mutation), and selection/replacement
// policy to pluggable operators supplied by the caller.
//
// Subpackages layer algorithm families on top of the root types: stats
// tracks running statistics over a population, sel implements selection
// operators, coupling restricts which members may mate, replace implements
// survivor-selection policies, sharing implements fitness sharing, mopareto
// implements Pareto-based multi-objective algorithms (NSGA, SPEA, PESA,
// PAES), migrate moves members between populations, branch provides
// barrier-synchronized multi-branch scheduling, and rng provides per-branch
// random sources.
package galex
