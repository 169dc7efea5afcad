package galextest

import (
	"context"
	"math"
	"math/rand"

	"github.com/kataklinger/galex"
)

// Vector is a toy real-valued genotype, ported from cbarrick-evo's
// real.Vector, generalized from a []float64 alias into a struct so it can
// carry galex.Genotype's Clone method without colliding with the
// arithmetic helpers (Add/Subtract/Scale) the teacher attached directly to
// the slice type.
type Vector struct {
	Values []float64
}

// RandomVector generates a vector of length n with components uniform in
// [0, scale), the direct port of real.Random.
func RandomVector(r *rand.Rand, n int, scale float64) *Vector {
	v := &Vector{Values: make([]float64, n)}
	for i := range v.Values {
		v.Values[i] = r.Float64() * scale
	}
	return v
}

func (v *Vector) Clone() galex.Genotype {
	cp := make([]float64, len(v.Values))
	copy(cp, v.Values)
	return &Vector{Values: cp}
}

// Gaussian perturbs every component by Normal(stdv), the direct port of
// real.Normal applied component-wise.
func Gaussian(r *rand.Rand, v *Vector, stdv float64) *Vector {
	out := v.Clone().(*Vector)
	for i := range out.Values {
		out.Values[i] += stdv * r.NormFloat64()
	}
	return out
}

// VectorInitializer implements galex.Initializer for random real vectors.
type VectorInitializer struct {
	Dim   int
	Scale float64
	RNG   *rand.Rand
}

func (vi VectorInitializer) Initialize(branch int) galex.Genotype {
	return RandomVector(vi.RNG, vi.Dim, vi.Scale)
}

// VectorMutation implements galex.Mutation via Gaussian perturbation.
type VectorMutation struct {
	Stdv float64
	RNG  *rand.Rand
}

func (m VectorMutation) Mutate(branch int, g galex.Genotype) galex.Genotype {
	return Gaussian(m.RNG, g.(*Vector), m.Stdv)
}

// VectorCrossover implements galex.Crossover via arithmetic (midpoint)
// recombination, the simplest crossover for a real-vector representation.
type VectorCrossover struct{}

func (VectorCrossover) Cross(branch int, parents ...galex.Genotype) []galex.Genotype {
	a := parents[0].(*Vector)
	b := parents[1].(*Vector)
	child := make([]float64, len(a.Values))
	for i := range child {
		child[i] = (a.Values[i] + b.Values[i]) / 2
	}
	return []galex.Genotype{&Vector{Values: child}}
}

// TwoObjective evaluates a two-objective fitness over a Vector, used to
// exercise the mopareto algorithms with a minimal but non-trivial Pareto
// front. Objective 0 minimizes the sum of squares (pulls toward the
// origin); objective 1 minimizes the sum of squared distance to the all-
// ones point (pulls toward (1,1,...)) — the classic two-sink toy problem.
// Both are negated so the engine's "greater is better" convention holds.
type TwoObjective struct{}

func (TwoObjective) Evaluate(_ context.Context, g galex.Genotype) (galex.Fitness, error) {
	v := g.(*Vector)
	var sum0, sum1 float64
	for _, x := range v.Values {
		sum0 += x * x
		d := x - 1
		sum1 += d * d
	}
	return &MultiVector{Components: []float64{-sum0, -sum1}}, nil
}

// MultiVector is a fixed-length vector fitness implementing
// galex.MultiFitness, used by the mopareto algorithms under test.
type MultiVector struct {
	Components []float64
}

func (m *MultiVector) Len() int { return len(m.Components) }

func (m *MultiVector) Component(i int) float64 { return m.Components[i] }

func (m *MultiVector) Add(other galex.Fitness) {
	o := other.(*MultiVector)
	for i := range m.Components {
		m.Components[i] += o.Components[i]
	}
}

func (m *MultiVector) Sub(other galex.Fitness) {
	o := other.(*MultiVector)
	for i := range m.Components {
		m.Components[i] -= o.Components[i]
	}
}

// Compare implements a weak-dominance-derived ordering for contexts (e.g.
// sel.RouletteWheel) that need a single scalar; mopareto algorithms ignore
// this and use their own dominance tests instead.
func (m *MultiVector) Compare(other galex.Fitness) int {
	o := other.(*MultiVector)
	var s, t float64
	for i := range m.Components {
		s += m.Components[i]
		t += o.Components[i]
	}
	switch {
	case s < t:
		return -1
	case s > t:
		return 1
	default:
		return 0
	}
}

func (m *MultiVector) ProbabilityBase() float64 {
	var s float64
	for _, c := range m.Components {
		s += c
	}
	return math.Max(s, 0)
}

func (m *MultiVector) Distance(other galex.Fitness) float64 {
	o := other.(*MultiVector)
	var sum float64
	for i := range m.Components {
		d := m.Components[i] - o.Components[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (m *MultiVector) Clone() galex.Fitness {
	cp := make([]float64, len(m.Components))
	copy(cp, m.Components)
	return &MultiVector{Components: cp}
}
