// Package galextest provides toy genotypes used only by this module's own
// tests, adapted from cbarrick-evo's perm and real representation packages
// into implementations of this module's Genotype/Fitness interfaces instead
// of evo.Genome. Nothing outside _test.go files imports this package.
package galextest

import (
	"context"
	"math/rand"

	"github.com/kataklinger/galex"
)

// Permutation is a toy genotype representing a permutation of
// 0..len(Order)-1, the same representation cbarrick-evo's perm package
// targets (TSP-style problems). Order crossover (OrderX) is ported here
// unchanged; only the surrounding Genotype contract differs.
type Permutation struct {
	Order []int
}

// NewPermutation builds a random permutation of size n using r.
func NewPermutation(r *rand.Rand, n int) *Permutation {
	p := &Permutation{Order: r.Perm(n)}
	return p
}

// Clone implements galex.Genotype.
func (p *Permutation) Clone() galex.Genotype {
	cp := make([]int, len(p.Order))
	copy(cp, p.Order)
	return &Permutation{Order: cp}
}

func search(slice []int, val int) int {
	for i := range slice {
		if slice[i] == val {
			return i
		}
	}
	return -1
}

func randSlice(r *rand.Rand, perm []int) (sub []int, left, right int) {
	left = r.Intn(len(perm))
	right = left + 1 + r.Intn(len(perm)-1)
	if right <= len(perm) {
		return perm[left:right], left, right
	}
	right -= len(perm)
	sub = make([]int, 0, len(perm))
	sub = append(sub, perm[left:]...)
	sub = append(sub, perm[:right]...)
	return sub, left, right
}

// OrderCross performs order crossover between mom and dad, writing the
// result into a freshly allocated permutation. Ported from perm.OrderX.
func OrderCross(r *rand.Rand, mom, dad *Permutation) *Permutation {
	if r.Float64() < 0.5 {
		mom, dad = dad, mom
	}
	n := len(mom.Order)
	child := make([]int, n)
	sub, left, right := randSlice(r, mom.Order)
	if right > left {
		copy(child[left:right], sub)
	} else {
		copy(child[left:], sub[:n-left])
		copy(child[:right], sub[n-left:])
	}
	taken := make([]bool, n)
	for _, v := range sub {
		taken[v] = true
	}
	i := right % n
	for j := 0; j < n; j++ {
		v := dad.Order[j]
		if !taken[v] {
			child[i] = v
			i = (i + 1) % n
		}
	}
	return &Permutation{Order: child}
}

// RandSwap mutates gene by swapping two random positions, ported from
// perm.RandSwap.
func RandSwap(r *rand.Rand, gene *Permutation) {
	n := len(gene.Order)
	i := r.Intn(n)
	j := i
	for j == i {
		j = r.Intn(n)
	}
	gene.Order[i], gene.Order[j] = gene.Order[j], gene.Order[i]
}

// PermutationInitializer implements galex.Initializer for random
// permutations of a fixed size.
type PermutationInitializer struct {
	Size int
	RNG  *rand.Rand
}

func (pi PermutationInitializer) Initialize(branch int) galex.Genotype {
	return NewPermutation(pi.RNG, pi.Size)
}

// PermutationCrossover implements galex.Crossover using OrderCross.
type PermutationCrossover struct {
	RNG *rand.Rand
}

func (c PermutationCrossover) Cross(branch int, parents ...galex.Genotype) []galex.Genotype {
	mom := parents[0].(*Permutation)
	dad := parents[1].(*Permutation)
	return []galex.Genotype{OrderCross(c.RNG, mom, dad)}
}

// PermutationMutation implements galex.Mutation using RandSwap.
type PermutationMutation struct {
	RNG *rand.Rand
}

func (m PermutationMutation) Mutate(branch int, g galex.Genotype) galex.Genotype {
	child := g.Clone().(*Permutation)
	RandSwap(m.RNG, child)
	return child
}

// TourLength is a minimizing fitness over a fixed distance matrix, used to
// give Permutation genotypes a concrete objective in tests.
type TourLength struct {
	Dist [][]float64
}

func (t TourLength) Evaluate(_ context.Context, g galex.Genotype) (galex.Fitness, error) {
	p := g.(*Permutation)
	total := 0.0
	n := len(p.Order)
	for i := 0; i < n; i++ {
		a, b := p.Order[i], p.Order[(i+1)%n]
		total += t.Dist[a][b]
	}
	fit := Scalar(-total) // negate: engine convention is "greater is better"
	return &fit, nil
}
