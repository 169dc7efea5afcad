package mopareto

import "github.com/kataklinger/galex"

// HyperGrid partitions objective space into equal-width hyperboxes (a
// hypergrid), the structure PESA and PESA-II use to measure crowding
// without the O(N^2) pairwise distance computation NSGA-II's crowding
// distance requires.
type HyperGrid struct {
	mins, maxs []float64
	divisions  int
}

// NewHyperGrid builds a grid over pool's objective bounds with the given
// number of divisions per objective.
func NewHyperGrid(pool []galex.MultiFitness, divisions int) *HyperGrid {
	if len(pool) == 0 {
		return &HyperGrid{divisions: divisions}
	}
	objectives := pool[0].Len()
	mins := make([]float64, objectives)
	maxs := make([]float64, objectives)
	for i := range mins {
		mins[i] = pool[0].Component(i)
		maxs[i] = pool[0].Component(i)
	}
	for _, f := range pool[1:] {
		for i := 0; i < objectives; i++ {
			v := f.Component(i)
			if v < mins[i] {
				mins[i] = v
			}
			if v > maxs[i] {
				maxs[i] = v
			}
		}
	}
	return &HyperGrid{mins: mins, maxs: maxs, divisions: divisions}
}

// Box returns the hyperbox coordinate of f, one integer per objective in
// [0, divisions).
func (g *HyperGrid) Box(f galex.MultiFitness) []int {
	box := make([]int, len(g.mins))
	for i := range box {
		span := g.maxs[i] - g.mins[i]
		if span <= 0 {
			box[i] = 0
			continue
		}
		frac := (f.Component(i) - g.mins[i]) / span
		cell := int(frac * float64(g.divisions))
		if cell >= g.divisions {
			cell = g.divisions - 1
		}
		if cell < 0 {
			cell = 0
		}
		box[i] = cell
	}
	return box
}

// boxKey turns a box coordinate into a comparable map key.
func boxKey(box []int) string {
	b := make([]byte, 0, len(box)*4)
	for _, v := range box {
		b = append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(b)
}

// Density computes, for every member of pool, the number of members
// (including itself) sharing its hyperbox — PESA's crowding measure.
func (g *HyperGrid) Density(pool []galex.MultiFitness) []int {
	counts := make(map[string]int, len(pool))
	keys := make([]string, len(pool))
	for i, f := range pool {
		k := boxKey(g.Box(f))
		keys[i] = k
		counts[k]++
	}
	out := make([]int, len(pool))
	for i, k := range keys {
		out[i] = counts[k]
	}
	return out
}
