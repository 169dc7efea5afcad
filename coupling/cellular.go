// Package coupling restricts which members of a population may be paired as
// parents, generalizing cbarrick-evo's pop/graph and diffusion packages
// (which hard-wired a goroutine-per-node adjacency graph into the
// population type itself) into a standalone policy object that any
// selection step can consult. The adjacency-list layouts (hypercube, grid,
// ring, custom) are ported unchanged; what's dropped is the teacher's
// per-node goroutine/channel lifecycle, since this module's concurrency is
// the caller-driven branch model rather than an always-running actor mesh.
package coupling

import "math/rand"

// Cellular restricts mating to neighbors in a fixed adjacency-list layout,
// the direct generalization of cbarrick-evo's diffusion/pop-graph layout
// concept.
type Cellular struct {
	layout [][]int
}

// NewCellular wraps an adjacency list directly; layout[i] lists the
// neighbor indices of position i. Panics if any neighbor index is out of
// range, matching the teacher's diffusion.Custom validation.
func NewCellular(layout [][]int) *Cellular {
	size := len(layout)
	for i := range layout {
		for _, j := range layout[i] {
			if j < 0 || j >= size {
				panic("coupling: invalid layout, no such position")
			}
		}
	}
	return &Cellular{layout: layout}
}

// Neighbors returns the neighbor positions of i.
func (c *Cellular) Neighbors(i int) []int { return c.layout[i] }

// RandomNeighbor returns a uniformly random neighbor position of i, or -1
// if i has no neighbors.
func (c *Cellular) RandomNeighbor(r *rand.Rand, i int) int {
	peers := c.layout[i]
	if len(peers) == 0 {
		return -1
	}
	return peers[r.Intn(len(peers))]
}

// Hypercube arranges n positions as a hypercube graph, the direct port of
// diffusion.Hypercube's layout computation.
func Hypercube(n int) *Cellular {
	var dim uint
	for dim = 0; n > (1 << dim); dim++ {
	}
	layout := make([][]int, n)
	for i := range layout {
		layout[i] = make([]int, dim)
		for j := range layout[i] {
			layout[i][j] = (i ^ (1 << uint(j))) % n
		}
	}
	return NewCellular(layout)
}

// Grid arranges n positions in a 2D toroidal grid, the direct port of
// diffusion.Grid's layout computation.
func Grid(n int) *Cellular {
	offset := n / 2
	layout := make([][]int, n)
	for i := range layout {
		layout[i] = []int{
			((i + 1) + n) % n,
			((i - 1) + n) % n,
			((i + offset) + n) % n,
			((i - offset) + n) % n,
		}
	}
	return NewCellular(layout)
}

// Ring arranges n positions in a simple ring, the direct port of
// diffusion.Ring's layout computation.
func Ring(n int) *Cellular {
	layout := make([][]int, n)
	for i := range layout {
		layout[i] = []int{(i - 1 + n) % n, (i + 1) % n}
	}
	return NewCellular(layout)
}
