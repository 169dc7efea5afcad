package mopareto

import (
	"math"
	"sort"

	"github.com/kataklinger/galex"
)

// CrowdingDistance computes the NSGA-II crowding distance of each member
// within front, using pool for objective values. Boundary members (lowest
// and highest in some objective) get +Inf so they are always preferred,
// exactly as the textbook algorithm specifies.
func CrowdingDistance(pool []galex.MultiFitness, front Front) []float64 {
	n := len(front)
	dist := make([]float64, n)
	if n == 0 {
		return dist
	}
	objectives := pool[front[0]].Len()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	for m := 0; m < objectives; m++ {
		sort.Slice(order, func(a, b int) bool {
			return pool[front[order[a]]].Component(m) < pool[front[order[b]]].Component(m)
		})
		dist[order[0]] = math.Inf(1)
		dist[order[n-1]] = math.Inf(1)

		lo := pool[front[order[0]]].Component(m)
		hi := pool[front[order[n-1]]].Component(m)
		span := hi - lo
		if span == 0 {
			continue
		}
		for i := 1; i < n-1; i++ {
			prev := pool[front[order[i-1]]].Component(m)
			next := pool[front[order[i+1]]].Component(m)
			if !math.IsInf(dist[order[i]], 1) {
				dist[order[i]] += (next - prev) / span
			}
		}
	}
	return dist
}

// SelectNSGA2 returns the indices (into pool) of the n best members under
// NSGA-II's rank-then-crowding order: earlier fronts always win; within
// the front that must be split to hit exactly n, members with larger
// crowding distance win.
func SelectNSGA2(pool []galex.MultiFitness, n int) []int {
	fronts := FastNonDominatedSort(pool)
	selected := make([]int, 0, n)

	for _, front := range fronts {
		if len(selected)+len(front) <= n {
			selected = append(selected, front...)
			continue
		}
		remaining := n - len(selected)
		if remaining <= 0 {
			break
		}
		dist := CrowdingDistance(pool, front)
		order := make([]int, len(front))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool { return dist[order[a]] > dist[order[b]] })
		for _, oi := range order[:remaining] {
			selected = append(selected, front[oi])
		}
		break
	}
	return selected
}

// SelectNSGA2Members is the galex.ChromosomeStorage-level convenience over
// SelectNSGA2: it returns the pool members themselves (not indices) that
// SURVIVE, unlike replace policies, which return victim indices, since
// NSGA-II conventionally truncates a combined parent+offspring pool rather
// than picking victims out of the existing population.
func SelectNSGA2Members(pool []*galex.ChromosomeStorage, n int) []*galex.ChromosomeStorage {
	mf := multiFitnessOf(pool)
	idx := SelectNSGA2(mf, n)
	out := make([]*galex.ChromosomeStorage, len(idx))
	for i, p := range idx {
		out[i] = pool[p]
	}
	return out
}
