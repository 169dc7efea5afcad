package mopareto

import (
	"math"
	"sort"

	"github.com/kataklinger/galex"
)

// AssignSPEA2 computes SPEA-2 fitness over pool: raw fitness R(i) is the
// sum of "strength" (count of members dominated) over every member that
// dominates i, and density D(i) is 1/(sigma_k+2) where sigma_k is the
// distance to the k'th nearest neighbor in objective space (k = sqrt(N),
// the standard choice). Final fitness is R+D; as with SPEA-1, lower is
// better, and a value under 1 indicates a non-dominated member (R==0).
func AssignSPEA2(pool []galex.MultiFitness) []float64 {
	n := len(pool)
	strength := make([]float64, n)
	for i := range pool {
		for j := range pool {
			if i != j && Dominates(pool[i], pool[j]) {
				strength[i]++
			}
		}
	}

	raw := make([]float64, n)
	for i := range pool {
		for j := range pool {
			if i != j && Dominates(pool[j], pool[i]) {
				raw[i] += strength[j]
			}
		}
	}

	k := int(math.Sqrt(float64(n)))
	if k < 1 {
		k = 1
	}
	density := make([]float64, n)
	for i := range pool {
		dists := make([]float64, 0, n-1)
		for j := range pool {
			if i != j {
				dists = append(dists, objectiveDistance(pool[i], pool[j]))
			}
		}
		sort.Float64s(dists)
		kth := dists[len(dists)-1]
		if k-1 < len(dists) {
			kth = dists[k-1]
		}
		density[i] = 1 / (kth + 2)
	}

	fitness := make([]float64, n)
	for i := range pool {
		fitness[i] = raw[i] + density[i]
	}
	return fitness
}
