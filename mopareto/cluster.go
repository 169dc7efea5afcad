package mopareto

import (
	"math"

	"github.com/kataklinger/galex"
)

// TruncateByClustering reduces pool to exactly target members using
// SPEA's average-linkage cluster-merging truncation: members are grouped
// into singleton clusters, the two closest clusters (by average pairwise
// objective-space distance) are repeatedly merged, and from each final
// cluster only the member with the smallest total distance to the other
// members of its cluster is kept,
// guaranteeing boundary/extreme solutions are preserved better than a
// naive "drop the most crowded" rule would.
func TruncateByClustering(pool []galex.MultiFitness, target int) []int {
	n := len(pool)
	if target >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}

	for len(clusters) > target {
		ci, cj := closestClusters(pool, clusters)
		clusters[ci] = append(clusters[ci], clusters[cj]...)
		clusters = append(clusters[:cj], clusters[cj+1:]...)
	}

	out := make([]int, 0, len(clusters))
	for _, cluster := range clusters {
		out = append(out, representative(pool, cluster))
	}
	return out
}

func closestClusters(pool []galex.MultiFitness, clusters [][]int) (int, int) {
	bestI, bestJ := 0, 1
	bestDist := averageLinkage(pool, clusters[0], clusters[1])
	for i := 0; i < len(clusters); i++ {
		for j := i + 1; j < len(clusters); j++ {
			d := averageLinkage(pool, clusters[i], clusters[j])
			if d < bestDist {
				bestDist = d
				bestI, bestJ = i, j
			}
		}
	}
	return bestI, bestJ
}

func averageLinkage(pool []galex.MultiFitness, a, b []int) float64 {
	var sum float64
	for _, i := range a {
		for _, j := range b {
			sum += objectiveDistance(pool[i], pool[j])
		}
	}
	return sum / float64(len(a)*len(b))
}

// representative returns the member of cluster minimizing its total
// distance to every other member of the cluster.
func representative(pool []galex.MultiFitness, cluster []int) int {
	if len(cluster) == 1 {
		return cluster[0]
	}
	best := cluster[0]
	bestSum := math.Inf(1)
	for _, i := range cluster {
		var sum float64
		for _, j := range cluster {
			sum += objectiveDistance(pool[i], pool[j])
		}
		if sum < bestSum {
			bestSum = sum
			best = i
		}
	}
	return best
}
