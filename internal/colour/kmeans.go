package colour

import (
	"math"
	"math/rand"
)

// clusterResult is one k-means trial's outcome: final centroids and its
// WCSS (within-cluster sum of squares) score, lower is better.
type clusterResult struct {
	centroids []Lab
	score     float64
}

// kmeansConfig mirrors the fixed tuning the original renderer hardcodes:
// k=6, 100 max iterations, 0.001 centroid-movement convergence threshold.
type kmeansConfig struct {
	k             int
	maxIterations int
	convergence   float64
}

var defaultKMeansConfig = kmeansConfig{k: 6, maxIterations: 100, convergence: 0.001}

// ClusterLab runs k-means on points three times with seeds 64, 65, 66 and
// returns the lowest-score (best quantization) result's centroids. This
// three-trial best-of mirrors the source's get_kmeans(6, 100, 0.001, ...)
// called once per seed, keeping the minimum score.
func ClusterLab(points []Lab) []Lab {
	if len(points) == 0 {
		return nil
	}
	cfg := defaultKMeansConfig
	if cfg.k > len(points) {
		cfg.k = len(points)
	}

	var best *clusterResult
	for i := 0; i < 3; i++ {
		seed := int64(64 + i)
		result := runKMeans(points, cfg, seed)
		if best == nil || result.score < best.score {
			best = &result
		}
	}
	return best.centroids
}

func runKMeans(points []Lab, cfg kmeansConfig, seed int64) clusterResult {
	rng := rand.New(rand.NewSource(seed))
	centroids := initCentroidsPlusPlus(points, cfg.k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < cfg.maxIterations; iter++ {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		newCentroids := recalculateCentroids(points, assignments, cfg.k, rng)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].Distance(newCentroids[i])
		}
		avgMovement := totalMovement / float64(cfg.k)

		centroids = newCentroids

		if changed == 0 || avgMovement < cfg.convergence {
			break
		}
	}

	score := wcss(points, centroids, assignments)
	return clusterResult{centroids: centroids, score: score}
}

// wcss computes the within-cluster sum of squared distances, the standard
// k-means quality score: lower means tighter, better-separated clusters.
func wcss(points []Lab, centroids []Lab, assignments []int) float64 {
	var total float64
	for i, p := range points {
		d := p.Distance(centroids[assignments[i]])
		total += d * d
	}
	return total
}

func initCentroidsPlusPlus(points []Lab, k int, rng *rand.Rand) []Lab {
	centroids := make([]Lab, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, p := range points {
			min := math.MaxFloat64
			for _, c := range centroids {
				if d := p.Distance(c); d < min {
					min = d
				}
			}
			distances[i] = min * min
			total += distances[i]
		}

		if total == 0 {
			last := centroids[len(centroids)-1]
			centroids = append(centroids, Lab{L: last.L + 0.1, A: last.A + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

func nearestCentroid(p Lab, centroids []Lab) int {
	best := 0
	bestDist := math.MaxFloat64
	for i, c := range centroids {
		if d := p.Distance(c); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func recalculateCentroids(points []Lab, assignments []int, k int, rng *rand.Rand) []Lab {
	sums := make([]Lab, k)
	counts := make([]int, k)

	for i, p := range points {
		c := assignments[i]
		sums[c].L += p.L
		sums[c].A += p.A
		sums[c].B += p.B
		counts[c]++
	}

	centroids := make([]Lab, k)
	for i := range k {
		if counts[i] > 0 {
			centroids[i] = Lab{
				L: sums[i].L / float64(counts[i]),
				A: sums[i].A / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}

	return centroids
}
