package gen

import "math/rand/v2"

// sampleWithoutReplacement draws k distinct indices from weights, each draw
// proportional to the remaining weights. Drawn indices are zeroed out so they
// cannot be picked twice. If the remaining pool has zero total weight (for
// example, degree-proportional sampling right after an edgeless seed), the
// draw falls back to uniform over the not-yet-drawn indices.
//
// k is clamped to len(weights). The input slice is not modified.
func sampleWithoutReplacement(weights []float64, k int, rng *rand.Rand) []int {
	n := len(weights)
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}

	pool := make([]float64, n)
	copy(pool, weights)
	drawn := make([]bool, n)

	picks := make([]int, 0, k)
	for len(picks) < k {
		idx := drawWeighted(pool, drawn, rng)
		picks = append(picks, idx)
		drawn[idx] = true
		pool[idx] = 0
	}
	return picks
}

// drawWeighted picks one index proportional to pool weights, skipping drawn
// entries. Falls back to a uniform draw over undrawn indices when the pool
// sums to zero.
func drawWeighted(pool []float64, drawn []bool, rng *rand.Rand) int {
	var total float64
	for i, w := range pool {
		if !drawn[i] {
			total += w
		}
	}

	if total == 0 {
		var candidates []int
		for i := range pool {
			if !drawn[i] {
				candidates = append(candidates, i)
			}
		}
		return candidates[rng.IntN(len(candidates))]
	}

	target := rng.Float64() * total
	var cum float64
	last := -1
	for i, w := range pool {
		if drawn[i] {
			continue
		}
		cum += w
		last = i
		if target < cum {
			return i
		}
	}
	// Floating-point rounding can leave target marginally above cum.
	return last
}
