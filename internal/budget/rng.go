// Package budget derives party difficulty thresholds and plans a spread of encounter budgets around them.
package budget

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// newRNG returns a deterministic generator for a supplied seed and a
// clock-seeded one otherwise. *rand.Rand is not safe for concurrent use.
func newRNG(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}

// drawBudgets draws count normal samples with the given mean and sigma,
// rounds each half-to-even and returns them sorted ascending.
func drawBudgets(rng *rand.Rand, count int, mean, sigma float64) []int {
	samples := make([]int, count)
	for i := range samples {
		samples[i] = int(math.RoundToEven(rng.NormFloat64()*sigma + mean))
	}
	sort.Ints(samples)
	return samples
}
