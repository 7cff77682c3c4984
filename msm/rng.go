package msm

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// defaultRNGSeed is used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic source: seed 0 selects defaultRNGSeed,
// any other seed is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// cumulative returns the running sums of p.
func cumulative(p []float64) []float64 {
	return floats.CumSum(make([]float64, len(p)), p)
}

// drawIndex returns the number of cumulative entries strictly below u, the
// inverse-CDF draw for a non-decreasing cum. Rounding slack at the top end
// is clamped to the last index.
//
// Complexity: O(log len(cum)).
func drawIndex(cum []float64, u float64) int {
	i := sort.SearchFloat64s(cum, u)
	if i >= len(cum) {
		i = len(cum) - 1
	}

	return i
}
