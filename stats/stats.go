package stats

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sum returns the arithmetic sum of xs, or 0 for an empty slice.
func Sum(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs)
}

// Mean returns the arithmetic mean of xs. The boolean result is false for
// an empty slice, for which no mean exists.
func Mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return stat.Mean(xs, nil), true
}

// Max returns the maximum of xs. The boolean result is false for an empty
// slice, for which no maximum exists.
func Max(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return floats.Max(xs), true
}

// Median returns the element at index len/2 of the ascending sort of xs.
// For even counts this is the upper-middle element rather than the textbook
// interpolated median. The boolean result is false for an empty slice.
// xs is not modified.
func Median(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2], true
}

// Mode returns the most frequently occurring element of xs. Ties break to
// the value whose maximal count is reached first in scan order. The boolean
// result is false for an empty slice.
func Mode(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	counts := make(map[float64]int, len(xs))
	best := xs[0]
	bestCount := 0
	for _, x := range xs {
		counts[x]++
		if counts[x] > bestCount {
			best = x
			bestCount = counts[x]
		}
	}
	return best, true
}
