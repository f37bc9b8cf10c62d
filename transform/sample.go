package transform

import (
	"math/rand"
	"time"

	"github.com/go-munge/munge"
)

// Sample draws ⌊len(d) × fraction⌋ rows from d, uniformly and without
// replacement, by draining a shallow working copy of the Dataset; the input
// Dataset is not modified and the drawn rows are shared with it. A nil rng
// falls back to a wall-clock-seeded source, which is not reproducible across
// calls - callers who need deterministic samples must inject their own
// *rand.Rand. Fractions at or below 0 yield an empty Dataset; fractions at
// or above 1 drain every row.
//
// Removal from the working copy is by index swap, so draws are O(1) and the
// sample does not preserve input row order.
func Sample(d munge.Dataset, fraction float64, rng *rand.Rand) munge.Dataset {
	if fraction <= 0 {
		return munge.Dataset{}
	}
	size := int(float64(len(d)) * fraction)
	if size > len(d) {
		size = len(d)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	working := make(munge.Dataset, len(d))
	copy(working, d)

	sampled := make(munge.Dataset, 0, size)
	for i := 0; i < size; i++ {
		j := rng.Intn(len(working))
		sampled = append(sampled, working[j])
		working[j] = working[len(working)-1]
		working = working[:len(working)-1]
	}
	return sampled
}
