package sampler

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"subsample/constants"
)

// NewRand returns a PCG-backed source; equal seeds give equal samples.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, constants.SeedStream))
}

// ClockSeed derives a seed from the wall clock. Two runs in the same
// nanosecond draw the same sample.
func ClockSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// SampleIndices draws k distinct indices uniformly from [0, n) and returns
// them in ascending order. It permutes the full range with rng, keeps the
// first k and sorts them, so every k-subset is equally likely.
func SampleIndices(rng *rand.Rand, n, k int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSample, k)
	}
	if k > n {
		return nil, fmt.Errorf("%w: requested %d, input has %d", ErrSampleTooLarge, k, n)
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(n, func(i, j int) {
		idx[i], idx[j] = idx[j], idx[i]
	})

	// Clone so the n-sized permutation can be collected
	sample := slices.Clone(idx[:k])
	slices.Sort(sample)
	return sample, nil
}
