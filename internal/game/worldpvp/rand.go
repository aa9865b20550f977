package worldpvp

import "math/rand/v2"

// Rand is the random source of one kill-processing context.
// Implementations are not required to be safe for concurrent use:
// every worker owns its own instance (see killfeed.Dispatcher).
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG generator for the given seed and stream.
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// urand returns a uniform integer in [lo, hi].
func urand(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
