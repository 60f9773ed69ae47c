package solver

import "math/rand"

// defaultSeed is used when callers pass seed == 0, so that a zero-valued
// Options still gives reproducible runs.
const defaultSeed int64 = 1

// newRNG returns a deterministic source. seed == 0 selects defaultSeed.
// A *rand.Rand is not goroutine-safe; each solver instance owns its own.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
