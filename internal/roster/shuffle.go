package roster

import "math/rand/v2"

// NewRand returns the process-wide shuffle generator, seeded from system
// entropy. Tests construct their own with fixed PCG seeds instead.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Shuffle returns a uniform random permutation of names drawn from rng.
// The input slice is left untouched. Lists of length 0 or 1 come back as-is.
func Shuffle(rng *rand.Rand, names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
