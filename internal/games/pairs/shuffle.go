package pairs

import "math/rand"

// Shuffle returns a uniformly random permutation of in.
// The input slice is left untouched.
func Shuffle[T any](rng *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	// Fisher-Yates, walking down from the end
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
