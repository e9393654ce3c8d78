// Package sequencer orders a category's questions for a session.
package sequencer

import "math/rand/v2"

// Source supplies the randomness Shuffle draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform value in [0, n). It must not be called with n <= 0.
	IntN(n int) int
}

// NewSource returns a seeded PCG source, for reproducible orderings.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalSource draws from the package-level math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a uniform random permutation of items using Fisher–Yates.
// The input slice is left untouched. A nil src uses the global generator.
func Shuffle[T any](items []T, src Source) []T {
	if src == nil {
		src = globalSource{}
	}

	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
