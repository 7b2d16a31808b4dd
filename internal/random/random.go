// Package random provides the shuffling and picking helpers used to build
// decks and quiz options.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the subset of *rand.Rand the helpers need.
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a deterministic source seeded with seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Default returns a time-seeded source.
func Default() Source {
	return New(uint64(time.Now().UnixNano()))
}

// Shuffle returns a uniformly shuffled copy of items (Fisher–Yates).
// The input slice is never modified.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns one element chosen uniformly from items.
// It returns false when items is empty.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.IntN(len(items))], true
}
