package quizgen

import "math/rand/v2"

// Rand is the randomness source used by every generator. Production
// code uses SystemRand; tests inject a seeded or scripted source so
// option sets are reproducible.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
	// Shuffle randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}

// SystemRand is the default Rand backed by math/rand/v2's shared state.
type SystemRand struct{}

func (SystemRand) IntN(n int) int { return rand.IntN(n) }

func (SystemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Seeded returns a deterministic Rand for tests.
func Seeded(seed uint64) Rand {
	return seededRand{r: rand.New(rand.NewPCG(seed, seed))}
}

type seededRand struct {
	r *rand.Rand
}

func (s seededRand) IntN(n int) int                     { return s.r.IntN(n) }
func (s seededRand) Shuffle(n int, swap func(i, j int)) { s.r.Shuffle(n, swap) }

// sample draws k distinct indices from [0, n) in random order. When
// k >= n it returns a permutation of all n indices.
func sample(rng Rand, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	if k < n {
		idx = idx[:k]
	}
	return idx
}
