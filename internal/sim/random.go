package sim

import "math/rand/v2"

// Source draws uniform floats. Implementations must be deterministic for a
// fixed seed so repeated runs produce identical reports.
type Source interface {
	Uniform(lo, hi float64) float64
}

// SeededSource is a PCG-backed Source.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a Source seeded once with seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Uniform returns a float in [lo, hi).
func (s *SeededSource) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
