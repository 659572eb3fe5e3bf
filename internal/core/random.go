package core

import "math/rand"

// Rand is a seeded random source for deterministic simulation.
// Two Rand values created with the same seed produce the same sequence.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a random source from a seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Range returns a float in [min, max).
func (r *Rand) Range(min, max float64) float64 {
	return r.r.Float64()*(max-min) + min
}

// Int returns an integer in [min, max], both inclusive.
// If max < min the bounds are swapped.
func (r *Rand) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.r.Intn(max-min+1)
}

// Pick returns a uniformly chosen index in [0, n). n must be positive.
func (r *Rand) Pick(n int) int {
	return r.r.Intn(n)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}
