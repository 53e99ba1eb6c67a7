// Package dice wraps math/rand behind a Roller with a configurable random
// source so gameplay randomness (drop rolls, spawn placement, enemy fire
// cooldowns) can be made deterministic in tests.
package dice

import (
	"math/rand"
	"time"
)

// Roller handles random rolls with a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// NewTimeSeeded creates a Roller seeded from the current time
func NewTimeSeeded() *Roller {
	return NewRoller(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSeeded creates a Roller with a fixed seed, for deterministic tests
func NewSeeded(seed int64) *Roller {
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Chance performs a Bernoulli trial with probability p.
// p <= 0 never succeeds and p >= 1 always succeeds.
func (r *Roller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rng.Float64() < p
}

// Range returns a uniform float64 in [min, max].
func (r *Roller) Range(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// IntN returns a uniform int in [0, n).
func (r *Roller) IntN(n int) int {
	return r.rng.Intn(n)
}

// IntRange returns a uniform int in [min, max] inclusive.
func (r *Roller) IntRange(min, max int) int {
	return min + r.rng.Intn(max-min+1)
}
