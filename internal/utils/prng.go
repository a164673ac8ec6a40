// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded math/rand generator so every random decision in
// the game (spawn points, power-up kinds, decorations) can be reproduced.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewSeededPRNGService(seed)
}

// NewSeededPRNGService uses seed as given, zero included. Use it wherever
// the output must be a pure function of the seed.
func NewSeededPRNGService(seed int64) *PRNGService {
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
	}
}

// Intn returns a value in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a value in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a value in [lo, hi).
func (s *PRNGService) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
