// Package simrand provides the randomness source behind the live-match
// simulation. Injecting it keeps goal minutes, shot counts and possession
// swings reproducible under a fixed seed.
package simrand

import (
	"math/rand"
	"sync"
	"time"
)

// Source yields integers for the simulation. Implementations must be safe
// for concurrent use.
type Source interface {
	// IntBetween returns a uniform value in [min, max], inclusive on both
	// ends.
	IntBetween(min, max int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a seeded source. Equal seeds produce equal sequences.
func New(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

// NewFromTime returns a source seeded from the current time.
func NewFromTime() Source {
	return New(time.Now().UnixNano())
}

func (s *lockedSource) IntBetween(min, max int) int {
	if max < min {
		min, max = max, min
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Intn(max-min+1)
}
