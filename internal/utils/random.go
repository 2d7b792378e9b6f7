// Package utils provides the seeded randomization primitives that all
// generators are built from: ratio decisions, bounded integer ranges,
// uniform picks and timestamp jitter.
package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// ErrEmptyInput is returned when a uniform pick is attempted on an empty
// candidate list. Callers are expected to guarantee non-empty lists before
// constructing a generator that picks from them.
var ErrEmptyInput = errors.New("cannot pick from an empty list")

// ErrInvalidRange is returned when a range is constructed with inverted
// bounds.
var ErrInvalidRange = errors.New("invalid range")

// Random provides a deterministic pseudo-random number generator with
// convenient methods for common generation tasks. It's designed to be
// reproducible given the same seed.
type Random struct {
	rng  *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRandom creates a new Random instance with the given seed.
// If seed is 0, a cryptographically random seed is generated.
func NewRandom(seed int64) *Random {
	var actualSeed uint64
	if seed == 0 {
		actualSeed = generateRandomSeed()
	} else {
		actualSeed = uint64(seed)
	}

	return &Random{
		rng:  rand.New(rand.NewPCG(actualSeed, actualSeed^0xDEADBEEF)),
		seed: actualSeed,
	}
}

// generateRandomSeed creates a cryptographically random seed
func generateRandomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// Fallback to time-based seed if crypto/rand fails
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Seed returns the seed used to initialize this RNG
func (r *Random) Seed() uint64 {
	return r.seed
}

// Fork creates a new Random instance with a derived seed.
// Useful for giving each emission stream its own RNG while
// maintaining reproducibility.
func (r *Random) Fork() *Random {
	r.mu.Lock()
	defer r.mu.Unlock()

	newSeed := r.rng.Uint64()
	return &Random{
		rng:  rand.New(rand.NewPCG(newSeed, newSeed^0xCAFEBABE)),
		seed: newSeed,
	}
}

// IntN returns a pseudo-random int in [0, n)
func (r *Random) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

// IntRange returns a pseudo-random int in [min, max]
func (r *Random) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + r.IntN(max-min+1)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0)
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Probability returns true with the given probability (0.0 to 1.0).
// A ratio of 0 never fires, a ratio of 1 always fires.
func (r *Random) Probability(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Duration returns a random duration in [min, max]
func (r *Random) Duration(min, max time.Duration) time.Duration {
	if min >= max {
		return min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + time.Duration(r.rng.Int64N(int64(max-min)+1))
}

// Jitter returns t shifted forward by a random offset in [0, maxDelay].
func (r *Random) Jitter(t time.Time, maxDelay time.Duration) time.Time {
	if maxDelay <= 0 {
		return t
	}
	return t.Add(r.Duration(0, maxDelay))
}

// Pick returns one element chosen uniformly at random from candidates.
// Returns ErrEmptyInput if the slice is empty.
func Pick[T any](r *Random, candidates []T) (T, error) {
	if len(candidates) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return candidates[r.IntN(len(candidates))], nil
}

// MustPick is Pick for candidate lists whose non-emptiness was validated
// at construction time. Panics on an empty slice: that is an integration
// bug, not a runtime condition.
func MustPick[T any](r *Random, candidates []T) T {
	v, err := Pick(r, candidates)
	if err != nil {
		panic(err)
	}
	return v
}

// Range is an inclusive [Min, Max] integer interval. Construct it through
// NewRange so that bad bounds are rejected once, eagerly, instead of
// failing on every sample.
type Range struct {
	Min int
	Max int
}

// NewRange creates an inclusive integer range, rejecting min > max.
func NewRange(min, max int) (Range, error) {
	if min > max {
		return Range{}, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, min, max)
	}
	return Range{Min: min, Max: max}, nil
}

// Sample returns a uniformly distributed integer in [Min, Max].
// If Min == Max it always returns that value.
func (rg Range) Sample(r *Random) int {
	return r.IntRange(rg.Min, rg.Max)
}
