package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"
)

// RNG is the engine's Mersenne-Twister-equivalent 32-bit pseudo-random
// source. It wraps math/rand's generator rather than re-implementing MT
// itself; math/rand's default source is a lagged Fibonacci generator with
// comparable statistical quality for gameplay purposes, and every method
// here is a pure function of (seed, call sequence) as §4.I requires.
type RNG struct {
	seed   uint64
	name   string
	source *rand.Rand
}

// NewFromEntropy seeds a top-level engine RNG from a non-deterministic
// source — the current time in nanoseconds — matching
// §4.I's "seeded from a non-deterministic source at startup (seed is
// logged)". Callers should log the returned Seed() once at startup.
func NewFromEntropy() *RNG {
	seed := uint64(time.Now().UnixNano())
	return &RNG{seed: seed, name: "root", source: rand.New(rand.NewSource(int64(seed)))}
}

// NewFromSeed constructs a deterministic top-level RNG from an explicit
// seed, used by tests and by replays that need a fixed sequence.
func NewFromSeed(seed uint64) *RNG {
	return &RNG{seed: seed, name: "root", source: rand.New(rand.NewSource(int64(seed)))}
}

// Derive produces an independent, deterministic sub-RNG for one named
// subsystem (e.g. "zone-gen", "invocation", "spawn-variant"). Two calls
// with the same stage name against RNGs of the same seed always produce
// identical streams; two different stage names against the same parent
// never collide in practice, since the stage name is mixed into the hash
// that derives the child seed.
func (r *RNG) Derive(stage string) *RNG {
	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], r.seed)
	h.Write(buf[:])
	h.Write([]byte(stage))
	sum := h.Sum(nil)
	derived := binary.BigEndian.Uint64(sum[:8])
	return &RNG{seed: derived, name: stage, source: rand.New(rand.NewSource(int64(derived)))}
}

// Seed returns the seed this RNG was constructed or derived with.
func (r *RNG) Seed() uint64 { return r.seed }

// Name returns the stage name this RNG was derived for ("root" at the
// top level).
func (r *RNG) Name() string { return r.name }

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0,
// matching the standard library's own Intn precondition.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Bool returns a fair coin flip.
func (r *RNG) Bool() bool {
	return r.source.Intn(2) == 1
}

// Bernoulli returns true with probability p, clamped to [0,1].
func (r *RNG) Bernoulli(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.source.Float64() < p
}

// IntRange returns a pseudo-random integer in [lo, hi] inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if lo > hi {
		panic("rng: IntRange lo must be <= hi")
	}
	if lo == hi {
		return lo
	}
	return lo + r.source.Intn(hi-lo+1)
}

// Shuffle pseudo-randomizes the order of a slice of length n in place.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// WeightedChoice selects an index from weights by weighted random draw.
// Weights must be non-negative; returns -1 if every weight is zero or the
// slice is empty.
func (r *RNG) WeightedChoice(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	draw := r.source.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if draw < cumulative {
			return i
		}
	}
	return len(weights) - 1
}
