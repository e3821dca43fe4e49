package engine

import (
	"sync"
	"time"
)

// Source yields uniformly distributed float64 values in [0, 1).
// The synthesizer draws all of its randomness through this interface so
// tests can substitute a scripted sequence and assert exact outputs.
type Source interface {
	Float64() float64
}

// RNG is a seedable pseudo-random number generator using PCG-XSH-RR.
// It is safe for concurrent use.
type RNG struct {
	mu    sync.Mutex
	state uint64
	inc   uint64
}

// NewRNG creates a new PRNG with the given seed. If seed is 0, uses current time.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := &RNG{}
	// PCG requires odd increment
	r.inc = uint64(seed)<<1 | 1
	r.state = 0
	r.step()
	r.state += uint64(seed)
	r.step()
	return r
}

func (r *RNG) step() {
	r.state = r.state*6364136223846793005 + r.inc
}

// Uint32 returns a uniformly distributed uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	old := r.state
	r.step()
	r.mu.Unlock()

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Float64 returns a uniformly distributed float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}
