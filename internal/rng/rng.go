// internal/rng/rng.go

package rng

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Generator parameters matching frand.New: 1 KiB buffer, ChaCha12.
const (
	seedSize = 32
	bufSize  = 1024
	rounds   = 12
)

// New returns a generator seeded from the kernel's entropy pool. Every
// lottery run gets its own generator; instances are not safe for concurrent
// use, so a generator must never be shared between in-flight runs.
func New() *frand.RNG {
	return frand.New()
}

// NewSeeded returns a deterministic generator for simulations and tests.
// The same seed always yields the same draw sequence.
func NewSeeded(seed uint64) *frand.RNG {
	key := make([]byte, seedSize)
	binary.LittleEndian.PutUint64(key, seed)
	return frand.NewCustom(key, bufSize, rounds)
}
