// Package randutil centralises how random sources are created so that every
// component receives an explicit, reproducible *rand.Rand.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewOrTime behaves like New, except that a zero seed selects a time-based seed.
// The chosen seed is returned so runs can be replayed.
func NewOrTime(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(seed), seed
}

// Derive returns an independent generator for a worker or rollout index.
func Derive(seed int64, index int) *rand.Rand {
	return New(int64(mix(uint64(seed)) ^ mix(uint64(index)+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
