// Package randutil centralises deterministic RNG construction so every call
// site gets reproducible sequences from a single int64 seed.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed, deriving the
// two 64-bit values rand/v2's PCG wants via a splitmix-style finaliser.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Sub derives an independent child seed for stream i of a run seeded with
// seed. Used to give each simulated game its own RNG without the streams
// overlapping.
func Sub(seed int64, i int) int64 {
	return int64(mix(mix(uint64(seed)) + uint64(i)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
