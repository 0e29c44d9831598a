package testutil

import (
	"math/rand"

	"github.com/hupe1980/connectome/core"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// RandomPopulation generates a strictly ascending, duplicate-free sequence
// of n GIDs starting at start. gapProb is the probability that two
// consecutive members are separated by a gap of 2 to maxGap GIDs; the
// remaining pairs are contiguous.
func (r *RNG) RandomPopulation(start core.GID, n int, gapProb float64, maxGap int) []core.GID {
	if maxGap < 2 {
		maxGap = 2
	}

	ids := make([]core.GID, n)

	gid := start
	for i := range ids {
		ids[i] = gid
		gid++
		if r.rand.Float64() < gapProb {
			gid += core.GID(1 + r.rand.Intn(maxGap-1))
		}
	}

	return ids
}

// Runs counts the maximal contiguous runs in an ascending GID sequence.
// Used as the ground-truth oracle for range decomposition.
func Runs(ids []core.GID) int {
	if len(ids) == 0 {
		return 0
	}

	runs := 1
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[i-1]+1 {
			runs++
		}
	}

	return runs
}
