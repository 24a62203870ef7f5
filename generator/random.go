package generator

import (
	"math"
	"math/rand/v2"
)

// RandomSource yields uniformly distributed floats in [0, 1)
type RandomSource interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// DefaultSource returns the process-wide random source. It is safe for
// concurrent use.
func DefaultSource() RandomSource {
	return globalSource{}
}

// NewSeededSource returns a deterministic source for reproducible tickets.
// The returned source must not be shared between goroutines.
func NewSeededSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomIndex returns an index in [0, n)
func randomIndex(rng RandomSource, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// randomInt returns an integer in [min, max]
func randomInt(rng RandomSource, min, max int) int {
	return min + randomIndex(rng, max-min+1)
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}

func ceilInt(v float64) int {
	return int(math.Ceil(v))
}
