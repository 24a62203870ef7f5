package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickRandomUnique(t *testing.T) {
	t.Parallel()

	rng := NewSeededSource(1)
	pool := numberRange(1, 10)

	for i := 0; i < 200; i++ {
		picks := pickRandomUnique(rng, pool, 4)
		assert.Len(t, picks, 4)
		assertUniqueWithin(t, picks, 1, 10)
	}
	assert.Equal(t, numberRange(1, 10), pool, "pool must not be modified")
}

func TestPickRandomUnique_Bounds(t *testing.T) {
	t.Parallel()

	rng := NewSeededSource(2)

	assert.Empty(t, pickRandomUnique(rng, []int{1, 2, 3}, 0))
	assert.Empty(t, pickRandomUnique(rng, []int{1, 2, 3}, -1))
	assert.ElementsMatch(t, []int{1, 2, 3}, pickRandomUnique(rng, []int{1, 2, 3}, 10))
	assert.Empty(t, pickRandomUnique(rng, nil, 2))
}

func TestPickWeightedUnique_FavoursHeavyValues(t *testing.T) {
	t.Parallel()

	weights := FrequencyTable{1: 1, 2: 1, 3: 98}

	// roll = 0.5 * 100 = 50: passes 1 and 2, lands on 3
	picks := pickWeightedUnique(&sequenceSource{values: []float64{0.5}}, []int{1, 2, 3}, weights, 1)
	assert.Equal(t, []int{3}, picks)

	// roll = 0 lands on the first value
	picks = pickWeightedUnique(&sequenceSource{values: []float64{0}}, []int{1, 2, 3}, weights, 1)
	assert.Equal(t, []int{1}, picks)
}

func TestPickWeightedUnique_ZeroCountsWeighOne(t *testing.T) {
	t.Parallel()

	weights := FrequencyTable{1: 0, 2: 0}

	// total weight 2, roll 1.2: first value leaves 0.2, second lands
	picks := pickWeightedUnique(&sequenceSource{values: []float64{0.6}}, []int{1, 2}, weights, 1)
	assert.Equal(t, []int{2}, picks)
}

func TestPickWeightedUnique_NonPositiveWeightFallsBackToUniform(t *testing.T) {
	t.Parallel()

	weights := FrequencyTable{1: -5, 2: -5, 3: -5}

	picks := pickWeightedUnique(NewSeededSource(9), []int{1, 2, 3}, weights, 2)

	assert.Len(t, picks, 2)
	assertUniqueWithin(t, picks, 1, 3)
}

func TestPickWeightedUnique_ExhaustsPool(t *testing.T) {
	t.Parallel()

	picks := pickWeightedUnique(NewSeededSource(4), []int{4, 5}, FrequencyTable{4: 3, 5: 7}, 5)

	assert.ElementsMatch(t, []int{4, 5}, picks)
}

func TestWithoutHeadTail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 4}, without([]int{1, 2, 3, 4}, []int{2}, []int{3, 9}))
	assert.Equal(t, []int{1, 2}, head([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, head([]int{1, 2, 3}, 10))
	assert.Equal(t, []int{2, 3}, tail([]int{1, 2, 3}, 2))
	assert.Equal(t, []int{1, 2, 3}, tail([]int{1, 2, 3}, 10))
}

func assertUniqueWithin(t *testing.T, values []int, lo, hi int) {
	t.Helper()

	seen := make(map[int]bool, len(values))
	for _, v := range values {
		assert.GreaterOrEqual(t, v, lo)
		assert.LessOrEqual(t, v, hi)
		assert.False(t, seen[v], "duplicate value %d in %v", v, values)
		seen[v] = true
	}
}
