package generator

import (
	"slices"

	"eurojackpot/models"
)

// pickStarNumbers picks two unique star numbers in ascending order
func pickStarNumbers(rng RandomSource, stats *Stats, id models.StrategyID) []int {
	hot := head(stats.StarByFrequency, starHotPoolSize)

	var stars []int
	switch id {
	case models.StrategyBalancedFrequency:
		mid := stats.StarByFrequency[min(starMidPoolStart, len(stats.StarByFrequency)):min(starMidPoolEnd, len(stats.StarByFrequency))]
		stars = pickStarPair(rng, stats, pickWeightedUnique(rng, hot, stats.StarFrequency, 1), mid)
	case models.StrategyMildHotBias:
		rest := stats.StarByFrequency[min(starHotPoolSize, len(stats.StarByFrequency)):]
		stars = pickStarPair(rng, stats, pickWeightedUnique(rng, hot, stats.StarFrequency, 1), rest)
	case models.StrategyOverdueLightCold:
		overdue := head(stats.StarOverdue, starOverduePool)
		stars = pickStarPair(rng, stats, pickRandomUnique(rng, overdue, 1), hot)
	default:
		stars = pickWeightedUnique(rng, stats.AllStarNumbers, stats.StarFrequency, StarPickCount)
	}

	slices.Sort(stars)
	return stars
}

// pickStarPair completes a first pick with a weighted pick from secondary,
// excluding the first. An empty secondary pool falls back to the whole star
// domain.
func pickStarPair(rng RandomSource, stats *Stats, first []int, secondary []int) []int {
	pool := without(secondary, first)
	if len(pool) == 0 {
		pool = without(stats.AllStarNumbers, first)
	}
	return append(first, pickWeightedUnique(rng, pool, stats.StarFrequency, 1)...)
}
