package generator

import "eurojackpot/models"

const (
	MainPickCount = 5
	StarPickCount = 2

	lowHighBoundary  = 25
	maxShapeAttempts = 600

	hotPoolSize      = 15
	coldPoolSize     = 10
	overduePoolSize  = 15
	overdueHotPool   = 12
	starHotPoolSize  = 6
	starOverduePool  = 4
	starMidPoolStart = 4
	starMidPoolEnd   = 10
)

// shapeConstraints bounds the overall shape of a main-number candidate
type shapeConstraints struct {
	minSum, maxSum  int
	minOdd, maxOdd  int
	minLow, minHigh int
}

func historicalShapeConstraints(averageSum float64) shapeConstraints {
	return shapeConstraints{
		minSum:  max(120, floorInt(averageSum-15)),
		maxSum:  min(150, ceilInt(averageSum+15)),
		minOdd:  2,
		maxOdd:  3,
		minLow:  2,
		minHigh: 2,
	}
}

func looseShapeConstraints(averageSum float64) shapeConstraints {
	return shapeConstraints{
		minSum:  max(110, floorInt(averageSum-30)),
		maxSum:  min(170, ceilInt(averageSum+30)),
		minOdd:  1,
		maxOdd:  4,
		minLow:  1,
		minHigh: 1,
	}
}

func (c shapeConstraints) allows(numbers []int) bool {
	total := sum(numbers)
	odds := countOdds(numbers)
	lows := countLows(numbers)
	highs := len(numbers) - lows

	return total >= c.minSum && total <= c.maxSum &&
		odds >= c.minOdd && odds <= c.maxOdd &&
		lows >= c.minLow && highs >= c.minHigh
}

// attemptWithConstraints returns the first generated candidate accepted by
// valid, or false once attempts are used up.
func attemptWithConstraints(attempts int, generate func() []int, valid func([]int) bool) ([]int, bool) {
	for i := 0; i < attempts; i++ {
		candidate := generate()
		if valid(candidate) {
			return candidate, true
		}
	}
	return nil, false
}

// pickMainNumbers dispatches to the picker for the strategy and guarantees a
// full set of unique main numbers.
func pickMainNumbers(rng RandomSource, stats *Stats, id models.StrategyID) []int {
	var numbers []int

	switch id {
	case models.StrategyBalancedFrequency:
		numbers = pickBalancedFrequency(rng, stats)
	case models.StrategyHistoricalShape:
		numbers = pickConstrainedShape(rng, stats, historicalShapeConstraints(stats.AverageMainSum))
	case models.StrategyMildHotBias:
		numbers = pickMildHotBias(rng, stats)
	case models.StrategyOverdueLightCold:
		numbers = pickOverdueLightCold(rng, stats)
	default:
		numbers = pickConstrainedShape(rng, stats, looseShapeConstraints(stats.AverageMainSum))
	}

	if missing := MainPickCount - len(numbers); missing > 0 {
		numbers = append(numbers, pickRandomUnique(rng, without(stats.AllMainNumbers, numbers), missing)...)
	}
	return numbers
}

// pickBalancedFrequency mixes two or three numbers that were hot in recent
// draws with mid-frequency numbers, avoiding the coldest ones.
func pickBalancedFrequency(rng RandomSource, stats *Stats) []int {
	hot := head(stats.RecentMainByFrequency, hotPoolSize)
	cold := tail(stats.MainByFrequency, coldPoolSize)
	mid := without(stats.MainByFrequency, hot, cold)

	hotCount := randomInt(rng, 2, 3)
	hotPicks := pickWeightedUnique(rng, hot, stats.MainFrequency, hotCount)

	need := MainPickCount - hotCount
	pool := without(mid, hotPicks)
	if len(pool) < need {
		pool = without(stats.MainByFrequency, hotPicks, cold)
	}

	return append(hotPicks, pickRandomUnique(rng, pool, need)...)
}

// pickConstrainedShape reject-samples uniform candidates until one fits the
// constraints, falling back to an unconstrained draw.
func pickConstrainedShape(rng RandomSource, stats *Stats, constraints shapeConstraints) []int {
	candidate, ok := attemptWithConstraints(
		maxShapeAttempts,
		func() []int { return pickRandomUnique(rng, stats.AllMainNumbers, MainPickCount) },
		constraints.allows,
	)
	if ok {
		return candidate
	}
	return pickRandomUnique(rng, stats.AllMainNumbers, MainPickCount)
}

// pickMildHotBias takes three or four all-time hot numbers and fills the rest
// at random.
func pickMildHotBias(rng RandomSource, stats *Stats) []int {
	hot := head(stats.MainByFrequency, hotPoolSize)
	hotCount := randomInt(rng, 3, 4)
	hotPicks := pickWeightedUnique(rng, hot, stats.MainFrequency, hotCount)

	rest := pickRandomUnique(rng, without(stats.AllMainNumbers, hotPicks), MainPickCount-hotCount)
	return append(hotPicks, rest...)
}

// pickOverdueLightCold takes three or four long-absent numbers and tops up
// with frequent ones.
func pickOverdueLightCold(rng RandomSource, stats *Stats) []int {
	overdue := head(stats.MainOverdue, overduePoolSize)
	hot := head(stats.MainByFrequency, overdueHotPool)

	overdueCount := randomInt(rng, 3, 4)
	overduePicks := pickRandomUnique(rng, overdue, overdueCount)

	pool := without(hot, overduePicks)
	if len(pool) == 0 {
		pool = without(stats.AllMainNumbers, overduePicks)
	}
	hotPicks := pickWeightedUnique(rng, pool, stats.MainFrequency, MainPickCount-overdueCount)

	return append(overduePicks, hotPicks...)
}
