package generator

import (
	"slices"

	"eurojackpot/models"
)

const (
	// RecentWindow is the number of latest draws used for recent frequency
	RecentWindow = 100

	// DefaultAverageMainSum is used when there is no history: the midpoint of
	// the plausible range of five-number sums.
	DefaultAverageMainSum = 135.0
)

// FrequencyTable maps every number in a domain to its number of appearances
type FrequencyTable map[int]int

// Total returns the sum of all counts
func (f FrequencyTable) Total() int {
	total := 0
	for _, count := range f {
		total += count
	}
	return total
}

// Stats is the statistics snapshot a ticket is generated from. It is built
// fresh for every ticket and never modified afterwards.
type Stats struct {
	TotalDraws int

	AllMainNumbers []int
	AllStarNumbers []int

	MainFrequency       FrequencyTable
	StarFrequency       FrequencyTable
	RecentMainFrequency FrequencyTable

	// Orderings by descending frequency, ties by ascending number
	MainByFrequency       []int
	StarByFrequency       []int
	RecentMainByFrequency []int

	// Orderings by draws since last seen, most overdue first
	MainOverdue []int
	StarOverdue []int

	AverageMainSum float64
}

func mainNumbers(d models.Draw) []int { return d.Numbers }
func starNumbers(d models.Draw) []int { return d.StarNumbers }

// BuildStats computes frequency and overdue statistics from normalized draws
func BuildStats(draws []models.Draw) *Stats {
	recent := draws[max(0, len(draws)-RecentWindow):]

	mainFrequency := buildFrequency(draws, MainMin, MainMax, mainNumbers)
	starFrequency := buildFrequency(draws, StarMin, StarMax, starNumbers)
	recentMainFrequency := buildFrequency(recent, MainMin, MainMax, mainNumbers)

	return &Stats{
		TotalDraws:            len(draws),
		AllMainNumbers:        numberRange(MainMin, MainMax),
		AllStarNumbers:        numberRange(StarMin, StarMax),
		MainFrequency:         mainFrequency,
		StarFrequency:         starFrequency,
		RecentMainFrequency:   recentMainFrequency,
		MainByFrequency:       sortByFrequency(mainFrequency, MainMin, MainMax),
		StarByFrequency:       sortByFrequency(starFrequency, StarMin, StarMax),
		RecentMainByFrequency: sortByFrequency(recentMainFrequency, MainMin, MainMax),
		MainOverdue:           sortByOverdue(draws, MainMin, MainMax, mainNumbers),
		StarOverdue:           sortByOverdue(draws, StarMin, StarMax, starNumbers),
		AverageMainSum:        averageMainSum(draws),
	}
}

func numberRange(min, max int) []int {
	values := make([]int, 0, max-min+1)
	for v := min; v <= max; v++ {
		values = append(values, v)
	}
	return values
}

func buildFrequency(draws []models.Draw, min, max int, key func(models.Draw) []int) FrequencyTable {
	frequency := make(FrequencyTable, max-min+1)
	for v := min; v <= max; v++ {
		frequency[v] = 0
	}

	for _, draw := range draws {
		for _, v := range key(draw) {
			if v >= min && v <= max {
				frequency[v]++
			}
		}
	}

	return frequency
}

func sortByFrequency(frequency FrequencyTable, min, max int) []int {
	values := numberRange(min, max)
	slices.SortStableFunc(values, func(a, b int) int {
		if frequency[a] != frequency[b] {
			return frequency[b] - frequency[a]
		}
		return a - b
	})
	return values
}

// overdueAges returns the number of draws since each value was last seen.
// Values never seen get len(draws).
func overdueAges(draws []models.Draw, min, max int, key func(models.Draw) []int) map[int]int {
	lastSeen := make(map[int]int, max-min+1)
	for v := min; v <= max; v++ {
		lastSeen[v] = -1
	}

	for i, draw := range draws {
		for _, v := range key(draw) {
			if v >= min && v <= max {
				lastSeen[v] = i
			}
		}
	}

	ages := make(map[int]int, len(lastSeen))
	for v, idx := range lastSeen {
		ages[v] = len(draws) - 1 - idx
	}
	return ages
}

func sortByOverdue(draws []models.Draw, min, max int, key func(models.Draw) []int) []int {
	ages := overdueAges(draws, min, max, key)
	values := numberRange(min, max)
	slices.SortFunc(values, func(a, b int) int {
		if ages[a] != ages[b] {
			return ages[b] - ages[a]
		}
		return a - b
	})
	return values
}

func averageMainSum(draws []models.Draw) float64 {
	if len(draws) == 0 {
		return DefaultAverageMainSum
	}

	total := 0
	for _, draw := range draws {
		total += sum(draw.Numbers)
	}
	return float64(total) / float64(len(draws))
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func countOdds(values []int) int {
	odds := 0
	for _, v := range values {
		if v%2 != 0 {
			odds++
		}
	}
	return odds
}

func countLows(values []int) int {
	lows := 0
	for _, v := range values {
		if v <= lowHighBoundary {
			lows++
		}
	}
	return lows
}
