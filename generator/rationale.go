package generator

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"eurojackpot/models"
)

// BuildRationale explains a set of main numbers in one sentence for the given
// strategy. The result depends only on its arguments.
func BuildRationale(id models.StrategyID, numbers []int, stats *Stats) string {
	sorted := slices.Sorted(slices.Values(numbers))
	total := sum(sorted)
	odds := countOdds(sorted)
	lows := countLows(sorted)
	highs := len(sorted) - lows

	hotText := formatHits(intersect(sorted, head(stats.MainByFrequency, hotPoolSize)))
	overdueText := formatHits(intersect(sorted, head(stats.MainOverdue, overduePoolSize)))

	switch id {
	case models.StrategyBalancedFrequency:
		return fmt.Sprintf("Balanced mix with some frequently drawn mains%s, %d odd and %d even, and a sum of %d.",
			hotText, odds, len(sorted)-odds, total)
	case models.StrategyHistoricalShape:
		return fmt.Sprintf("Built to match a typical draw shape: sum %d, %d odd, and a low/high split of %d/%d.",
			total, odds, lows, highs)
	case models.StrategyMildHotBias:
		return fmt.Sprintf("Leans slightly toward historically frequent mains%s with random fillers for variety. Sum %d with %d odd.",
			hotText, total, odds)
	case models.StrategyOverdueLightCold:
		return fmt.Sprintf("Includes a few overdue mains%s plus some hot numbers%s to avoid extremes. Sum %d.",
			overdueText, hotText, total)
	default:
		return fmt.Sprintf("Uniform random with light constraints to avoid extreme all-low/all-high or all-odd/all-even patterns. Sum %d with %d odd.",
			total, odds)
	}
}

func intersect(values []int, set []int) []int {
	hits := make([]int, 0, len(values))
	for _, v := range values {
		if slices.Contains(set, v) {
			hits = append(hits, v)
		}
	}
	return hits
}

// formatHits renders " (a, b)" or nothing when there are no hits
func formatHits(hits []int) string {
	if len(hits) == 0 {
		return ""
	}

	parts := make([]string, 0, len(hits))
	for _, v := range hits {
		parts = append(parts, strconv.Itoa(v))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
