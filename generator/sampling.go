package generator

import "slices"

// pickRandomUnique draws up to count values from pool uniformly without
// replacement. The pool is not modified.
func pickRandomUnique(rng RandomSource, pool []int, count int) []int {
	if count <= 0 {
		return []int{}
	}

	available := slices.Clone(pool)
	selected := make([]int, 0, count)

	for len(selected) < count && len(available) > 0 {
		i := randomIndex(rng, len(available))
		selected = append(selected, available[i])
		available = slices.Delete(available, i, i+1)
	}

	return selected
}

// pickWeightedUnique draws up to count values from pool without replacement,
// each with probability proportional to its weight. A zero count weighs 1.
// If the remaining weight is not positive the rest is drawn uniformly.
func pickWeightedUnique(rng RandomSource, pool []int, weights FrequencyTable, count int) []int {
	if count <= 0 {
		return []int{}
	}

	available := slices.Clone(pool)
	selected := make([]int, 0, count)

	for len(selected) < count && len(available) > 0 {
		totalWeight := 0
		for _, v := range available {
			totalWeight += weightOf(weights, v)
		}

		if totalWeight <= 0 {
			return append(selected, pickRandomUnique(rng, available, count-len(selected))...)
		}

		roll := rng.Float64() * float64(totalWeight)
		picked := len(available) - 1
		for i, v := range available {
			roll -= float64(weightOf(weights, v))
			if roll <= 0 {
				picked = i
				break
			}
		}

		selected = append(selected, available[picked])
		available = slices.Delete(available, picked, picked+1)
	}

	return selected
}

func weightOf(weights FrequencyTable, v int) int {
	if w := weights[v]; w != 0 {
		return w
	}
	return 1
}

// without returns the values of pool that are not in any of the excluded sets
func without(pool []int, excluded ...[]int) []int {
	result := make([]int, 0, len(pool))
	for _, v := range pool {
		skip := false
		for _, set := range excluded {
			if slices.Contains(set, v) {
				skip = true
				break
			}
		}
		if !skip {
			result = append(result, v)
		}
	}
	return result
}

// head returns at most the first n values
func head(values []int, n int) []int {
	return values[:min(n, len(values))]
}

// tail returns at most the last n values
func tail(values []int, n int) []int {
	return values[max(0, len(values)-n):]
}
