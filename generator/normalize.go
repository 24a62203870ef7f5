package generator

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"eurojackpot/models"
)

// Game bounds
const (
	MainMin = 1
	MainMax = 50
	StarMin = 1
	StarMax = 12
)

// Normalize sanitizes raw draws into validated integer lists. Draws are never
// dropped; malformed or out-of-range values and repeats are filtered out.
func Normalize(raw []models.RawDraw) []models.Draw {
	draws := make([]models.Draw, 0, len(raw))
	for _, draw := range raw {
		draws = append(draws, models.Draw{
			Date:        draw.Date,
			Numbers:     normalizeValues(draw.Numbers, MainMax),
			StarNumbers: normalizeValues(draw.StarNumbers, StarMax),
		})
	}
	return draws
}

// normalizeValues coerces, bounds-checks and deduplicates values, keeping the
// first occurrence of each.
func normalizeValues(values []models.RawNumber, maxValue int) []int {
	seen := make(map[int]bool, len(values))
	result := make([]int, 0, len(values))

	for _, value := range values {
		n, ok := coerce(value)
		if !ok || n < 1 || n > maxValue || seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}

	return result
}

// coerce converts a raw value to an integer. Strings are read like a decimal
// parseInt: leading digits count, the rest is ignored. Numeric values must be
// finite whole numbers.
func coerce(value models.RawNumber) (int, bool) {
	if value.IsString() {
		return parseLeadingInt(value.Text())
	}

	f, err := strconv.ParseFloat(value.Text(), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	digits := 0
	n := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		// Anything this large is out of range anyway; stop growing.
		if n < math.MaxInt32/10 {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	if negative {
		n = -n
	}
	return n, true
}
