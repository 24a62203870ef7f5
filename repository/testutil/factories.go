package testutil

import (
	"time"

	"eurojackpot/models"
)

// CreateTestDraw builds a valid draw for the given date
func CreateTestDraw(date time.Time, numbers []int, starNumbers []int) models.Draw {
	return models.Draw{
		Date:        date.Format("2006-01-02"),
		Numbers:     numbers,
		StarNumbers: starNumbers,
	}
}

// CreateTestDraws builds count consecutive Friday draws starting at start,
// with numbers that stay within the game bounds.
func CreateTestDraws(start time.Time, count int) []models.Draw {
	draws := make([]models.Draw, 0, count)
	for i := 0; i < count; i++ {
		base := i % 45
		draws = append(draws, CreateTestDraw(
			start.AddDate(0, 0, 7*i),
			[]int{base + 1, base + 2, base + 3, base + 4, base + 5},
			[]int{i%11 + 1, i%11 + 2},
		))
	}
	return draws
}
