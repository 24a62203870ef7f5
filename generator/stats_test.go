package generator

import (
	"testing"

	"eurojackpot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStats_Empty(t *testing.T) {
	t.Parallel()

	stats := BuildStats(nil)

	assert.Equal(t, 0, stats.TotalDraws)
	assert.Equal(t, DefaultAverageMainSum, stats.AverageMainSum)
	assert.Len(t, stats.MainFrequency, MainMax)
	assert.Len(t, stats.StarFrequency, StarMax)
	assert.Equal(t, 0, stats.MainFrequency.Total())
	// All ties: ascending numbers
	assert.Equal(t, numberRange(MainMin, MainMax), stats.MainByFrequency)
	assert.Equal(t, numberRange(StarMin, StarMax), stats.StarOverdue)
}

func TestBuildStats_FrequencyTotals(t *testing.T) {
	t.Parallel()

	draws := Normalize(sampleDraws(250, 11))
	stats := BuildStats(draws)

	mainAppearances, starAppearances := 0, 0
	for _, d := range draws {
		mainAppearances += len(d.Numbers)
		starAppearances += len(d.StarNumbers)
	}

	assert.Equal(t, mainAppearances, stats.MainFrequency.Total())
	assert.Equal(t, starAppearances, stats.StarFrequency.Total())
	assert.Equal(t, RecentWindow*MainPickCount, stats.RecentMainFrequency.Total())
}

func TestBuildStats_FrequencyOrdering(t *testing.T) {
	t.Parallel()

	stats := BuildStats([]models.Draw{
		{Numbers: []int{10, 20, 30, 40, 50}, StarNumbers: []int{3, 4}},
		{Numbers: []int{10, 20, 31, 41, 49}, StarNumbers: []int{4, 5}},
		{Numbers: []int{10, 2, 32, 42, 48}, StarNumbers: []int{4, 1}},
	})

	assert.Equal(t, []int{10, 20}, stats.MainByFrequency[:2])
	// Single appearances ordered ascending
	assert.Equal(t, []int{2, 30, 31, 32}, stats.MainByFrequency[2:6])
	assert.Equal(t, []int{4, 1, 3, 5}, stats.StarByFrequency[:4])

	for i := 1; i < len(stats.MainByFrequency); i++ {
		prev, cur := stats.MainByFrequency[i-1], stats.MainByFrequency[i]
		assert.GreaterOrEqual(t, stats.MainFrequency[prev], stats.MainFrequency[cur])
	}
}

func TestBuildStats_RecentWindow(t *testing.T) {
	t.Parallel()

	draws := make([]models.Draw, 0, 150)
	for i := 0; i < 50; i++ {
		draws = append(draws, drawOf(1, 2, 3, 4, 5))
	}
	for i := 0; i < 100; i++ {
		draws = append(draws, drawOf(46, 47, 48, 49, 50))
	}

	stats := BuildStats(draws)

	assert.Equal(t, 0, stats.RecentMainFrequency[1])
	assert.Equal(t, 100, stats.RecentMainFrequency[50])
	assert.Equal(t, []int{46, 47, 48, 49, 50}, stats.RecentMainByFrequency[:5])
	assert.Equal(t, 50, stats.MainFrequency[1])
}

func TestBuildStats_Overdue(t *testing.T) {
	t.Parallel()

	draws := []models.Draw{
		drawOf(1, 2, 3, 4, 5),
		drawOf(6, 7, 8, 9, 10),
		drawOf(1, 11, 12, 13, 14),
	}

	ages := overdueAges(draws, MainMin, MainMax, mainNumbers)
	assert.Equal(t, 0, ages[1])
	assert.Equal(t, 2, ages[2])
	assert.Equal(t, 1, ages[6])
	assert.Equal(t, len(draws), ages[15], "never seen numbers are maximally overdue")

	stats := BuildStats(draws)
	require.Len(t, stats.MainOverdue, MainMax)
	assert.Equal(t, 15, stats.MainOverdue[0])
	assert.Equal(t, []int{2, 3, 4, 5}, stats.MainOverdue[36:40])
	assert.Equal(t, []int{1, 11, 12, 13, 14}, stats.MainOverdue[45:])
}

func TestBuildStats_AverageMainSum(t *testing.T) {
	t.Parallel()

	stats := BuildStats([]models.Draw{
		drawOf(1, 2, 3, 4, 5),
		drawOf(46, 47, 48, 49, 50),
	})

	assert.InDelta(t, 127.5, stats.AverageMainSum, 1e-9)
}
