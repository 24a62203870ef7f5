package history

import "time"

const dateLayout = "2006-01-02"

// DrawDates returns every Tuesday and Friday between start and end inclusive,
// as UTC midnights. Times of day are ignored.
func DrawDates(start, end time.Time) []time.Time {
	from := truncateDay(start)
	to := truncateDay(end)

	var dates []time.Time
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if IsDrawDay(day) {
			dates = append(dates, day)
		}
	}
	return dates
}

// IsDrawDay reports whether draws take place on the weekday of t
func IsDrawDay(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Tuesday || weekday == time.Friday
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
