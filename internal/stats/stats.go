package stats

import (
	"time"

	"cinecal/internal/history"
)

// Counters summarises release activity around today. The past-facing
// counters (Trailing30Days, YearToDate) and the upcoming counters are all
// computed over the union of the persisted history and the current run's
// pairs; around the date boundary this can double-count relative to a
// run-frequency-dependent baseline, which is the long-observed behaviour
// and is kept as is.
type Counters struct {
	Trailing30Days int `json:"trailing_30_days"`
	YearToDate     int `json:"year_to_date"`
	MonthUpcoming  int `json:"month_upcoming"`
	YearUpcoming   int `json:"year_upcoming"`
	TotalUpcoming  int `json:"total_upcoming"`
}

// Compute derives the five counters from a set of unique (date, title)
// pairs. Dates that fail to parse are ignored.
func Compute(pairs []history.Pair, today time.Time) Counters {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	yearStart := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)
	trailingStart := today.AddDate(0, 0, -30)

	seen := make(map[history.Pair]bool)
	var c Counters

	for _, pair := range pairs {
		if seen[pair] {
			continue
		}
		seen[pair] = true

		date, err := time.Parse("2006-01-02", pair.Date)
		if err != nil {
			continue
		}

		if !date.Before(trailingStart) && date.Before(today) {
			c.Trailing30Days++
		}
		if !date.Before(yearStart) && date.Before(today) {
			c.YearToDate++
		}
		if date.Before(today) {
			continue
		}

		c.TotalUpcoming++
		if !date.Before(monthStart) && date.Before(monthEnd) {
			c.MonthUpcoming++
		}
		if !date.Before(yearStart) && date.Before(yearEnd) {
			c.YearUpcoming++
		}
	}

	return c
}
