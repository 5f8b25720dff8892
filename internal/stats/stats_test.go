package stats

import (
	"testing"
	"time"

	"cinecal/internal/history"
)

// today is fixed mid-month so every boundary case below is deterministic.
var today = time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestComputeCountsUniquePairs(t *testing.T) {
	pairs := []history.Pair{
		{Date: "2025-06-20", Title: "Wicked"},
		{Date: "2025-06-20", Title: "Wicked"}, // same film, two venues: one pair
		{Date: "2025-06-21", Title: "Wicked"}, // same film, new date: new pair
	}

	c := Compute(pairs, today)
	if c.TotalUpcoming != 2 {
		t.Errorf("TotalUpcoming = %d, want 2", c.TotalUpcoming)
	}
	if c.MonthUpcoming != 2 {
		t.Errorf("MonthUpcoming = %d, want 2", c.MonthUpcoming)
	}
}

func TestComputeBoundaries(t *testing.T) {
	pairs := []history.Pair{
		{Date: "2025-06-15", Title: "Today"},              // upcoming, not past
		{Date: "2025-06-14", Title: "Yesterday"},          // trailing + YTD
		{Date: "2025-05-16", Title: "Trailing Edge"},      // exactly 30 days back
		{Date: "2025-05-15", Title: "Outside Trailing"},   // 31 days back, YTD only
		{Date: "2025-01-01", Title: "New Year"},           // YTD only
		{Date: "2024-12-31", Title: "Last Year"},          // past, outside every window
		{Date: "2025-06-30", Title: "Month End"},          // month + year upcoming
		{Date: "2025-07-01", Title: "Next Month"},         // year upcoming only
		{Date: "2025-12-31", Title: "Year End"},           // year upcoming only
		{Date: "2026-01-01", Title: "Next Year"},          // total upcoming only
		{Date: "not-a-date", Title: "Garbage"},            // ignored
	}

	c := Compute(pairs, today)

	if c.Trailing30Days != 2 { // Yesterday, Trailing Edge
		t.Errorf("Trailing30Days = %d, want 2", c.Trailing30Days)
	}
	if c.YearToDate != 4 { // Yesterday, Trailing Edge, Outside Trailing, New Year
		t.Errorf("YearToDate = %d, want 4", c.YearToDate)
	}
	if c.MonthUpcoming != 2 { // Today, Month End
		t.Errorf("MonthUpcoming = %d, want 2", c.MonthUpcoming)
	}
	if c.YearUpcoming != 4 { // Today, Month End, Next Month, Year End
		t.Errorf("YearUpcoming = %d, want 4", c.YearUpcoming)
	}
	if c.TotalUpcoming != 5 { // the four above plus Next Year
		t.Errorf("TotalUpcoming = %d, want 5", c.TotalUpcoming)
	}
}

func TestComputeEmpty(t *testing.T) {
	if c := Compute(nil, today); c != (Counters{}) {
		t.Errorf("empty input should yield zero counters, got %+v", c)
	}
}

func TestComputeTimeOfDayIgnored(t *testing.T) {
	// A today value with a time-of-day component must behave like midnight.
	noon := time.Date(2025, time.June, 15, 12, 30, 0, 0, time.UTC)
	pairs := []history.Pair{{Date: "2025-06-15", Title: "Today"}}

	c := Compute(pairs, noon)
	if c.TotalUpcoming != 1 || c.Trailing30Days != 0 {
		t.Errorf("today's release should count as upcoming, got %+v", c)
	}
}
