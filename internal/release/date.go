package release

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date label grammars found on the coming-soon pages.
//
// Primary:     "Expected: 10 October 2025"
// Alternative: "Expected at WTW Cinemas from the 10th October" (no year)
var (
	datePattern    = regexp.MustCompile(`Expected:\s*(\d{1,2})\s+([A-Za-z]+)\s+(\d{4})`)
	altDatePattern = regexp.MustCompile(`Expected at .+? from the (\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]+)`)
)

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseDate extracts a calendar date from a listing date label.
// Returns the zero time if no grammar matches or the date is invalid;
// callers log and skip the entry rather than fail the run.
//
// Abbreviated month names and numeric dates are not recognised. That matches
// the labels the site actually publishes and is a documented limitation.
func ParseDate(text string) time.Time {
	return ParseDateAt(text, time.Now())
}

// ParseDateAt is ParseDate with an injectable "today" for the year-inference
// rule of the alternative grammar: a yearless label resolving to a date
// before today is assumed to mean next year.
func ParseDateAt(text string, today time.Time) time.Time {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var day, year int
	var monthName string
	explicitYear := false

	if m := datePattern.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[1])
		monthName = m[2]
		year, _ = strconv.Atoi(m[3])
		explicitYear = true
	} else if m := altDatePattern.FindStringSubmatch(text); m != nil {
		day, _ = strconv.Atoi(m[1])
		monthName = m[2]
		year = today.Year()
	} else {
		return time.Time{}
	}

	month, ok := monthsByName[strings.ToLower(monthName)]
	if !ok {
		return time.Time{}
	}

	parsed := makeDate(year, month, day)
	if parsed.IsZero() {
		return time.Time{}
	}
	if parsed.Before(today) && !explicitYear {
		parsed = makeDate(year+1, month, day)
	}
	return parsed
}

// makeDate builds a date and rejects combinations that time.Date would
// silently normalise, e.g. 31 September becoming 1 October.
func makeDate(year int, month time.Month, day int) time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}
	}
	return t
}
