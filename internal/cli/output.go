package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"cinecal/internal/pipeline"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the run summary in the specified format.
func WriteOutput(w io.Writer, result *pipeline.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *pipeline.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *pipeline.Result) error {
	for _, venue := range result.Venues {
		if venue.Error != "" {
			fmt.Fprintf(w, "✗ %s: %s\n", venue.Name, venue.Error)
			continue
		}
		fmt.Fprintf(w, "✓ %s: found %d release(s)\n", venue.Name, venue.Found)
	}

	if len(result.Releases) == 0 {
		fmt.Fprintln(w, "\nNo releases found across any venue")
		return nil
	}

	// Releases arrive sorted by date; print one group per date.
	lastDate := ""
	for _, rec := range result.Releases {
		date := rec.Date.Format("02 January 2006")
		if date != lastDate {
			fmt.Fprintf(w, "\n%s:\n", date)
			lastDate = date
		}
		fmt.Fprintf(w, "  • %s @ %s\n", rec.Title, rec.VenueName)
	}

	fmt.Fprintf(w, "\nUpcoming: %d total, %d this month, %d this year\n",
		result.Counters.TotalUpcoming, result.Counters.MonthUpcoming, result.Counters.YearUpcoming)
	fmt.Fprintf(w, "Released: %d in the last 30 days, %d so far this year\n",
		result.Counters.Trailing30Days, result.Counters.YearToDate)

	for _, path := range result.CalendarFiles {
		fmt.Fprintf(w, "✓ Created %s\n", path)
	}
	return nil
}
