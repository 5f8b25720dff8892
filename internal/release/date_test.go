package release

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDatePrimaryFormat(t *testing.T) {
	today := date(2025, time.June, 15)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "full date",
			text: "Expected: 10 October 2025",
			want: date(2025, time.October, 10),
		},
		{
			name: "single digit day",
			text: "Expected: 3 January 2026",
			want: date(2026, time.January, 3),
		},
		{
			name: "embedded in longer label",
			text: "Showing soon! Expected: 25 December 2025 at all venues",
			want: date(2025, time.December, 25),
		},
		{
			name: "explicit year in the past is kept",
			text: "Expected: 1 February 2025",
			want: date(2025, time.February, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDateAt(tt.text, today)
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateAt(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDateAlternativeFormat(t *testing.T) {
	today := date(2025, time.June, 15)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "future date keeps current year",
			text: "Expected at WTW Cinemas from the 10th October",
			want: date(2025, time.October, 10),
		},
		{
			name: "past date rolls forward a year",
			text: "Expected at WTW Cinemas from the 3rd January",
			want: date(2026, time.January, 3),
		},
		{
			name: "today does not roll forward",
			text: "Expected at WTW Cinemas from the 15th June",
			want: date(2025, time.June, 15),
		},
		{
			name: "no ordinal suffix",
			text: "Expected at WTW Cinemas from the 1 August",
			want: date(2025, time.August, 1),
		},
		{
			name: "different venue wording",
			text: "Expected at the Regal from the 2nd July",
			want: date(2025, time.July, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDateAt(tt.text, today)
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateAt(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	today := date(2025, time.June, 15)

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no grammar", "Coming soon to a cinema near you"},
		{"unknown month", "Expected: 10 Octember 2025"},
		{"abbreviated month not supported", "Expected: 10 Oct 2025"},
		{"day 31 in a 30-day month", "Expected: 31 September 2025"},
		{"day 30 in February", "Expected at WTW Cinemas from the 30th February"},
		{"day zero padded out of range", "Expected: 32 March 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDateAt(tt.text, today); !got.IsZero() {
				t.Errorf("ParseDateAt(%q) = %v, want zero time", tt.text, got)
			}
		})
	}
}
