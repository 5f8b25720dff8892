package ics

import (
	"crypto/sha1"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"cinecal/internal/release"
)

// Options carries the notification configuration for event generation.
type Options struct {
	NotificationsEnabled bool
	NotificationTime     string // "HH:MM" default for all alarms
	Alarms               []Alarm
}

// Event renders a release as a single all-day VEVENT. The end date is
// exclusive, i.e. the day after the release, per the all-day convention.
func Event(rec release.Release, opts Options) string {
	end := rec.Date.AddDate(0, 0, 1)

	var b strings.Builder
	b.WriteString("BEGIN:VEVENT\r\n")
	b.WriteString(fmt.Sprintf("UID:%s@cinecal\r\n", eventUID(rec)))
	b.WriteString("DTSTART;VALUE=DATE:" + rec.Date.Format("20060102") + "\r\n")
	b.WriteString("DTEND;VALUE=DATE:" + end.Format("20060102") + "\r\n")

	summary := fmt.Sprintf("%s @ %s", rec.Title, rec.VenueName)
	b.WriteString(EscapeAndFold(summary, "SUMMARY:") + "\r\n")
	b.WriteString(EscapeAndFold(description(rec), "DESCRIPTION:") + "\r\n")
	b.WriteString(EscapeAndFold(rec.VenueName, "LOCATION:") + "\r\n")

	if rec.DetailURL != "" {
		b.WriteString("URL:" + rec.DetailURL + "\r\n")
	}

	if opts.NotificationsEnabled {
		for _, alarm := range opts.Alarms {
			b.WriteString(generateAlarm(alarm, rec.Date, opts.NotificationTime))
		}
	}

	b.WriteString("END:VEVENT\r\n")
	return b.String()
}

// Calendar wraps rendered events in a VCALENDAR document with the standard
// header fields.
func Calendar(name, desc string, events []string) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//cinecal//cinecal//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")
	b.WriteString(EscapeAndFold(name, "X-WR-CALNAME:") + "\r\n")
	b.WriteString(EscapeAndFold(desc, "X-WR-CALDESC:") + "\r\n")
	for _, event := range events {
		b.WriteString(event)
	}
	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

// description composes the event body: title with runtime, rating stars and
// genres, overview or synopsis, cast, then the venue and booking lines.
func description(rec release.Release) string {
	d := rec.Details
	var parts []string

	if runtime := FormatRuntime(d.Runtime); runtime != "" {
		parts = append(parts, fmt.Sprintf("%s (%s)", rec.Title, runtime))
	} else {
		parts = append(parts, rec.Title)
	}

	if d.VoteAverage != nil {
		parts = append(parts, StarRating(*d.VoteAverage))
		if len(d.Genres) > 0 {
			parts = append(parts, strings.Join(d.Genres, ", "))
		}
	}

	if overview := firstNonEmpty(d.Overview, d.Synopsis); overview != "" {
		parts = append(parts, "\n"+overview)
	}

	if cast := FormatCast(d.Cast); cast != "" {
		parts = append(parts, "Starring: "+cast)
	}

	parts = append(parts, "\n🎬 Film release at "+rec.VenueName)
	if rec.DetailURL != "" {
		parts = append(parts, "🎟️ Click the URL to book tickets")
	}

	return strings.Join(parts, "\n")
}

// FormatRuntime turns a scraped "<n> min" value into a display string:
// under an hour stays "<n> min", otherwise "<h>h <m>min" with the minutes
// part omitted when zero.
func FormatRuntime(runtime string) string {
	fields := strings.Fields(runtime)
	if len(fields) == 0 {
		return ""
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil || minutes <= 0 {
		return ""
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}

// StarRating renders a 0-10 vote average as five star symbols: the rating
// is halved, rounded and clamped to [0, 5] filled stars.
func StarRating(rating float64) string {
	filled := int(math.Round(rating * 0.5))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

var castParenthetical = regexp.MustCompile(`\s*\([^)]*\)`)

// FormatCast builds the "Starring" value from raw cast text: up to six
// distinct names, with character-name parentheticals stripped when the raw
// text exhibits the credited shape (a comma or a parenthesis present).
func FormatCast(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.ContainsAny(raw, ",(") {
		return raw
	}

	cleaned := castParenthetical.ReplaceAllString(raw, "")
	var names []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(cleaned, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
		if len(names) == 6 {
			break
		}
	}
	return strings.Join(names, ", ")
}

// eventUID derives a deterministic identifier from the release identity.
func eventUID(rec release.Release) string {
	h := sha1.New()
	id := rec.Identity()
	fmt.Fprintf(h, "%s|%s|%s|%s", id.Date, id.Title, id.VenueName, id.DetailURL)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
