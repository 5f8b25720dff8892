package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultNotificationTime is the time of day used for alarms that do not
// carry their own.
const DefaultNotificationTime = "09:00"

// Alarm describes one configured reminder. DaysBefore resolves to an
// absolute trigger at the alarm's time of day; HoursBefore is the legacy
// relative form, signed so that a negative offset fires after midnight on
// the event day.
type Alarm struct {
	DaysBefore  *int
	HoursBefore *int
	Description string
	Time        string // "HH:MM", empty means the global default applies
}

// generateAlarm renders one VALARM component for an event date.
func generateAlarm(alarm Alarm, date time.Time, defaultTime string) string {
	var triggerLine string

	switch {
	case alarm.DaysBefore != nil:
		hours, minutes := parseClock(alarm.Time, defaultTime)
		trigger := time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, time.UTC).
			AddDate(0, 0, -*alarm.DaysBefore)
		triggerLine = "TRIGGER;VALUE=DATE-TIME:" + trigger.Format("20060102T150405")
	case alarm.HoursBefore != nil:
		offset := *alarm.HoursBefore
		if offset < 0 {
			triggerLine = fmt.Sprintf("TRIGGER:PT%dH", -offset)
		} else {
			triggerLine = fmt.Sprintf("TRIGGER:-PT%dH", offset)
		}
	default:
		// Day before at the default time.
		hours, minutes := parseClock(alarm.Time, defaultTime)
		trigger := time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, time.UTC).
			AddDate(0, 0, -1)
		triggerLine = "TRIGGER;VALUE=DATE-TIME:" + trigger.Format("20060102T150405")
	}

	description := alarm.Description
	if description == "" {
		description = "Film Release Reminder"
	}

	var b strings.Builder
	b.WriteString("BEGIN:VALARM\r\n")
	b.WriteString("ACTION:DISPLAY\r\n")
	b.WriteString("DESCRIPTION:" + description + "\r\n")
	b.WriteString(triggerLine + "\r\n")
	b.WriteString("END:VALARM\r\n")
	return b.String()
}

// parseClock splits an "HH:MM" string, falling back to the default time.
// Inputs are validated at configuration load, so parse failures here only
// occur for the hand-assembled defaults.
func parseClock(clock, fallback string) (int, int) {
	if clock == "" {
		clock = fallback
	}
	if clock == "" {
		clock = DefaultNotificationTime
	}
	parts := strings.SplitN(clock, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours, minutes
}
