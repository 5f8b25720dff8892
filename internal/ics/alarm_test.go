package ics

import (
	"strings"
	"testing"
	"time"
)

func intp(n int) *int { return &n }

func TestGenerateAlarmDaysBefore(t *testing.T) {
	date := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)

	got := generateAlarm(Alarm{DaysBefore: intp(2), Description: "Film out soon"}, date, "09:00")

	if !strings.Contains(got, "TRIGGER;VALUE=DATE-TIME:20251008T090000\r\n") {
		t.Errorf("absolute trigger wrong:\n%s", got)
	}
	if !strings.Contains(got, "DESCRIPTION:Film out soon\r\n") {
		t.Errorf("description missing:\n%s", got)
	}
}

func TestGenerateAlarmPerAlarmTimeOverride(t *testing.T) {
	date := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)

	got := generateAlarm(Alarm{DaysBefore: intp(1), Time: "18:30"}, date, "09:00")

	if !strings.Contains(got, "TRIGGER;VALUE=DATE-TIME:20251009T183000\r\n") {
		t.Errorf("per-alarm time not honoured:\n%s", got)
	}
}

func TestGenerateAlarmHoursBefore(t *testing.T) {
	date := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		hours int
		want  string
	}{
		{5, "TRIGGER:-PT5H\r\n"},
		{0, "TRIGGER:-PT0H\r\n"},
		{-3, "TRIGGER:PT3H\r\n"}, // fires after midnight on the day
	}

	for _, tt := range tests {
		got := generateAlarm(Alarm{HoursBefore: intp(tt.hours)}, date, "09:00")
		if !strings.Contains(got, tt.want) {
			t.Errorf("hours_before=%d: want %q in:\n%s", tt.hours, tt.want, got)
		}
	}
}

func TestGenerateAlarmDefaults(t *testing.T) {
	date := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)

	got := generateAlarm(Alarm{}, date, "")

	// No offset configured: day before at the built-in default time.
	if !strings.Contains(got, "TRIGGER;VALUE=DATE-TIME:20251009T090000\r\n") {
		t.Errorf("default trigger wrong:\n%s", got)
	}
	if !strings.Contains(got, "DESCRIPTION:Film Release Reminder\r\n") {
		t.Errorf("default description missing:\n%s", got)
	}
}

func TestGenerateAlarmStructure(t *testing.T) {
	date := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)
	got := generateAlarm(Alarm{DaysBefore: intp(1)}, date, "09:00")

	wantOrder := []string{"BEGIN:VALARM", "ACTION:DISPLAY", "DESCRIPTION:", "TRIGGER", "END:VALARM"}
	pos := 0
	for _, marker := range wantOrder {
		i := strings.Index(got[pos:], marker)
		if i < 0 {
			t.Fatalf("marker %q missing or out of order in:\n%s", marker, got)
		}
		pos += i
	}
	if !strings.HasSuffix(got, "END:VALARM\r\n") {
		t.Errorf("block should end with CRLF:\n%q", got)
	}
}
