package service

import (
	"strings"
	"time"
)

// WeekdayNoMatch is returned for names outside the teaching-day enumeration.
// It never equals a real time.Weekday, so malformed schedule data degrades
// to "no scheduled days" instead of erroring.
const WeekdayNoMatch = time.Weekday(-1)

// Canonical teaching-day enumeration, locale order starting Saturday, full
// names plus 3-letter abbreviations.
var weekdayNames = map[string]time.Weekday{
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
}

// TeachingDayNames lists the accepted full weekday names in locale order.
var TeachingDayNames = []string{"saturday", "sunday", "monday", "tuesday", "wednesday", "thursday", "friday"}

// ParseWeekday maps a teaching-day name to its time.Weekday,
// case-insensitively. Unknown names map to WeekdayNoMatch.
func ParseWeekday(name string) time.Weekday {
	if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return wd
	}
	return WeekdayNoMatch
}

// IsScheduledDay reports whether date falls on one of the tuition's teaching
// days. Empty or fully malformed teachingDays always yields false.
func IsScheduledDay(teachingDays []string, date time.Time) bool {
	dow := date.Weekday()
	for _, name := range teachingDays {
		if ParseWeekday(name) == dow {
			return true
		}
	}
	return false
}

// DateOnly strips the time-of-day so dates compare as plain Y-M-D.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateKey formats a date the way per-day maps are keyed.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
