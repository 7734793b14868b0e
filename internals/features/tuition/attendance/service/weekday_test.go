package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekday(t *testing.T) {
	assert.Equal(t, time.Saturday, ParseWeekday("saturday"))
	assert.Equal(t, time.Saturday, ParseWeekday("sat"))
	assert.Equal(t, time.Monday, ParseWeekday("Monday"))
	assert.Equal(t, time.Monday, ParseWeekday("  MON "))
	assert.Equal(t, time.Friday, ParseWeekday("fri"))

	// malformed schedule data degrades instead of erroring
	assert.Equal(t, WeekdayNoMatch, ParseWeekday("mondayy"))
	assert.Equal(t, WeekdayNoMatch, ParseWeekday(""))
	assert.Equal(t, WeekdayNoMatch, ParseWeekday("holiday"))
}

func TestIsScheduledDaySymmetry(t *testing.T) {
	days := []string{"monday", "wednesday"}

	first := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == time.May; d = d.AddDate(0, 0, 1) {
		want := d.Weekday() == time.Monday || d.Weekday() == time.Wednesday
		assert.Equalf(t, want, IsScheduledDay(days, d), "date %s", DateKey(d))
	}
}

func TestIsScheduledDayEdgeCases(t *testing.T) {
	monday := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsScheduledDay(nil, monday))
	assert.False(t, IsScheduledDay([]string{}, monday))
	assert.False(t, IsScheduledDay([]string{"notaday", "xyz"}, monday))
	assert.True(t, IsScheduledDay([]string{"notaday", "mon"}, monday))
}
