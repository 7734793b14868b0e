package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMonthPrecedence(t *testing.T) {
	days := []string{"monday"}
	today := time.Date(2024, time.May, 20, 10, 30, 0, 0, time.UTC)

	// conducted dominates missed even deep in the past
	report := ClassifyMonth(days, 2024, time.May, map[string]bool{"2024-05-06": true}, today)
	assert.Equal(t, DayStatusConducted, report.PerDay["2024-05-06"])

	// scheduled, not conducted, strictly past -> missed
	assert.Equal(t, DayStatusMissed, report.PerDay["2024-05-13"])

	// today is never missed
	assert.Equal(t, DayStatusScheduled, report.PerDay["2024-05-20"])

	// future scheduled day
	assert.Equal(t, DayStatusScheduled, report.PerDay["2024-05-27"])

	// off-schedule day
	assert.Equal(t, DayStatusNone, report.PerDay["2024-05-07"])
}

func TestClassifyMonthCountConsistency(t *testing.T) {
	days := []string{"monday", "wednesday", "friday"}
	today := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	conducted := map[string]bool{
		"2024-05-06": true,
		"2024-05-08": true,
	}

	report := ClassifyMonth(days, 2024, time.May, conducted, today)

	stillScheduled := 0
	for _, status := range report.PerDay {
		if status == DayStatusScheduled {
			stillScheduled++
		}
	}
	// the three mutually exclusive sub-categories of scheduled days sum up
	assert.Equal(t, report.Stats.Scheduled, report.Stats.Conducted+report.Stats.Missed+stillScheduled)
	assert.Len(t, report.PerDay, 31)
}

func TestClassifyMonthNoAttendanceAtAll(t *testing.T) {
	// March 2021: the 1st is a Monday
	days := []string{"monday", "wednesday", "friday"}
	today := time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC)

	report := ClassifyMonth(days, 2021, time.March, nil, today)

	for key, status := range report.PerDay {
		d, err := time.Parse("2006-01-02", key)
		assert.NoError(t, err)
		switch d.Weekday() {
		case time.Monday, time.Wednesday, time.Friday:
			if d.Before(today) {
				assert.Equalf(t, DayStatusMissed, status, "date %s", key)
			} else {
				assert.Equalf(t, DayStatusScheduled, status, "date %s", key)
			}
		default:
			assert.Equalf(t, DayStatusNone, status, "date %s", key)
		}
	}

	assert.Equal(t, 0, report.Stats.Conducted)
	assert.Equal(t, 14, report.Stats.Scheduled)
	assert.Equal(t, 6, report.Stats.Missed)
	assert.Equal(t, 8, report.Stats.Remaining)
}

func TestClassifyMonthEmptySchedule(t *testing.T) {
	today := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

	report := ClassifyMonth(nil, 2024, time.May, nil, today)

	assert.Equal(t, MonthlyStats{}, report.Stats)
	for _, status := range report.PerDay {
		assert.Equal(t, DayStatusNone, status)
	}
}
