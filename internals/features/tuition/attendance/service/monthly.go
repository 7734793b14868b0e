package service

import "time"

// DayStatus classifies one calendar date of a tuition's month.
type DayStatus string

const (
	DayStatusConducted DayStatus = "conducted"
	DayStatusMissed    DayStatus = "missed"
	DayStatusScheduled DayStatus = "scheduled"
	DayStatusNone      DayStatus = "none"
)

type MonthlyStats struct {
	Scheduled int `json:"scheduled"`
	Conducted int `json:"conducted"`
	Missed    int `json:"missed"`
	Remaining int `json:"remaining"`
}

type MonthReport struct {
	PerDay map[string]DayStatus `json:"per_day"`
	Stats  MonthlyStats         `json:"stats"`
}

// ClassifyMonth walks every calendar date of the month and assigns exactly
// one DayStatus, first match wins:
//
//	conducted                        -> conducted
//	scheduled and strictly past      -> missed
//	scheduled                        -> scheduled (today is never missed)
//	otherwise                        -> none
//
// Stats: scheduled counts every teaching-day date regardless of final
// status; conducted/missed count final statuses; remaining counts
// teaching-day dates that are today-or-future.
func ClassifyMonth(teachingDays []string, year int, month time.Month, conducted map[string]bool, today time.Time) MonthReport {
	todayDate := DateOnly(today)

	report := MonthReport{PerDay: make(map[string]DayStatus)}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		scheduled := IsScheduledDay(teachingDays, d)
		cond := conducted[DateKey(d)]

		var status DayStatus
		switch {
		case cond:
			status = DayStatusConducted
		case scheduled && d.Before(todayDate):
			status = DayStatusMissed
		case scheduled:
			status = DayStatusScheduled
		default:
			status = DayStatusNone
		}
		report.PerDay[DateKey(d)] = status

		if scheduled {
			report.Stats.Scheduled++
			if !d.Before(todayDate) {
				report.Stats.Remaining++
			}
		}
		switch status {
		case DayStatusConducted:
			report.Stats.Conducted++
		case DayStatusMissed:
			report.Stats.Missed++
		}
	}
	return report
}
