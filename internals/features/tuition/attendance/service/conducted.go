package service

import (
	"time"

	attModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	logModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
)

// WasConducted derives the single conducted flag for one (tuition, date)
// attendance set: true iff at least one student was present. No records and
// nobody-present both collapse to false; there is no "unknown" state.
func WasConducted(records []attModel.AttendanceRecordModel) bool {
	for _, r := range records {
		if r.AttendanceRecordIsPresent {
			return true
		}
	}
	return false
}

// ConductedSource labels which signal produced a day's conducted flag.
type ConductedSource string

const (
	SourceAttendance ConductedSource = "attendance"
	SourceLog        ConductedSource = "log"
	SourceNone       ConductedSource = "none"
)

// DaySignal is the per-day conducted determination plus its origin.
type DaySignal struct {
	Conducted bool            `json:"conducted"`
	Source    ConductedSource `json:"source"`
}

// ConductedFromAttendance folds raw attendance rows into a per-day
// conducted map (attendance-driven view).
func ConductedFromAttendance(records []attModel.AttendanceRecordModel) map[string]bool {
	out := make(map[string]bool)
	for _, r := range records {
		key := DateKey(time.Time(r.AttendanceRecordDate))
		out[key] = out[key] || r.AttendanceRecordIsPresent
	}
	return out
}

// ConductedFromLogs reads the persisted conducted flags directly
// (log-driven view).
func ConductedFromLogs(logs []logModel.ClassLogModel) map[string]bool {
	out := make(map[string]bool, len(logs))
	for _, l := range logs {
		out[DateKey(time.Time(l.ClassLogDate))] = l.ClassLogWasConducted
	}
	return out
}

// ResolveConducted merges both signals per day: attendance rows are
// authoritative whenever any exist for the date; a date with zero rows falls
// back to the manual log flag. The source label is kept so callers can show
// which signal won instead of silently merging.
func ResolveConducted(records []attModel.AttendanceRecordModel, logs []logModel.ClassLogModel) map[string]DaySignal {
	out := make(map[string]DaySignal)

	for _, l := range logs {
		key := DateKey(time.Time(l.ClassLogDate))
		out[key] = DaySignal{Conducted: l.ClassLogWasConducted, Source: SourceLog}
	}

	seen := make(map[string]bool)
	for _, r := range records {
		key := DateKey(time.Time(r.AttendanceRecordDate))
		cur := out[key]
		if !seen[key] {
			// first attendance row for the day overrides any log signal
			cur = DaySignal{Conducted: false, Source: SourceAttendance}
			seen[key] = true
		}
		cur.Conducted = cur.Conducted || r.AttendanceRecordIsPresent
		out[key] = cur
	}
	return out
}
