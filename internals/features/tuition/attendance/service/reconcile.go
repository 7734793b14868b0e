package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	attModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	logModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
)

// Service is the attendance/class-log reconciliation engine. Every
// attendance mutation re-derives the conducted flag over the complete day
// set and syncs it into the class log inside the same transaction.
type Service struct {
	stores Stores
	tx     TxRunner
}

func New(stores Stores, tx TxRunner) *Service {
	return &Service{stores: stores, tx: tx}
}

// MarkAttendance upserts one (student, tuition, date) presence flag, then
// re-runs the conducted derivation over all records for that date and syncs
// the class log. Returns the fresh conducted flag so callers can update
// derived views without an ambient refresh signal.
func (s *Service) MarkAttendance(tuitionID, studentID uuid.UUID, date time.Time, isPresent bool) (bool, error) {
	return s.markAndSync(tuitionID, date, []attModel.AttendanceRecordModel{
		newRecord(tuitionID, studentID, date, isPresent),
	})
}

// MarkAll bulk-upserts one flag for every given student on the date, then
// reconciles once over the full day set.
func (s *Service) MarkAll(tuitionID uuid.UUID, studentIDs []uuid.UUID, date time.Time, isPresent bool) (bool, error) {
	records := make([]attModel.AttendanceRecordModel, 0, len(studentIDs))
	for _, sid := range studentIDs {
		records = append(records, newRecord(tuitionID, sid, date, isPresent))
	}
	return s.markAndSync(tuitionID, date, records)
}

func (s *Service) markAndSync(tuitionID uuid.UUID, date time.Time, records []attModel.AttendanceRecordModel) (bool, error) {
	day := DateOnly(date)
	var conducted bool
	err := s.tx.RunInTx(func(st Stores) error {
		if err := st.Attendance.Upsert(records); err != nil {
			return err
		}
		// One student's change can flip the aggregate, so the derivation
		// always runs over the complete current day set.
		all, err := st.Attendance.ListByDate(tuitionID, day)
		if err != nil {
			return err
		}
		conducted = WasConducted(all)
		return st.ClassLogs.UpsertConducted(tuitionID, day, conducted)
	})
	return conducted, err
}

// SyncLogFromAttendance upserts the class log's conducted flag for a date,
// preserving topic/notes. Idempotent: repeated calls with the same flag
// converge on the same stored row (each call still writes).
func (s *Service) SyncLogFromAttendance(tuitionID uuid.UUID, date time.Time, wasConducted bool) error {
	return s.stores.ClassLogs.UpsertConducted(tuitionID, DateOnly(date), wasConducted)
}

// ManualLogInput is the tutor-editable part of a class log.
type ManualLogInput struct {
	WasConducted bool
	TopicCovered *string
	Notes        *string
}

// UpsertManualLog creates or replaces the class log for (tuition, date)
// independent of attendance, and returns the stored row.
func (s *Service) UpsertManualLog(tuitionID uuid.UUID, date time.Time, in ManualLogInput) (*logModel.ClassLogModel, error) {
	day := DateOnly(date)
	log := &logModel.ClassLogModel{
		ClassLogTuitionID:    tuitionID,
		ClassLogDate:         datatypes.Date(day),
		ClassLogWasConducted: in.WasConducted,
		ClassLogTopicCovered: in.TopicCovered,
		ClassLogNotes:        in.Notes,
	}
	if err := s.stores.ClassLogs.UpsertManual(log); err != nil {
		return nil, err
	}
	return s.stores.ClassLogs.FindByDate(tuitionID, day)
}

// DeleteLog hard-deletes a class log by id. The confirmation step lives at
// the UI boundary; here it is a plain delete with no undo.
func (s *Service) DeleteLog(logID uuid.UUID) error {
	return s.stores.ClassLogs.Delete(logID)
}

// DaySheet is the attendance view for one date: the raw records, the
// derived conducted flag and the class log if one exists.
type DaySheet struct {
	Records      []attModel.AttendanceRecordModel `json:"records"`
	WasConducted bool                             `json:"was_conducted"`
	Log          *logModel.ClassLogModel          `json:"log,omitempty"`
}

func (s *Service) DaySheet(tuitionID uuid.UUID, date time.Time) (*DaySheet, error) {
	day := DateOnly(date)
	records, err := s.stores.Attendance.ListByDate(tuitionID, day)
	if err != nil {
		return nil, err
	}
	log, err := s.stores.ClassLogs.FindByDate(tuitionID, day)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return &DaySheet{
		Records:      records,
		WasConducted: WasConducted(records),
		Log:          log,
	}, nil
}

// CalendarDay carries a date's final status plus which signal decided its
// conducted flag.
type CalendarDay struct {
	Status DayStatus       `json:"status"`
	Source ConductedSource `json:"source"`
}

type CalendarReport struct {
	PerDay map[string]CalendarDay `json:"per_day"`
	Stats  MonthlyStats           `json:"stats"`
}

// MonthCalendar classifies every date of the month. Attendance rows are the
// authoritative conducted signal; dates without rows fall back to the manual
// log flag (see ResolveConducted).
func (s *Service) MonthCalendar(teachingDays []string, tuitionID uuid.UUID, year int, month time.Month, today time.Time) (*CalendarReport, error) {
	from, to := monthBounds(year, month)
	records, err := s.stores.Attendance.ListByRange(tuitionID, from, to)
	if err != nil {
		return nil, err
	}
	logs, err := s.stores.ClassLogs.ListByRange(tuitionID, from, to)
	if err != nil {
		return nil, err
	}

	signals := ResolveConducted(records, logs)
	conducted := make(map[string]bool, len(signals))
	for key, sig := range signals {
		conducted[key] = sig.Conducted
	}

	report := ClassifyMonth(teachingDays, year, month, conducted, today)
	out := &CalendarReport{PerDay: make(map[string]CalendarDay, len(report.PerDay)), Stats: report.Stats}
	for key, status := range report.PerDay {
		src := SourceNone
		if sig, ok := signals[key]; ok {
			src = sig.Source
		}
		out.PerDay[key] = CalendarDay{Status: status, Source: src}
	}
	return out, nil
}

// LogbookMonth is the log-driven variant: conducted comes from ClassLog rows
// only, attendance is not consulted.
func (s *Service) LogbookMonth(teachingDays []string, tuitionID uuid.UUID, year int, month time.Month, today time.Time) (*MonthReport, []logModel.ClassLogModel, error) {
	from, to := monthBounds(year, month)
	logs, err := s.stores.ClassLogs.ListByRange(tuitionID, from, to)
	if err != nil {
		return nil, nil, err
	}
	report := ClassifyMonth(teachingDays, year, month, ConductedFromLogs(logs), today)
	return &report, logs, nil
}

func newRecord(tuitionID, studentID uuid.UUID, date time.Time, isPresent bool) attModel.AttendanceRecordModel {
	return attModel.AttendanceRecordModel{
		AttendanceRecordStudentID: studentID,
		AttendanceRecordTuitionID: tuitionID,
		AttendanceRecordDate:      datatypes.Date(DateOnly(date)),
		AttendanceRecordIsPresent: isPresent,
	}
}

func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, -1)
}
