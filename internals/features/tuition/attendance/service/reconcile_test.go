package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	attModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	logModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
)

/* =========================================================
 * in-memory store fakes
 * ========================================================= */

type fakeAttendanceStore struct {
	rows map[string]attModel.AttendanceRecordModel // studentID|date
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{rows: make(map[string]attModel.AttendanceRecordModel)}
}

func attKey(studentID uuid.UUID, date time.Time) string {
	return studentID.String() + "|" + DateKey(date)
}

func (f *fakeAttendanceStore) Upsert(records []attModel.AttendanceRecordModel) error {
	for _, r := range records {
		day := time.Time(r.AttendanceRecordDate)
		key := attKey(r.AttendanceRecordStudentID, day)
		if existing, ok := f.rows[key]; ok {
			existing.AttendanceRecordIsPresent = r.AttendanceRecordIsPresent
			f.rows[key] = existing
			continue
		}
		r.AttendanceRecordID = uuid.New()
		f.rows[key] = r
	}
	return nil
}

func (f *fakeAttendanceStore) ListByDate(tuitionID uuid.UUID, date time.Time) ([]attModel.AttendanceRecordModel, error) {
	var out []attModel.AttendanceRecordModel
	for _, r := range f.rows {
		if r.AttendanceRecordTuitionID == tuitionID && DateKey(time.Time(r.AttendanceRecordDate)) == DateKey(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListByRange(tuitionID uuid.UUID, from, to time.Time) ([]attModel.AttendanceRecordModel, error) {
	var out []attModel.AttendanceRecordModel
	for _, r := range f.rows {
		day := time.Time(r.AttendanceRecordDate)
		if r.AttendanceRecordTuitionID == tuitionID && !day.Before(from) && !day.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeClassLogStore struct {
	logs   map[string]*logModel.ClassLogModel // tuitionID|date
	writes int
}

func newFakeClassLogStore() *fakeClassLogStore {
	return &fakeClassLogStore{logs: make(map[string]*logModel.ClassLogModel)}
}

func logKey(tuitionID uuid.UUID, date time.Time) string {
	return tuitionID.String() + "|" + DateKey(date)
}

func (f *fakeClassLogStore) FindByDate(tuitionID uuid.UUID, date time.Time) (*logModel.ClassLogModel, error) {
	if l, ok := f.logs[logKey(tuitionID, date)]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (f *fakeClassLogStore) UpsertConducted(tuitionID uuid.UUID, date time.Time, wasConducted bool) error {
	f.writes++
	key := logKey(tuitionID, date)
	if l, ok := f.logs[key]; ok {
		l.ClassLogWasConducted = wasConducted
		return nil
	}
	f.logs[key] = &logModel.ClassLogModel{
		ClassLogID:           uuid.New(),
		ClassLogTuitionID:    tuitionID,
		ClassLogDate:         datatypes.Date(date),
		ClassLogWasConducted: wasConducted,
	}
	return nil
}

func (f *fakeClassLogStore) UpsertManual(log *logModel.ClassLogModel) error {
	f.writes++
	key := logKey(log.ClassLogTuitionID, time.Time(log.ClassLogDate))
	if existing, ok := f.logs[key]; ok {
		existing.ClassLogWasConducted = log.ClassLogWasConducted
		existing.ClassLogTopicCovered = log.ClassLogTopicCovered
		existing.ClassLogNotes = log.ClassLogNotes
		return nil
	}
	cp := *log
	cp.ClassLogID = uuid.New()
	f.logs[key] = &cp
	return nil
}

func (f *fakeClassLogStore) Delete(logID uuid.UUID) error {
	for key, l := range f.logs {
		if l.ClassLogID == logID {
			delete(f.logs, key)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeClassLogStore) ListByRange(tuitionID uuid.UUID, from, to time.Time) ([]logModel.ClassLogModel, error) {
	var out []logModel.ClassLogModel
	for _, l := range f.logs {
		day := time.Time(l.ClassLogDate)
		if l.ClassLogTuitionID == tuitionID && !day.Before(from) && !day.After(to) {
			out = append(out, *l)
		}
	}
	return out, nil
}

type fakeTxRunner struct {
	st Stores
}

func (f *fakeTxRunner) RunInTx(fn func(st Stores) error) error {
	return fn(f.st)
}

func newTestService() (*Service, *fakeAttendanceStore, *fakeClassLogStore) {
	att := newFakeAttendanceStore()
	logs := newFakeClassLogStore()
	st := Stores{Attendance: att, ClassLogs: logs}
	return New(st, &fakeTxRunner{st: st}), att, logs
}

func strPtr(s string) *string { return &s }

/* =========================================================
 * tests
 * ========================================================= */

func TestSyncLogFromAttendanceIdempotent(t *testing.T) {
	svc, _, logs := newTestService()
	tuitionID := uuid.New()
	day := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)

	// pre-existing manual log with a topic
	_, err := svc.UpsertManualLog(tuitionID, day, ManualLogInput{
		WasConducted: false,
		TopicCovered: strPtr("Algebra basics"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.SyncLogFromAttendance(tuitionID, day, true))
	require.NoError(t, svc.SyncLogFromAttendance(tuitionID, day, true))

	assert.Len(t, logs.logs, 1)
	stored, err := logs.FindByDate(tuitionID, day)
	require.NoError(t, err)
	assert.True(t, stored.ClassLogWasConducted)
	// topic/notes survive attendance-driven syncs
	require.NotNil(t, stored.ClassLogTopicCovered)
	assert.Equal(t, "Algebra basics", *stored.ClassLogTopicCovered)
	// no short-circuit: every sync still writes
	assert.Equal(t, 3, logs.writes)
}

func TestMarkAttendanceCreatesConductedLog(t *testing.T) {
	svc, att, logs := newTestService()
	tuitionID := uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	day := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC) // a Monday

	// one of three students present
	conducted, err := svc.MarkAttendance(tuitionID, students[0], day, true)
	require.NoError(t, err)
	assert.True(t, conducted)

	stored, err := logs.FindByDate(tuitionID, day)
	require.NoError(t, err)
	assert.True(t, stored.ClassLogWasConducted)

	report, err := svc.MonthCalendar([]string{"monday", "wednesday", "friday"}, tuitionID,
		2024, time.May, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, CalendarDay{Status: DayStatusConducted, Source: SourceAttendance}, report.PerDay["2024-05-06"])
	assert.Equal(t, 1, report.Stats.Conducted)

	rows, err := att.ListByDate(tuitionID, day)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMarkAllAbsentFlipsLogAndStatus(t *testing.T) {
	svc, _, logs := newTestService()
	tuitionID := uuid.New()
	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	day := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)

	_, err := svc.MarkAttendance(tuitionID, students[0], day, true)
	require.NoError(t, err)

	conducted, err := svc.MarkAll(tuitionID, students, day, false)
	require.NoError(t, err)
	assert.False(t, conducted)

	stored, err := logs.FindByDate(tuitionID, day)
	require.NoError(t, err)
	assert.False(t, stored.ClassLogWasConducted)

	// date is in the past relative to "today" -> missed
	report, err := svc.MonthCalendar([]string{"monday"}, tuitionID,
		2024, time.May, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, DayStatusMissed, report.PerDay["2024-05-06"].Status)

	// same but "today" is the class date -> scheduled, never missed
	report, err = svc.MonthCalendar([]string{"monday"}, tuitionID,
		2024, time.May, day)
	require.NoError(t, err)
	assert.Equal(t, DayStatusScheduled, report.PerDay["2024-05-06"].Status)
}

func TestMarkReconcilesOverCompleteDaySet(t *testing.T) {
	svc, _, logs := newTestService()
	tuitionID := uuid.New()
	a, b := uuid.New(), uuid.New()
	day := time.Date(2024, time.May, 8, 0, 0, 0, 0, time.UTC)

	_, err := svc.MarkAttendance(tuitionID, a, day, true)
	require.NoError(t, err)

	// marking b absent must not flip the aggregate while a is still present
	conducted, err := svc.MarkAttendance(tuitionID, b, day, false)
	require.NoError(t, err)
	assert.True(t, conducted)

	stored, err := logs.FindByDate(tuitionID, day)
	require.NoError(t, err)
	assert.True(t, stored.ClassLogWasConducted)
}

func TestUpsertManualLogAndDelete(t *testing.T) {
	svc, _, logs := newTestService()
	tuitionID := uuid.New()
	day := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	created, err := svc.UpsertManualLog(tuitionID, day, ManualLogInput{
		WasConducted: true,
		TopicCovered: strPtr("Trigonometry"),
		Notes:        strPtr("homework assigned"),
	})
	require.NoError(t, err)
	assert.True(t, created.ClassLogWasConducted)

	// manual log alone drives the calendar when no attendance rows exist
	report, err := svc.MonthCalendar([]string{"friday"}, tuitionID,
		2024, time.May, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, CalendarDay{Status: DayStatusConducted, Source: SourceLog}, report.PerDay["2024-05-10"])

	// upsert by (tuition, date) edits in place
	updated, err := svc.UpsertManualLog(tuitionID, day, ManualLogInput{WasConducted: false})
	require.NoError(t, err)
	assert.Equal(t, created.ClassLogID, updated.ClassLogID)
	assert.False(t, updated.ClassLogWasConducted)
	assert.Len(t, logs.logs, 1)

	require.NoError(t, svc.DeleteLog(created.ClassLogID))
	_, err = logs.FindByDate(tuitionID, day)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteLog(created.ClassLogID), ErrNotFound)
}

func TestLogbookMonthIgnoresAttendance(t *testing.T) {
	svc, att, _ := newTestService()
	tuitionID := uuid.New()
	day := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)

	// attendance row exists but no log: the log-driven view must not see it
	require.NoError(t, att.Upsert([]attModel.AttendanceRecordModel{{
		AttendanceRecordStudentID: uuid.New(),
		AttendanceRecordTuitionID: tuitionID,
		AttendanceRecordDate:      datatypes.Date(day),
		AttendanceRecordIsPresent: true,
	}}))

	report, logs, err := svc.LogbookMonth([]string{"monday"}, tuitionID,
		2024, time.May, time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, logs)
	assert.Equal(t, DayStatusMissed, report.PerDay["2024-05-06"])
}
