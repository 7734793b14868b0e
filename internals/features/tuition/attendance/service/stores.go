package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	attModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	logModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
)

// ErrNotFound is returned when a referenced row does not exist. Stores map
// their driver's not-found error onto it.
var ErrNotFound = errors.New("not found")

// AttendanceStore is the attendance persistence the engine needs. Upserts
// are keyed (student_id, tuition_id, date); rows are never deleted.
type AttendanceStore interface {
	Upsert(records []attModel.AttendanceRecordModel) error
	ListByDate(tuitionID uuid.UUID, date time.Time) ([]attModel.AttendanceRecordModel, error)
	ListByRange(tuitionID uuid.UUID, from, to time.Time) ([]attModel.AttendanceRecordModel, error)
}

// ClassLogStore is the class-log persistence the engine needs. Upserts are
// keyed (tuition_id, date) and atomic, so two reconciliations racing for the
// same date cannot produce duplicate rows.
type ClassLogStore interface {
	FindByDate(tuitionID uuid.UUID, date time.Time) (*logModel.ClassLogModel, error)
	// UpsertConducted writes only the conducted flag, preserving
	// topic/notes on an existing row.
	UpsertConducted(tuitionID uuid.UUID, date time.Time, wasConducted bool) error
	// UpsertManual writes the full manual-log payload.
	UpsertManual(log *logModel.ClassLogModel) error
	Delete(logID uuid.UUID) error
	ListByRange(tuitionID uuid.UUID, from, to time.Time) ([]logModel.ClassLogModel, error)
}

// Stores bundles the two collaborators a pipeline step works against.
type Stores struct {
	Attendance AttendanceStore
	ClassLogs  ClassLogStore
}

// TxRunner executes fn with stores bound to one transaction, so the
// attendance write and the log reconcile commit or fail together.
type TxRunner interface {
	RunInTx(fn func(st Stores) error) error
}
