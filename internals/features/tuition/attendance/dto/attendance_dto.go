package dto

import (
	"time"

	"github.com/google/uuid"

	m "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type MarkAttendanceRequest struct {
	TuitionID uuid.UUID `json:"tuition_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	IsPresent *bool     `json:"is_present" validate:"required"`
}

type MarkAllAttendanceRequest struct {
	TuitionID  uuid.UUID   `json:"tuition_id" validate:"required"`
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1"`
	Date       string      `json:"date" validate:"required,datetime=2006-01-02"`
	IsPresent  *bool       `json:"is_present" validate:"required"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceRecordResponse struct {
	AttendanceRecordID uuid.UUID `json:"attendance_record_id"`
	StudentID          uuid.UUID `json:"student_id"`
	TuitionID          uuid.UUID `json:"tuition_id"`
	Date               string    `json:"date"`
	IsPresent          bool      `json:"is_present"`
}

func FromAttendanceRecordModel(mdl m.AttendanceRecordModel) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		AttendanceRecordID: mdl.AttendanceRecordID,
		StudentID:          mdl.AttendanceRecordStudentID,
		TuitionID:          mdl.AttendanceRecordTuitionID,
		Date:               service.DateKey(time.Time(mdl.AttendanceRecordDate)),
		IsPresent:          mdl.AttendanceRecordIsPresent,
	}
}

func FromAttendanceRecordModels(mdls []m.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromAttendanceRecordModel(mdl))
	}
	return out
}

// MarkResultResponse is the fresh derived state after a mark, so the client
// can update without an ambient refresh signal.
type MarkResultResponse struct {
	TuitionID    uuid.UUID `json:"tuition_id"`
	Date         string    `json:"date"`
	WasConducted bool      `json:"was_conducted"`
	MarkedCount  int       `json:"marked_count"`
}
