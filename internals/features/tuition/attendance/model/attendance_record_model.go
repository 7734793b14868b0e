package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AttendanceRecordModel is one (student, tuition, date) presence flag.
// Rows are upserted on the composite key and never deleted.
type AttendanceRecordModel struct {
	AttendanceRecordID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`

	AttendanceRecordStudentID uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordTuitionID uuid.UUID `gorm:"type:uuid;not null;index;column:attendance_record_tuition_id" json:"attendance_record_tuition_id"`

	AttendanceRecordDate      datatypes.Date `gorm:"not null;column:attendance_record_date" json:"attendance_record_date"`
	AttendanceRecordIsPresent bool           `gorm:"not null;column:attendance_record_is_present" json:"attendance_record_is_present"`

	AttendanceRecordCreatedAt time.Time `gorm:"column:attendance_record_created_at;autoCreateTime" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"column:attendance_record_updated_at;autoUpdateTime" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
