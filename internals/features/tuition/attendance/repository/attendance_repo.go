package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/model"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
)

// AttendanceRepo implements service.AttendanceStore on GORM/Postgres.
type AttendanceRepo struct {
	DB *gorm.DB
}

func NewAttendanceRepo(db *gorm.DB) *AttendanceRepo {
	return &AttendanceRepo{DB: db}
}

var _ service.AttendanceStore = (*AttendanceRepo)(nil)

// Upsert writes one row per (student, tuition, date). The composite unique
// index makes ON CONFLICT atomic for both single and bulk marks.
func (r *AttendanceRepo) Upsert(records []attModel.AttendanceRecordModel) error {
	if len(records) == 0 {
		return nil
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_record_student_id"},
			{Name: "attendance_record_tuition_id"},
			{Name: "attendance_record_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_record_is_present",
			"attendance_record_updated_at",
		}),
	}).Create(&records).Error
}

func (r *AttendanceRepo) ListByDate(tuitionID uuid.UUID, date time.Time) ([]attModel.AttendanceRecordModel, error) {
	var out []attModel.AttendanceRecordModel
	err := r.DB.
		Where("attendance_record_tuition_id = ? AND attendance_record_date = ?", tuitionID, datatypes.Date(date)).
		Order("attendance_record_created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *AttendanceRepo) ListByRange(tuitionID uuid.UUID, from, to time.Time) ([]attModel.AttendanceRecordModel, error) {
	var out []attModel.AttendanceRecordModel
	err := r.DB.
		Where("attendance_record_tuition_id = ? AND attendance_record_date BETWEEN ? AND ?",
			tuitionID, datatypes.Date(from), datatypes.Date(to)).
		Order("attendance_record_date ASC").
		Find(&out).Error
	return out, err
}
