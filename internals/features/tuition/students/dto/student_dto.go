package dto

import (
	"time"

	"github.com/google/uuid"

	m "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/students/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateStudentRequest struct {
	StudentTuitionID  uuid.UUID `json:"student_tuition_id" validate:"required"`
	StudentName       string    `json:"student_name" validate:"required,max=120"`
	StudentPhone      *string   `json:"student_phone" validate:"omitempty,max=30"`
	StudentMonthlyFee int       `json:"student_monthly_fee" validate:"gte=0"`
}

// Update (partial)
type UpdateStudentRequest struct {
	StudentName       *string `json:"student_name" validate:"omitempty,max=120"`
	StudentPhone      *string `json:"student_phone" validate:"omitempty,max=30"`
	StudentMonthlyFee *int    `json:"student_monthly_fee" validate:"omitempty,gte=0"`
	StudentIsActive   *bool   `json:"student_is_active" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type StudentResponse struct {
	StudentID         uuid.UUID `json:"student_id"`
	StudentTuitionID  uuid.UUID `json:"student_tuition_id"`
	StudentName       string    `json:"student_name"`
	StudentPhone      *string   `json:"student_phone,omitempty"`
	StudentMonthlyFee int       `json:"student_monthly_fee"`
	StudentIsActive   bool      `json:"student_is_active"`
	StudentCreatedAt  time.Time `json:"student_created_at"`
	StudentUpdatedAt  time.Time `json:"student_updated_at"`
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	return m.StudentModel{
		StudentTuitionID:  r.StudentTuitionID,
		StudentName:       r.StudentName,
		StudentPhone:      r.StudentPhone,
		StudentMonthlyFee: r.StudentMonthlyFee,
		StudentIsActive:   true,
	}
}

func FromStudentModel(mdl m.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:         mdl.StudentID,
		StudentTuitionID:  mdl.StudentTuitionID,
		StudentName:       mdl.StudentName,
		StudentPhone:      mdl.StudentPhone,
		StudentMonthlyFee: mdl.StudentMonthlyFee,
		StudentIsActive:   mdl.StudentIsActive,
		StudentCreatedAt:  mdl.StudentCreatedAt,
		StudentUpdatedAt:  mdl.StudentUpdatedAt,
	}
}

func FromStudentModels(mdls []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromStudentModel(mdl))
	}
	return out
}
