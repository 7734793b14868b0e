package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentTuitionID uuid.UUID `gorm:"type:uuid;not null;index;column:student_tuition_id" json:"student_tuition_id"`

	StudentName  string  `gorm:"not null;column:student_name" json:"student_name"`
	StudentPhone *string `gorm:"column:student_phone" json:"student_phone,omitempty"`

	// Fee amount only; the payment ledger lives outside this service.
	StudentMonthlyFee int `gorm:"not null;default:0;column:student_monthly_fee" json:"student_monthly_fee"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
