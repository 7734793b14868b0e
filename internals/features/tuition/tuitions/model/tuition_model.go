package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type TuitionModel struct {
	TuitionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tuition_id" json:"tuition_id"`

	TuitionUserID uuid.UUID `gorm:"type:uuid;not null;index;column:tuition_user_id" json:"tuition_user_id"`

	TuitionName string `gorm:"not null;column:tuition_name" json:"tuition_name"`

	// Weekday names, locale order starting Saturday. days_per_week is always
	// derived from this list on write.
	TuitionTeachingDays pq.StringArray `gorm:"type:text[];not null;column:tuition_teaching_days" json:"tuition_teaching_days"`
	TuitionDaysPerWeek  int            `gorm:"not null;column:tuition_days_per_week" json:"tuition_days_per_week"`

	TuitionNote *string `gorm:"column:tuition_note" json:"tuition_note,omitempty"`

	TuitionCreatedAt time.Time      `gorm:"column:tuition_created_at;autoCreateTime" json:"tuition_created_at"`
	TuitionUpdatedAt time.Time      `gorm:"column:tuition_updated_at;autoUpdateTime" json:"tuition_updated_at"`
	TuitionDeletedAt gorm.DeletedAt `gorm:"column:tuition_deleted_at;index" json:"tuition_deleted_at,omitempty"`
}

func (TuitionModel) TableName() string { return "tuitions" }
