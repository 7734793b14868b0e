package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClassLogModel records whether a class happened on a date and what was
// covered. At most one row per (tuition, date), enforced by a unique index
// and upserted atomically. Deletes are hard deletes.
type ClassLogModel struct {
	ClassLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_log_id" json:"class_log_id"`

	ClassLogTuitionID uuid.UUID      `gorm:"type:uuid;not null;index;column:class_log_tuition_id" json:"class_log_tuition_id"`
	ClassLogDate      datatypes.Date `gorm:"not null;column:class_log_date" json:"class_log_date"`

	ClassLogWasConducted bool    `gorm:"not null;column:class_log_was_conducted" json:"class_log_was_conducted"`
	ClassLogTopicCovered *string `gorm:"column:class_log_topic_covered" json:"class_log_topic_covered,omitempty"`
	ClassLogNotes        *string `gorm:"column:class_log_notes" json:"class_log_notes,omitempty"`

	ClassLogCreatedAt time.Time `gorm:"column:class_log_created_at;autoCreateTime" json:"class_log_created_at"`
	ClassLogUpdatedAt time.Time `gorm:"column:class_log_updated_at;autoUpdateTime" json:"class_log_updated_at"`
}

func (ClassLogModel) TableName() string { return "class_logs" }
