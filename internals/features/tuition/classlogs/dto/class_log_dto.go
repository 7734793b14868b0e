package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
	m "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Upsert keyed by (tuition_id, date): creating and editing a manual log are
// the same operation.
type UpsertClassLogRequest struct {
	TuitionID    uuid.UUID `json:"tuition_id" validate:"required"`
	Date         string    `json:"date" validate:"required,datetime=2006-01-02"`
	WasConducted *bool     `json:"was_conducted" validate:"required"`
	TopicCovered *string   `json:"topic_covered" validate:"omitempty,max=300"`
	Notes        *string   `json:"notes" validate:"omitempty,max=1000"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ClassLogResponse struct {
	ClassLogID   uuid.UUID `json:"class_log_id"`
	TuitionID    uuid.UUID `json:"tuition_id"`
	Date         string    `json:"date"`
	WasConducted bool      `json:"was_conducted"`
	TopicCovered *string   `json:"topic_covered,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromClassLogModel(mdl m.ClassLogModel) ClassLogResponse {
	return ClassLogResponse{
		ClassLogID:   mdl.ClassLogID,
		TuitionID:    mdl.ClassLogTuitionID,
		Date:         service.DateKey(time.Time(mdl.ClassLogDate)),
		WasConducted: mdl.ClassLogWasConducted,
		TopicCovered: mdl.ClassLogTopicCovered,
		Notes:        mdl.ClassLogNotes,
		CreatedAt:    mdl.ClassLogCreatedAt,
		UpdatedAt:    mdl.ClassLogUpdatedAt,
	}
}

func FromClassLogModels(mdls []m.ClassLogModel) []ClassLogResponse {
	out := make([]ClassLogResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromClassLogModel(mdl))
	}
	return out
}
