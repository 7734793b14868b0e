package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateTuitionRequest struct {
	TuitionName         string   `json:"tuition_name" validate:"required,max=120"`
	TuitionTeachingDays []string `json:"tuition_teaching_days" validate:"required,min=1,max=7,dive,required"`
	TuitionNote         *string  `json:"tuition_note" validate:"omitempty,max=500"`
}

// Update (partial)
type UpdateTuitionRequest struct {
	TuitionName         *string   `json:"tuition_name" validate:"omitempty,max=120"`
	TuitionTeachingDays *[]string `json:"tuition_teaching_days" validate:"omitempty,min=1,max=7,dive,required"`
	TuitionNote         *string   `json:"tuition_note" validate:"omitempty,max=500"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type TuitionResponse struct {
	TuitionID           uuid.UUID `json:"tuition_id"`
	TuitionName         string    `json:"tuition_name"`
	TuitionTeachingDays []string  `json:"tuition_teaching_days"`
	TuitionDaysPerWeek  int       `json:"tuition_days_per_week"`
	TuitionNote         *string   `json:"tuition_note,omitempty"`
	TuitionCreatedAt    time.Time `json:"tuition_created_at"`
	TuitionUpdatedAt    time.Time `json:"tuition_updated_at"`
}

func (r CreateTuitionRequest) ToModel(userID uuid.UUID, normalizedDays []string) m.TuitionModel {
	return m.TuitionModel{
		TuitionUserID:       userID,
		TuitionName:         r.TuitionName,
		TuitionTeachingDays: pq.StringArray(normalizedDays),
		TuitionDaysPerWeek:  len(normalizedDays),
		TuitionNote:         r.TuitionNote,
	}
}

func FromTuitionModel(mdl m.TuitionModel) TuitionResponse {
	return TuitionResponse{
		TuitionID:           mdl.TuitionID,
		TuitionName:         mdl.TuitionName,
		TuitionTeachingDays: []string(mdl.TuitionTeachingDays),
		TuitionDaysPerWeek:  mdl.TuitionDaysPerWeek,
		TuitionNote:         mdl.TuitionNote,
		TuitionCreatedAt:    mdl.TuitionCreatedAt,
		TuitionUpdatedAt:    mdl.TuitionUpdatedAt,
	}
}

func FromTuitionModels(mdls []m.TuitionModel) []TuitionResponse {
	out := make([]TuitionResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromTuitionModel(mdl))
	}
	return out
}
