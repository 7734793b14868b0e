package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
	logModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
)

// ClassLogRepo implements service.ClassLogStore on GORM/Postgres. All
// upserts go through ON CONFLICT on (tuition_id, date), so concurrent
// reconciliations cannot produce duplicate rows (last writer wins on the
// flag, which is the documented behavior).
type ClassLogRepo struct {
	DB *gorm.DB
}

func NewClassLogRepo(db *gorm.DB) *ClassLogRepo {
	return &ClassLogRepo{DB: db}
}

var _ service.ClassLogStore = (*ClassLogRepo)(nil)

func (r *ClassLogRepo) FindByDate(tuitionID uuid.UUID, date time.Time) (*logModel.ClassLogModel, error) {
	var out logModel.ClassLogModel
	err := r.DB.
		Where("class_log_tuition_id = ? AND class_log_date = ?", tuitionID, datatypes.Date(date)).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ClassLogRepo) UpsertConducted(tuitionID uuid.UUID, date time.Time, wasConducted bool) error {
	log := logModel.ClassLogModel{
		ClassLogTuitionID:    tuitionID,
		ClassLogDate:         datatypes.Date(date),
		ClassLogWasConducted: wasConducted,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "class_log_tuition_id"},
			{Name: "class_log_date"},
		},
		// only the derived flag; topic/notes stay untouched
		DoUpdates: clause.AssignmentColumns([]string{
			"class_log_was_conducted",
			"class_log_updated_at",
		}),
	}).Create(&log).Error
}

func (r *ClassLogRepo) UpsertManual(log *logModel.ClassLogModel) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "class_log_tuition_id"},
			{Name: "class_log_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"class_log_was_conducted",
			"class_log_topic_covered",
			"class_log_notes",
			"class_log_updated_at",
		}),
	}).Create(log).Error
}

func (r *ClassLogRepo) Delete(logID uuid.UUID) error {
	res := r.DB.Where("class_log_id = ?", logID).Delete(&logModel.ClassLogModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}

func (r *ClassLogRepo) ListByRange(tuitionID uuid.UUID, from, to time.Time) ([]logModel.ClassLogModel, error) {
	var out []logModel.ClassLogModel
	err := r.DB.
		Where("class_log_tuition_id = ? AND class_log_date BETWEEN ? AND ?",
			tuitionID, datatypes.Date(from), datatypes.Date(to)).
		Order("class_log_date ASC").
		Find(&out).Error
	return out, err
}
