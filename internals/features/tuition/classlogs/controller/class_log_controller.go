package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/repository"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/dto"
	logModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/model"
	tuitionModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/model"
	helper "github.com/Rayat-7/tuitiontrack-sub000/internals/helpers"
)

type ClassLogController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewClassLogController(db *gorm.DB) *ClassLogController {
	return &ClassLogController{
		DB:      db,
		Service: repository.NewService(db),
	}
}

func (ctrl *ClassLogController) loadOwnedTuition(tuitionID, userID uuid.UUID) (*tuitionModel.TuitionModel, error) {
	var t tuitionModel.TuitionModel
	if err := ctrl.DB.
		Where("tuition_id = ? AND tuition_user_id = ?", tuitionID, userID).
		Take(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Tuition not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &t, nil
}

/* ===================== UPSERT (manual) ===================== */
// POST /api/u/class-logs
func (ctrl *ClassLogController) Upsert(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertClassLogRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	if _, err := ctrl.loadOwnedTuition(req.TuitionID, userID); err != nil {
		return err
	}

	log, err := ctrl.Service.UpsertManualLog(req.TuitionID, date, service.ManualLogInput{
		WasConducted: *req.WasConducted,
		TopicCovered: req.TopicCovered,
		Notes:        req.Notes,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save class log")
	}
	return helper.JsonUpdated(c, "Class log saved", dto.FromClassLogModel(*log))
}

/* ===================== DETAIL BY DATE ===================== */
// GET /api/u/class-logs?tuition_id=&date=
func (ctrl *ClassLogController) GetByDate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	tuitionID, err := uuid.Parse(c.Query("tuition_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tuition_id is required")
	}
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}

	if _, err := ctrl.loadOwnedTuition(tuitionID, userID); err != nil {
		return err
	}

	log, err := repository.NewClassLogRepo(ctrl.DB).FindByDate(tuitionID, service.DateOnly(date))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class log not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromClassLogModel(*log))
}

/* ===================== DELETE ===================== */
// DELETE /api/u/class-logs/:id (hard delete, no undo)
func (ctrl *ClassLogController) Delete(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	// ownership guard before the hard delete
	var log logModel.ClassLogModel
	if err := ctrl.DB.
		Joins("JOIN tuitions ON tuitions.tuition_id = class_logs.class_log_tuition_id").
		Where("class_logs.class_log_id = ? AND tuitions.tuition_user_id = ?", id, userID).
		Take(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class log not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.Service.DeleteLog(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Class log not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete class log")
	}
	return helper.JsonDeleted(c, "Class log deleted", fiber.Map{"class_log_id": id})
}

/* ===================== LOGBOOK (month, log-driven) ===================== */
// GET /api/u/tuitions/:id/logbook?month=YYYY-MM
func (ctrl *ClassLogController) LogbookMonth(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	tuitionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}
	month, err := time.Parse("2006-01", c.Query("month"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "month must be YYYY-MM")
	}

	tuition, err := ctrl.loadOwnedTuition(tuitionID, userID)
	if err != nil {
		return err
	}

	report, logs, err := ctrl.Service.LogbookMonth(
		tuition.TuitionTeachingDays, tuitionID, month.Year(), month.Month(), time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build logbook")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"tuition_id": tuitionID,
		"month":      month.Format("2006-01"),
		"per_day":    report.PerDay,
		"stats":      report.Stats,
		"logs":       dto.FromClassLogModels(logs),
	})
}
