package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	attendanceService "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/dto"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/model"
	helper "github.com/Rayat-7/tuitiontrack-sub000/internals/helpers"
)

type TuitionController struct {
	DB *gorm.DB
}

func NewTuitionController(db *gorm.DB) *TuitionController {
	return &TuitionController{DB: db}
}

// normalizeTeachingDays lowercases the list, checks every name against the
// weekday enumeration and rejects duplicates. Writes are strict even though
// reads degrade silently on malformed data.
func normalizeTeachingDays(days []string) ([]string, error) {
	out := make([]string, 0, len(days))
	seen := make(map[time.Weekday]bool)
	for _, raw := range days {
		name := strings.ToLower(strings.TrimSpace(raw))
		wd := attendanceService.ParseWeekday(name)
		if wd == attendanceService.WeekdayNoMatch {
			return nil, errors.New("unknown teaching day: " + raw)
		}
		if seen[wd] {
			return nil, errors.New("duplicate teaching day: " + raw)
		}
		seen[wd] = true
		out = append(out, name)
	}
	return out, nil
}

/* ===================== CREATE ===================== */
// POST /api/u/tuitions
func (ctrl *TuitionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTuitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	days, err := normalizeTeachingDays(req.TuitionTeachingDays)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(userID, days)
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create tuition")
	}
	return helper.JsonCreated(c, "Tuition created", dto.FromTuitionModel(m))
}

/* ===================== LIST ===================== */
// GET /api/u/tuitions
func (ctrl *TuitionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.TuitionModel{}).
		Where("tuition_user_id = ?", userID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count tuitions")
	}

	var rows []model.TuitionModel
	if err := ctrl.DB.
		Where("tuition_user_id = ?", userID).
		Order("tuition_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list tuitions")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromTuitionModels(rows), &p)
}

/* ===================== DETAIL ===================== */
// GET /api/u/tuitions/:id
func (ctrl *TuitionController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.TuitionModel
	if err := ctrl.DB.
		Where("tuition_id = ? AND tuition_user_id = ?", id, userID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Tuition not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromTuitionModel(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/u/tuitions/:id
func (ctrl *TuitionController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateTuitionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	updates := map[string]interface{}{}
	if req.TuitionName != nil {
		updates["tuition_name"] = *req.TuitionName
	}
	if req.TuitionTeachingDays != nil {
		days, err := normalizeTeachingDays(*req.TuitionTeachingDays)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		updates["tuition_teaching_days"] = pq.StringArray(days)
		updates["tuition_days_per_week"] = len(days)
	}
	if req.TuitionNote != nil {
		updates["tuition_note"] = *req.TuitionNote
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", fiber.Map{"tuition_id": id})
	}

	res := ctrl.DB.Model(&model.TuitionModel{}).
		Where("tuition_id = ? AND tuition_user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update tuition")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tuition not found")
	}

	var m model.TuitionModel
	if err := ctrl.DB.Where("tuition_id = ?", id).Take(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Tuition updated", dto.FromTuitionModel(m))
}

/* ===================== ARCHIVE ===================== */
// DELETE /api/u/tuitions/:id (soft delete)
func (ctrl *TuitionController) Archive(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	res := ctrl.DB.
		Where("tuition_id = ? AND tuition_user_id = ?", id, userID).
		Delete(&model.TuitionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive tuition")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tuition not found")
	}
	return helper.JsonDeleted(c, "Tuition archived", fiber.Map{"tuition_id": id})
}
