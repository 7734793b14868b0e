package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/students/dto"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/students/model"
	tuitionModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/model"
	helper "github.com/Rayat-7/tuitiontrack-sub000/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// ownsTuition guards every student op: the tuition must exist and belong to
// the calling tutor.
func (ctrl *StudentController) ownsTuition(tuitionID, userID uuid.UUID) error {
	var count int64
	if err := ctrl.DB.Model(&tuitionModel.TuitionModel{}).
		Where("tuition_id = ? AND tuition_user_id = ?", tuitionID, userID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Tuition not found")
	}
	return nil
}

/* ===================== CREATE ===================== */
// POST /api/u/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.ownsTuition(req.StudentTuitionID, userID); err != nil {
		return err
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", dto.FromStudentModel(m))
}

/* ===================== LIST ===================== */
// GET /api/u/students?tuition_id=&active_only=
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	tuitionID, err := uuid.Parse(c.Query("tuition_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "tuition_id is required")
	}
	if err := ctrl.ownsTuition(tuitionID, userID); err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.StudentModel{}).Where("student_tuition_id = ?", tuitionID)
	if c.QueryBool("active_only", false) {
		q = q.Where("student_is_active = TRUE")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count students")
	}

	var rows []model.StudentModel
	if err := q.Session(&gorm.Session{}).
		Order("student_created_at ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list students")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", dto.FromStudentModels(rows), &p)
}

/* ===================== DETAIL ===================== */
// GET /api/u/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.StudentModel
	if err := ctrl.DB.
		Joins("JOIN tuitions ON tuitions.tuition_id = students.student_tuition_id").
		Where("students.student_id = ? AND tuitions.tuition_user_id = ?", id, userID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromStudentModel(m))
}

/* ===================== UPDATE (partial) ===================== */
// PATCH /api/u/students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var m model.StudentModel
	if err := ctrl.DB.
		Joins("JOIN tuitions ON tuitions.tuition_id = students.student_tuition_id").
		Where("students.student_id = ? AND tuitions.tuition_user_id = ?", id, userID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["student_name"] = *req.StudentName
	}
	if req.StudentPhone != nil {
		updates["student_phone"] = *req.StudentPhone
	}
	if req.StudentMonthlyFee != nil {
		updates["student_monthly_fee"] = *req.StudentMonthlyFee
	}
	if req.StudentIsActive != nil {
		updates["student_is_active"] = *req.StudentIsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromStudentModel(m))
	}

	if err := ctrl.DB.Model(&m).
		Where("student_id = ?", id).
		Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	if err := ctrl.DB.Where("student_id = ?", id).Take(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Student updated", dto.FromStudentModel(m))
}

/* ===================== ARCHIVE ===================== */
// DELETE /api/u/students/:id (soft delete; attendance history stays)
func (ctrl *StudentController) Archive(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid ID")
	}

	var m model.StudentModel
	if err := ctrl.DB.
		Joins("JOIN tuitions ON tuitions.tuition_id = students.student_tuition_id").
		Where("students.student_id = ? AND tuitions.tuition_user_id = ?", id, userID).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive student")
	}
	return helper.JsonDeleted(c, "Student archived", fiber.Map{"student_id": id})
}
