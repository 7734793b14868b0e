package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/dto"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/repository"
	"github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/service"
	clDto "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/dto"
	studentModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/students/model"
	tuitionModel "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/model"
	helper "github.com/Rayat-7/tuitiontrack-sub000/internals/helpers"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: repository.NewService(db),
	}
}

func (ctrl *AttendanceController) loadOwnedTuition(tuitionID, userID uuid.UUID) (*tuitionModel.TuitionModel, error) {
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

// every given student must be enrolled in the tuition
func (ctrl *AttendanceController) checkEnrolled(tuitionID uuid.UUID, studentIDs []uuid.UUID) error {
	var count int64
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id IN ? AND student_tuition_id = ?", studentIDs, tuitionID).
		Count(&count).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if count != int64(len(studentIDs)) {
		return fiber.NewError(fiber.StatusNotFound, "Student not found in this tuition")
	}
	return nil
}

/* ===================== MARK (single) ===================== */
// POST /api/u/attendance/mark
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
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
	if err := ctrl.checkEnrolled(req.TuitionID, []uuid.UUID{req.StudentID}); err != nil {
		return err
	}

	conducted, err := ctrl.Service.MarkAttendance(req.TuitionID, req.StudentID, date, *req.IsPresent)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance")
	}
	return helper.JsonUpdated(c, "Attendance saved", dto.MarkResultResponse{
		TuitionID:    req.TuitionID,
		Date:         req.Date,
		WasConducted: conducted,
		MarkedCount:  1,
	})
}

/* ===================== MARK ALL ===================== */
// POST /api/u/attendance/mark-all
func (ctrl *AttendanceController) MarkAll(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.MarkAllAttendanceRequest
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
	if err := ctrl.checkEnrolled(req.TuitionID, req.StudentIDs); err != nil {
		return err
	}

	conducted, err := ctrl.Service.MarkAll(req.TuitionID, req.StudentIDs, date, *req.IsPresent)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save attendance")
	}
	return helper.JsonUpdated(c, "Attendance saved", dto.MarkResultResponse{
		TuitionID:    req.TuitionID,
		Date:         req.Date,
		WasConducted: conducted,
		MarkedCount:  len(req.StudentIDs),
	})
}

/* ===================== DAY SHEET ===================== */
// GET /api/u/attendance?tuition_id=&date=
func (ctrl *AttendanceController) DaySheet(c *fiber.Ctx) error {
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

	tuition, err := ctrl.loadOwnedTuition(tuitionID, userID)
	if err != nil {
		return err
	}

	sheet, err := ctrl.Service.DaySheet(tuitionID, date)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance")
	}

	body := fiber.Map{
		"date":          service.DateKey(service.DateOnly(date)),
		"is_scheduled":  service.IsScheduledDay(tuition.TuitionTeachingDays, date),
		"was_conducted": sheet.WasConducted,
		"records":       dto.FromAttendanceRecordModels(sheet.Records),
	}
	if sheet.Log != nil {
		body["log"] = clDto.FromClassLogModel(*sheet.Log)
	}
	return helper.JsonOK(c, "", body)
}

/* ===================== MONTH CALENDAR ===================== */
// GET /api/u/tuitions/:id/calendar?month=YYYY-MM
func (ctrl *AttendanceController) MonthCalendar(c *fiber.Ctx) error {
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

	report, err := ctrl.Service.MonthCalendar(
		tuition.TuitionTeachingDays, tuitionID, month.Year(), month.Month(), time.Now())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build calendar")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"tuition_id": tuitionID,
		"month":      month.Format("2006-01"),
		"per_day":    report.PerDay,
		"stats":      report.Stats,
	})
}
