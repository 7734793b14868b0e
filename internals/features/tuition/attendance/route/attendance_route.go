package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aCtrl "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := aCtrl.NewAttendanceController(db)

	g := r.Group("/attendance")
	g.Get("/", ctrl.DaySheet)
	g.Post("/mark", ctrl.Mark)
	g.Post("/mark-all", ctrl.MarkAll)

	// derived month view hangs off the tuition resource
	r.Get("/tuitions/:id/calendar", ctrl.MonthCalendar)
}
