package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clCtrl "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/controller"
)

func ClassLogRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := clCtrl.NewClassLogController(db)

	g := r.Group("/class-logs")
	g.Post("/", ctrl.Upsert)
	g.Get("/", ctrl.GetByDate)
	g.Delete("/:id", ctrl.Delete)

	// log-driven month view
	r.Get("/tuitions/:id/logbook", ctrl.LogbookMonth)
}
