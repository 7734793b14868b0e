package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tCtrl "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/controller"
)

func TuitionRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tCtrl.NewTuitionController(db)

	g := r.Group("/tuitions")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Archive)
}
