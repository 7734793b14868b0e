package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sCtrl "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := sCtrl.NewStudentController(db)

	g := r.Group("/students")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Archive)
}
