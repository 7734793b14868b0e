// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "github.com/Rayat-7/tuitiontrack-sub000/internals/middlewares/auth"
	routeDetails "github.com/Rayat-7/tuitiontrack-sub000/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthJWT())

	routeDetails.TuitionTrackRoutes(private, db)
}
