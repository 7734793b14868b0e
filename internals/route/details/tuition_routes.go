package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/attendance/route"
	classLogRoute "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/classlogs/route"
	studentRoute "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/students/route"
	tuitionRoute "github.com/Rayat-7/tuitiontrack-sub000/internals/features/tuition/tuitions/route"
)

// TuitionTrackRoutes registers every tutor-facing resource on the authed
// group.
func TuitionTrackRoutes(r fiber.Router, db *gorm.DB) {
	tuitionRoute.TuitionRoutes(r, db)
	studentRoute.StudentRoutes(r, db)
	attendanceRoute.AttendanceRoutes(r, db)
	classLogRoute.ClassLogRoutes(r, db)
}
