package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/sessions/attendance/controller"
)

// AttendanceUserRoutes (group /api/u)
func AttendanceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	user.Get("/sessions/:id/attendance", ctrl.GetSessionRoster)
	user.Post("/sessions/:id/attendance/:studentId/mark", ctrl.MarkAttendance)

	att := user.Group("/attendance")
	att.Get("/my", ctrl.GetMyAttendance)
	att.Post("/:id/checkout", ctrl.CheckOut)
	att.Post("/:id/duration", ctrl.RecalculateDuration)
}
