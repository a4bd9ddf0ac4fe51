package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	syllabusController "tutorku_backend/internals/features/sessions/syllabus/controller"
)

// SyllabusRoutes: rute silabus untuk user login (/api/u).
func SyllabusRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := syllabusController.NewSyllabusController(db)

	user.Post("/sessions/:id/syllabus", ctrl.CreateSyllabusItem)
	user.Get("/sessions/:id/syllabus", ctrl.GetSessionSyllabus)

	syllabus := user.Group("/syllabus")
	syllabus.Put("/:itemId", ctrl.UpdateSyllabusItem)
	syllabus.Delete("/:itemId", ctrl.DeleteSyllabusItem)
}
