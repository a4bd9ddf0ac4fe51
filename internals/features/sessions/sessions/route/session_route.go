package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "tutorku_backend/internals/features/sessions/sessions/controller"
)

// SessionRoutes: seluruh rute session untuk user login (/api/u).
func SessionRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := sessionController.NewSessionController(db)

	sessions := user.Group("/sessions")
	sessions.Post("/", ctrl.CreateSession)
	sessions.Get("/", ctrl.ListSessions)
	sessions.Get("/:id", ctrl.GetSessionByID)
	sessions.Put("/:id", ctrl.UpdateSession)

	// lifecycle
	sessions.Post("/:id/reschedule", ctrl.RescheduleSession)
	sessions.Post("/:id/start", ctrl.StartSession)
	sessions.Post("/:id/complete", ctrl.CompleteSession)
	sessions.Post("/:id/cancel", ctrl.CancelSession)

	// enrollment
	sessions.Post("/:id/join", ctrl.JoinSession)
	sessions.Post("/:id/leave", ctrl.LeaveSession)
}
