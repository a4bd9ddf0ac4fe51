package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feedbackController "tutorku_backend/internals/features/sessions/feedback/controller"
)

// FeedbackRoutes: rute feedback untuk user login (/api/u).
func FeedbackRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := feedbackController.NewFeedbackController(db)

	user.Post("/sessions/:id/feedback", ctrl.SubmitFeedback)
	user.Get("/sessions/:id/feedback", ctrl.GetSessionFeedback)
	user.Get("/tutors/:id/rating", ctrl.GetTutorRating)
}
