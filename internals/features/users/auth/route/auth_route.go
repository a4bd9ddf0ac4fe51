package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/users/auth/controller"
	"tutorku_backend/internals/middlewares"
)

// AuthRoutes: endpoint publik (register/login/refresh)
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh", ctrl.Refresh)
}

// AuthUserRoutes: endpoint yang butuh login (group /api/u)
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := user.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Post("/change-password", ctrl.ChangePassword)
}
