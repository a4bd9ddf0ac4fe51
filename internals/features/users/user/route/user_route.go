package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/users/user/controller"
)

// UserRoutes: profil milik sendiri (group /api/u)
func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := user.Group("/users")
	users.Get("/me", ctrl.GetMe)
	users.Put("/me", ctrl.UpdateMe)
}

// AdminUserRoutes: manajemen user (group /api/a)
func AdminUserRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := admin.Group("/users")
	users.Get("/", ctrl.ListUsers)
	users.Get("/:id", ctrl.GetUserByID)
	users.Patch("/:id/status", ctrl.UpdateUserStatus)
}
