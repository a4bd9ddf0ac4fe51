package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/home/notifications/controller"
)

// NotificationUserRoutes: notifikasi milik user login (group /api/u)
func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notif := user.Group("/notifications")
	notif.Get("/", ctrl.GetMyNotifications)
	notif.Get("/unread-count", ctrl.GetUnreadCount)
	notif.Post("/:id/read", ctrl.MarkAsRead)
	notif.Post("/read-all", ctrl.MarkAllAsRead)
}

// AdminNotificationRoutes: broadcast (group /api/a)
func AdminNotificationRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notif := admin.Group("/notifications")
	notif.Post("/broadcast", ctrl.Broadcast)
}
