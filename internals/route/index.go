package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifRoute "tutorku_backend/internals/features/home/notifications/route"
	paymentRoute "tutorku_backend/internals/features/payments/payment/route"
	paymentService "tutorku_backend/internals/features/payments/payment/service"
	attendanceRoute "tutorku_backend/internals/features/sessions/attendance/route"
	feedbackRoute "tutorku_backend/internals/features/sessions/feedback/route"
	sessionRoute "tutorku_backend/internals/features/sessions/sessions/route"
	syllabusRoute "tutorku_backend/internals/features/sessions/syllabus/route"
	authRoute "tutorku_backend/internals/features/users/auth/route"
	userRoute "tutorku_backend/internals/features/users/user/route"
	authMiddleware "tutorku_backend/internals/middlewares/auth"
	"tutorku_backend/internals/policy"
)

// SetupRoutes memasang seluruh rute aplikasi:
//   - /api/auth           → publik (register, login, google, refresh)
//   - /api/payments/webhook → publik, diamankan signature gateway
//   - /api/u              → user login (JWT)
//   - /api/a              → admin & super_admin
func SetupRoutes(app *fiber.App, db *gorm.DB, gateway paymentService.Gateway) {
	log.Println("[INFO] Memasang AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api")
	paymentRoute.PaymentWebhookRoutes(api, db, gateway)

	log.Println("[INFO] Memasang grup USER (/api/u)...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	authRoute.AuthUserRoutes(user, db)
	userRoute.UserRoutes(user, db)
	sessionRoute.SessionRoutes(user, db)
	attendanceRoute.AttendanceUserRoutes(user, db)
	syllabusRoute.SyllabusRoutes(user, db)
	feedbackRoute.FeedbackRoutes(user, db)
	paymentRoute.PaymentRoutes(user, db, gateway)
	notifRoute.NotificationUserRoutes(user, db)

	log.Println("[INFO] Memasang grup ADMIN (/api/a)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Akses khusus admin", policy.RoleAdmin, policy.RoleSuperAdmin),
	)
	userRoute.AdminUserRoutes(admin, db)
	paymentRoute.AdminPaymentRoutes(admin, db, gateway)
	notifRoute.AdminNotificationRoutes(admin, db)

	BaseRoutes(app, db)
}
