package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "tutorku_backend/internals/features/payments/payment/controller"
	"tutorku_backend/internals/features/payments/payment/service"
)

// PaymentRoutes: rute payment untuk user login (/api/u).
func PaymentRoutes(user fiber.Router, db *gorm.DB, gateway service.Gateway) {
	ctrl := paymentController.NewPaymentController(db, gateway)

	payments := user.Group("/payments")
	payments.Post("/", ctrl.CreatePayment)
	payments.Get("/my", ctrl.GetMyPayments)
	payments.Get("/:id", ctrl.GetPaymentByID)
	payments.Post("/:id/cancel", ctrl.CancelPayment)
}

// AdminPaymentRoutes: rute payment khusus admin (/api/a).
func AdminPaymentRoutes(admin fiber.Router, db *gorm.DB, gateway service.Gateway) {
	ctrl := paymentController.NewPaymentController(db, gateway)

	payments := admin.Group("/payments")
	payments.Get("/", ctrl.ListPayments)
	payments.Get("/overdue", ctrl.GetOverduePayments)
	payments.Post("/:id/refund", ctrl.RefundPayment)
}

// PaymentWebhookRoutes: endpoint callback gateway, tanpa auth.
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB, gateway service.Gateway) {
	ctrl := paymentController.NewPaymentController(db, gateway)
	api.Post("/payments/webhook", ctrl.HandleGatewayWebhook)
}
