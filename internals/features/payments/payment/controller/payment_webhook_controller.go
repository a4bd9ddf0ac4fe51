package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"tutorku_backend/internals/configs"
	notifModel "tutorku_backend/internals/features/home/notifications/model"
	notifService "tutorku_backend/internals/features/home/notifications/service"
	"tutorku_backend/internals/features/payments/payment/model"
	"tutorku_backend/internals/features/payments/payment/service"
)

// gatewayNotif: payload notifikasi HTTP dari Midtrans.
// Field lain di payload aman diabaikan.
type gatewayNotif struct {
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, refund, partial_refund, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"` // = payment_invoice_number
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
}

// 🟢 POST /api/payments/webhook — tanpa auth, diamankan oleh signature.
func (ctrl *PaymentController) HandleGatewayWebhook(c *fiber.Ctx) error {
	var notif gatewayNotif
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "payload tidak valid")
	}

	if !service.VerifyWebhookSignature(notif.OrderID, notif.StatusCode, notif.GrossAmount,
		configs.MidtransServerKey, notif.SignatureKey) {
		return fiber.NewError(fiber.StatusUnauthorized, "signature tidak valid")
	}

	var p model.PaymentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("payment_invoice_number = ?", notif.OrderID).
		First(&p).Error; err != nil {
		// balas 200 supaya gateway tidak retry terus untuk order yang tidak kita kenal
		log.Printf("[WARNING] Webhook untuk order %s tidak menemukan payment", notif.OrderID)
		return c.JSON(fiber.Map{"status": "ignored", "reason": "payment not found"})
	}

	newStatus, known := service.MapGatewayStatus(notif.TransactionStatus, notif.FraudStatus)
	if !known {
		log.Printf("[WARNING] Status gateway tidak dikenal: %s (order %s)", notif.TransactionStatus, notif.OrderID)
		return c.JSON(fiber.Map{"status": "ignored", "reason": "unknown transaction_status"})
	}

	now := time.Now()
	switch newStatus {
	case model.PaymentStatusCompleted:
		if err := p.MarkAsCompleted(now, notif.PaymentType); err != nil {
			log.Printf("[ERROR] Webhook completed ditolak untuk %s: %v", p.PaymentInvoiceNumber, err)
			return c.JSON(fiber.Map{"status": "ignored", "reason": err.Error()})
		}
	case model.PaymentStatusFailed:
		_ = p.MarkAsFailed("gateway: " + notif.TransactionStatus)
	case model.PaymentStatusCancelled:
		_ = p.Cancel()
	case model.PaymentStatusRefunded:
		remaining := p.PaymentAmount - p.PaymentRefundedAmount
		if remaining > 0 {
			_ = p.Refund(remaining, now)
		}
	default:
		p.PaymentStatus = newStatus
	}

	if notif.TransactionID != "" {
		p.PaymentGatewayRef = &notif.TransactionID
	}
	if err := ctrl.DB.WithContext(c.Context()).Save(&p).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "gagal menyimpan status payment")
	}

	if p.PaymentStatus == model.PaymentStatusCompleted {
		notifService.NotifyUser(ctrl.DB, p.PaymentStudentID,
			notifModel.NotificationTypePaymentCompleted,
			"Pembayaran diterima",
			"Pembayaran untuk invoice "+p.PaymentInvoiceNumber+" sudah kami terima")
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
