package scheduler

import (
	"log"
	"strconv"
	"time"

	"gorm.io/gorm"

	notifModel "tutorku_backend/internals/features/home/notifications/model"
	notifService "tutorku_backend/internals/features/home/notifications/service"
	"tutorku_backend/internals/features/payments/payment/model"
)

// StartOverdueNotifierScheduler mengirim pengingat harian untuk payment yang
// lewat jatuh tempo dan belum lunas.
func StartOverdueNotifierScheduler(db *gorm.DB) {
	go func() {
		for {
			notifyOverduePayments(db)
			time.Sleep(24 * time.Hour)
		}
	}()
}

func notifyOverduePayments(db *gorm.DB) {
	now := time.Now()

	var payments []model.PaymentModel
	if err := db.
		Where("payment_due_date < ? AND payment_status IN ?",
			now, []model.PaymentStatus{
				model.PaymentStatusPending,
				model.PaymentStatusProcessing,
				model.PaymentStatusFailed,
			}).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil payment overdue: %v", err)
		return
	}

	for i := range payments {
		p := &payments[i]
		days := p.DaysOverdue(now)
		notifService.NotifyUser(db, p.PaymentStudentID,
			notifModel.NotificationTypePaymentOverdue,
			"Pembayaran terlambat",
			"Invoice "+p.PaymentInvoiceNumber+" sudah lewat jatuh tempo "+strconv.Itoa(days)+" hari")
	}

	if len(payments) > 0 {
		log.Printf("[INFO] Pengingat overdue terkirim untuk %d payment", len(payments))
	}
}
