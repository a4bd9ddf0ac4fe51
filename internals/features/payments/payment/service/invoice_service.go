package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tutorku_backend/internals/features/payments/payment/model"
	helper "tutorku_backend/internals/helpers"
)

// maxInvoiceRetries membatasi perlombaan nomor invoice antar request paralel.
const maxInvoiceRetries = 5

// FormatInvoiceNumber membentuk nomor invoice INV-YYYYMM-NNNN.
func FormatInvoiceNumber(now time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", now.Format("200601"), seq)
}

// NextInvoiceNumber menghitung nomor berikutnya dari jumlah invoice bulan
// berjalan.
func NextInvoiceNumber(db *gorm.DB, now time.Time) (string, error) {
	var count int64
	if err := db.Model(&model.PaymentModel{}).
		Where("payment_invoice_number LIKE ?", "INV-"+now.Format("200601")+"-%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return FormatInvoiceNumber(now, count+1), nil
}

// CreateWithInvoice menyimpan payment baru dengan nomor invoice unik.
// Nomor dihitung dari counter bulanan; kalau dua request mendarat di angka
// yang sama, unique index menolak dan kita hitung ulang lalu coba lagi.
func CreateWithInvoice(db *gorm.DB, p *model.PaymentModel, now time.Time) error {
	for attempt := 0; attempt < maxInvoiceRetries; attempt++ {
		invoice, err := NextInvoiceNumber(db, now)
		if err != nil {
			return err
		}
		p.PaymentInvoiceNumber = invoice

		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(p).Error
		})
		if err == nil {
			return nil
		}
		if !helper.IsUniqueViolation(err) {
			return err
		}
		log.Printf("[WARNING] Nomor invoice %s bentrok, mencoba ulang (%d/%d)", invoice, attempt+1, maxInvoiceRetries)
		p.PaymentID = uuid.Nil // biar gen_random_uuid jalan lagi
	}
	return errors.New("gagal mendapatkan nomor invoice unik setelah beberapa percobaan")
}
