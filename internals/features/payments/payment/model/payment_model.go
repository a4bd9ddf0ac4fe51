package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusCancelled  PaymentStatus = "cancelled"
)

/* ================================
   MODEL
================================ */

type PaymentModel struct {
	PaymentID        uuid.UUID  `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentStudentID uuid.UUID  `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`
	PaymentSessionID *uuid.UUID `gorm:"column:payment_session_id;type:uuid;index" json:"payment_session_id,omitempty"`

	PaymentInvoiceNumber string `gorm:"column:payment_invoice_number;type:varchar(30);not null;uniqueIndex:uq_payment_invoice_number" json:"payment_invoice_number"`

	PaymentAmount   float64 `gorm:"column:payment_amount;type:numeric(12,2);not null;check:payment_amount >= 0" json:"payment_amount"`
	PaymentCurrency string  `gorm:"column:payment_currency;type:varchar(8);not null;default:'IDR'" json:"payment_currency"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PaymentMethod *string       `gorm:"column:payment_method;type:varchar(30)" json:"payment_method,omitempty"`

	PaymentDescription *string   `gorm:"column:payment_description;type:text" json:"payment_description,omitempty"`
	PaymentDueDate     time.Time `gorm:"column:payment_due_date;type:timestamptz;not null" json:"payment_due_date"`

	PaymentPaidAt         *time.Time `gorm:"column:payment_paid_at;type:timestamptz" json:"payment_paid_at,omitempty"`
	PaymentRefundedAmount float64    `gorm:"column:payment_refunded_amount;type:numeric(12,2);not null;default:0" json:"payment_refunded_amount"`
	PaymentRefundedAt     *time.Time `gorm:"column:payment_refunded_at;type:timestamptz" json:"payment_refunded_at,omitempty"`
	PaymentFailureReason  *string    `gorm:"column:payment_failure_reason;type:text" json:"payment_failure_reason,omitempty"`

	// referensi transaksi di gateway eksternal (midtrans order / transaction id)
	PaymentGatewayRef *string        `gorm:"column:payment_gateway_ref;type:varchar(64);index" json:"payment_gateway_ref,omitempty"`
	PaymentMetadata   datatypes.JSON `gorm:"column:payment_metadata;type:jsonb" json:"payment_metadata,omitempty"`

	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

/* ================================
   DOMAIN HELPERS
================================ */

// IsOverdue: jatuh tempo lewat dan belum lunas. Pembayaran yang sudah
// completed tidak pernah overdue, status lain (termasuk failed) tetap dihitung.
func (p *PaymentModel) IsOverdue(now time.Time) bool {
	return now.After(p.PaymentDueDate) && p.PaymentStatus != PaymentStatusCompleted
}

// DaysOverdue: jumlah hari keterlambatan, dibulatkan ke atas per 24 jam.
// 0 kalau belum overdue.
func (p *PaymentModel) DaysOverdue(now time.Time) int {
	if !p.IsOverdue(now) {
		return 0
	}
	elapsed := now.Sub(p.PaymentDueDate)
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// MarkAsCompleted: idempoten terhadap status, tapi paid_at selalu di-stamp
// ulang. Pembayaran yang sudah direfund tidak boleh kembali completed.
func (p *PaymentModel) MarkAsCompleted(now time.Time, method string) error {
	if p.PaymentStatus == PaymentStatusRefunded {
		return errors.New("pembayaran yang sudah direfund tidak bisa diselesaikan")
	}
	p.PaymentStatus = PaymentStatusCompleted
	p.PaymentPaidAt = &now
	if method != "" {
		p.PaymentMethod = &method
	}
	return nil
}

// MarkAsFailed menyimpan alasan kegagalan dari gateway.
func (p *PaymentModel) MarkAsFailed(reason string) error {
	if p.PaymentStatus == PaymentStatusCompleted || p.PaymentStatus == PaymentStatusRefunded {
		return errors.New("pembayaran final tidak bisa ditandai gagal")
	}
	p.PaymentStatus = PaymentStatusFailed
	p.PaymentFailureReason = &reason
	return nil
}

// Cancel hanya boleh sebelum pembayaran selesai.
func (p *PaymentModel) Cancel() error {
	switch p.PaymentStatus {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusFailed:
		p.PaymentStatus = PaymentStatusCancelled
		return nil
	default:
		return errors.New("pembayaran dengan status " + string(p.PaymentStatus) + " tidak bisa dibatalkan")
	}
}

// Refund: hanya dari completed/refunded, dan akumulasi refund tidak boleh
// melebihi jumlah pembayaran awal.
func (p *PaymentModel) Refund(amount float64, now time.Time) error {
	if p.PaymentStatus != PaymentStatusCompleted && p.PaymentStatus != PaymentStatusRefunded {
		return errors.New("hanya pembayaran yang sudah selesai yang bisa direfund")
	}
	if amount <= 0 {
		return errors.New("jumlah refund harus lebih dari 0")
	}
	if p.PaymentRefundedAmount+amount > p.PaymentAmount {
		return errors.New("total refund melebihi jumlah pembayaran")
	}
	p.PaymentRefundedAmount += amount
	p.PaymentRefundedAt = &now
	p.PaymentStatus = PaymentStatusRefunded
	return nil
}
