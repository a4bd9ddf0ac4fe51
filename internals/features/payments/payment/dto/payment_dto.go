package dto

import (
	"time"

	"github.com/google/uuid"

	"tutorku_backend/internals/features/payments/payment/model"
)

/* ================================
   REQUEST
================================ */

type CreatePaymentRequest struct {
	PaymentSessionID   *uuid.UUID `json:"payment_session_id"`
	PaymentAmount      float64    `json:"payment_amount" validate:"required,gt=0"`
	PaymentCurrency    string     `json:"payment_currency" validate:"omitempty,len=3"`
	PaymentDescription *string    `json:"payment_description" validate:"omitempty,max=500"`
	PaymentDueDate     time.Time  `json:"payment_due_date" validate:"required"`
}

type RefundPaymentRequest struct {
	RefundAmount float64 `json:"refund_amount" validate:"required,gt=0"`
	RefundReason *string `json:"refund_reason" validate:"omitempty,max=500"`
}

/* ================================
   RESPONSE
================================ */

type PaymentResponse struct {
	PaymentID        uuid.UUID  `json:"payment_id"`
	PaymentStudentID uuid.UUID  `json:"payment_student_id"`
	PaymentSessionID *uuid.UUID `json:"payment_session_id,omitempty"`

	PaymentInvoiceNumber string `json:"payment_invoice_number"`

	PaymentAmount   float64             `json:"payment_amount"`
	PaymentCurrency string              `json:"payment_currency"`
	PaymentStatus   model.PaymentStatus `json:"payment_status"`
	PaymentMethod   *string             `json:"payment_method,omitempty"`

	PaymentDescription *string   `json:"payment_description,omitempty"`
	PaymentDueDate     time.Time `json:"payment_due_date"`

	PaymentIsOverdue   bool `json:"payment_is_overdue"`
	PaymentDaysOverdue int  `json:"payment_days_overdue"`

	PaymentPaidAt         *time.Time `json:"payment_paid_at,omitempty"`
	PaymentRefundedAmount float64    `json:"payment_refunded_amount"`
	PaymentRefundedAt     *time.Time `json:"payment_refunded_at,omitempty"`
	PaymentFailureReason  *string    `json:"payment_failure_reason,omitempty"`

	// dikembalikan hanya saat create lewat gateway non-dev
	PaymentRedirectURL *string `json:"payment_redirect_url,omitempty"`

	PaymentCreatedAt time.Time `json:"payment_created_at"`
}

func (r *CreatePaymentRequest) ToModel(studentID uuid.UUID) *model.PaymentModel {
	currency := r.PaymentCurrency
	if currency == "" {
		currency = "IDR"
	}
	return &model.PaymentModel{
		PaymentStudentID:   studentID,
		PaymentSessionID:   r.PaymentSessionID,
		PaymentAmount:      r.PaymentAmount,
		PaymentCurrency:    currency,
		PaymentDescription: r.PaymentDescription,
		PaymentDueDate:     r.PaymentDueDate,
		PaymentStatus:      model.PaymentStatusPending,
	}
}

func ToPaymentResponse(m *model.PaymentModel, now time.Time) *PaymentResponse {
	return &PaymentResponse{
		PaymentID:             m.PaymentID,
		PaymentStudentID:      m.PaymentStudentID,
		PaymentSessionID:      m.PaymentSessionID,
		PaymentInvoiceNumber:  m.PaymentInvoiceNumber,
		PaymentAmount:         m.PaymentAmount,
		PaymentCurrency:       m.PaymentCurrency,
		PaymentStatus:         m.PaymentStatus,
		PaymentMethod:         m.PaymentMethod,
		PaymentDescription:    m.PaymentDescription,
		PaymentDueDate:        m.PaymentDueDate,
		PaymentIsOverdue:      m.IsOverdue(now),
		PaymentDaysOverdue:    m.DaysOverdue(now),
		PaymentPaidAt:         m.PaymentPaidAt,
		PaymentRefundedAmount: m.PaymentRefundedAmount,
		PaymentRefundedAt:     m.PaymentRefundedAt,
		PaymentFailureReason:  m.PaymentFailureReason,
		PaymentCreatedAt:      m.PaymentCreatedAt,
	}
}

func ToPaymentResponseList(models []model.PaymentModel, now time.Time) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(models))
	for i := range models {
		out = append(out, *ToPaymentResponse(&models[i], now))
	}
	return out
}
