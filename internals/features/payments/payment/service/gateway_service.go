package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"tutorku_backend/internals/features/payments/payment/model"
)

/* =========================================================
   Gateway Interface
========================================================= */

// ChargeResult: hasil charge di gateway, diisi ke payment oleh controller.
type ChargeResult struct {
	GatewayRef  string
	RedirectURL string
	// Completed true kalau gateway menyelesaikan pembayaran seketika
	// (mode development). Method menyertai penyelesaian itu.
	Completed bool
	Method    string
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// Gateway: abstraksi penyedia pembayaran supaya controller tidak terikat
// ke Midtrans dan test bisa pakai implementasi lokal.
type Gateway interface {
	Charge(p *model.PaymentModel, cust CustomerInput) (*ChargeResult, error)
}

/* =========================================================
   Dev Gateway — auto-complete
========================================================= */

// AutoCompleteGateway dipakai saat APP_ENV=development: tidak ada uang
// berpindah, pembayaran langsung completed dengan amount 0.
type AutoCompleteGateway struct{}

func (AutoCompleteGateway) Charge(p *model.PaymentModel, _ CustomerInput) (*ChargeResult, error) {
	return &ChargeResult{
		GatewayRef: "dev-" + p.PaymentInvoiceNumber,
		Completed:  true,
		Method:     "dev_mode",
	}, nil
}

/* =========================================================
   Midtrans Gateway
========================================================= */

type MidtransGateway struct {
	Snap      snap.Client
	ServerKey string
}

// NewMidtransGateway membuat client Snap.
// useProduction=true untuk Production, false untuk Sandbox.
func NewMidtransGateway(serverKey string, useProduction bool) *MidtransGateway {
	g := &MidtransGateway{ServerKey: serverKey}
	if useProduction {
		g.Snap.New(serverKey, midtrans.Production)
	} else {
		g.Snap.New(serverKey, midtrans.Sandbox)
	}
	return g
}

func (g *MidtransGateway) Charge(p *model.PaymentModel, cust CustomerInput) (*ChargeResult, error) {
	if p.PaymentAmount <= 0 {
		return nil, errors.New("payment_amount tidak valid")
	}
	if p.PaymentInvoiceNumber == "" {
		return nil, errors.New("payment_invoice_number wajib ada (dipakai sebagai OrderID)")
	}

	itemName := "Tutoring Session"
	if p.PaymentDescription != nil && *p.PaymentDescription != "" {
		itemName = *p.PaymentDescription
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.PaymentInvoiceNumber,
			GrossAmt: int64(p.PaymentAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
			Phone: cust.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       p.PaymentInvoiceNumber,
				Price:    int64(p.PaymentAmount),
				Qty:      1,
				Name:     truncate(itemName, 50),
				Category: "tutoring",
			},
		},
	}

	if mins := minutesUntil(p.PaymentDueDate, time.Now()); mins > 0 {
		req.Expiry = &snap.ExpiryDetails{Unit: "minutes", Duration: mins}
	}

	resp, err := g.Snap.CreateTransaction(req)
	if err != nil {
		return nil, err
	}
	return &ChargeResult{
		GatewayRef:  resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

/* =========================================================
   Webhook helpers
========================================================= */

// VerifyWebhookSignature: SHA512(order_id + status_code + gross_amount + ServerKey).
func VerifyWebhookSignature(orderID, statusCode, grossAmount, serverKey, signature string) bool {
	if signature == "" {
		return false
	}
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == strings.ToLower(signature)
}

// MapGatewayStatus memetakan transaction_status midtrans ke status internal.
// Boolean kedua false kalau status tidak kita kenal dan harus diabaikan.
func MapGatewayStatus(transactionStatus, fraudStatus string) (model.PaymentStatus, bool) {
	switch transactionStatus {
	case "capture":
		if fraudStatus == "challenge" {
			return model.PaymentStatusProcessing, true
		}
		if fraudStatus != "" && fraudStatus != "accept" {
			return model.PaymentStatusFailed, true
		}
		return model.PaymentStatusCompleted, true
	case "settlement":
		return model.PaymentStatusCompleted, true
	case "pending":
		return model.PaymentStatusProcessing, true
	case "deny", "failure":
		return model.PaymentStatusFailed, true
	case "cancel":
		return model.PaymentStatusCancelled, true
	case "expire":
		return model.PaymentStatusFailed, true
	case "refund", "partial_refund":
		return model.PaymentStatusRefunded, true
	default:
		return "", false
	}
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}

// minutesUntil dipakai untuk expiry Snap kalau due date dekat.
func minutesUntil(target, now time.Time) int64 {
	d := target.Sub(now)
	if d <= 0 {
		return 0
	}
	return int64(d.Round(time.Minute) / time.Minute)
}
