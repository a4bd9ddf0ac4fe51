package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"tutorku_backend/internals/features/payments/payment/model"
)

func TestVerifyWebhookSignature(t *testing.T) {
	serverKey := "SB-Mid-server-test"
	raw := "INV-202603-0001" + "200" + "150000.00" + serverKey
	sum := sha512.Sum512([]byte(raw))
	sig := hex.EncodeToString(sum[:])

	if !VerifyWebhookSignature("INV-202603-0001", "200", "150000.00", serverKey, sig) {
		t.Fatalf("signature valid ditolak")
	}
	if VerifyWebhookSignature("INV-202603-0001", "200", "150000.00", serverKey, "deadbeef") {
		t.Fatalf("signature salah diterima")
	}
	if VerifyWebhookSignature("INV-202603-0001", "200", "150000.00", serverKey, "") {
		t.Fatalf("signature kosong diterima")
	}
}

func TestMapGatewayStatus(t *testing.T) {
	tests := []struct {
		trx   string
		fraud string
		want  model.PaymentStatus
		known bool
	}{
		{"settlement", "", model.PaymentStatusCompleted, true},
		{"capture", "accept", model.PaymentStatusCompleted, true},
		{"capture", "challenge", model.PaymentStatusProcessing, true},
		{"capture", "deny", model.PaymentStatusFailed, true},
		{"pending", "", model.PaymentStatusProcessing, true},
		{"deny", "", model.PaymentStatusFailed, true},
		{"expire", "", model.PaymentStatusFailed, true},
		{"cancel", "", model.PaymentStatusCancelled, true},
		{"refund", "", model.PaymentStatusRefunded, true},
		{"partial_refund", "", model.PaymentStatusRefunded, true},
		{"authorize", "", "", false},
	}
	for _, tt := range tests {
		got, known := MapGatewayStatus(tt.trx, tt.fraud)
		if known != tt.known || got != tt.want {
			t.Fatalf("MapGatewayStatus(%s, %s) = (%s, %v), ingin (%s, %v)",
				tt.trx, tt.fraud, got, known, tt.want, tt.known)
		}
	}
}

func TestAutoCompleteGatewayCharge(t *testing.T) {
	p := &model.PaymentModel{PaymentInvoiceNumber: "INV-202603-0007", PaymentAmount: 100000}
	res, err := AutoCompleteGateway{}.Charge(p, CustomerInput{})
	if err != nil {
		t.Fatalf("Charge gagal: %v", err)
	}
	if !res.Completed || res.Method != "dev_mode" {
		t.Fatalf("mode dev harus auto-complete dengan method dev_mode, dapat %+v", res)
	}
	if res.GatewayRef != "dev-INV-202603-0007" {
		t.Fatalf("gateway ref = %s", res.GatewayRef)
	}
}
