package model

import (
	"testing"
	"time"
)

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		due     time.Time
		status  PaymentStatus
		overdue bool
	}{
		{"jatuh tempo lewat, pending", now.Add(-time.Hour), PaymentStatusPending, true},
		{"jatuh tempo lewat, failed", now.Add(-time.Hour), PaymentStatusFailed, true},
		{"jatuh tempo lewat, completed", now.Add(-time.Hour), PaymentStatusCompleted, false},
		{"belum jatuh tempo", now.Add(time.Hour), PaymentStatusPending, false},
		{"tepat jatuh tempo", now, PaymentStatusPending, false},
	}
	for _, tt := range tests {
		p := PaymentModel{PaymentDueDate: tt.due, PaymentStatus: tt.status}
		if got := p.IsOverdue(now); got != tt.overdue {
			t.Fatalf("%s: IsOverdue = %v, ingin %v", tt.name, got, tt.overdue)
		}
	}
}

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{"belum overdue", now.Add(time.Hour), 0},
		{"kemarin", now.Add(-24 * time.Hour), 1},
		{"25 jam dibulatkan ke atas", now.Add(-25 * time.Hour), 2},
		{"tepat 48 jam", now.Add(-48 * time.Hour), 2},
		{"satu jam lewat", now.Add(-time.Hour), 1},
	}
	for _, tt := range tests {
		p := PaymentModel{PaymentDueDate: tt.due, PaymentStatus: PaymentStatusPending}
		if got := p.DaysOverdue(now); got != tt.want {
			t.Fatalf("%s: DaysOverdue = %d, ingin %d", tt.name, got, tt.want)
		}
	}
}

func TestMarkAsCompletedIdempotent(t *testing.T) {
	p := PaymentModel{PaymentStatus: PaymentStatusPending, PaymentAmount: 100000}

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if err := p.MarkAsCompleted(first, "bank_transfer"); err != nil {
		t.Fatalf("MarkAsCompleted pertama gagal: %v", err)
	}
	if p.PaymentStatus != PaymentStatusCompleted {
		t.Fatalf("status = %s, ingin completed", p.PaymentStatus)
	}
	if p.PaymentPaidAt == nil || !p.PaymentPaidAt.Equal(first) {
		t.Fatalf("paid_at = %v, ingin %v", p.PaymentPaidAt, first)
	}

	// panggilan kedua tetap completed tapi paid_at di-stamp ulang
	second := first.Add(time.Hour)
	if err := p.MarkAsCompleted(second, ""); err != nil {
		t.Fatalf("MarkAsCompleted kedua gagal: %v", err)
	}
	if !p.PaymentPaidAt.Equal(second) {
		t.Fatalf("paid_at tidak di-stamp ulang: %v", p.PaymentPaidAt)
	}
	if p.PaymentMethod == nil || *p.PaymentMethod != "bank_transfer" {
		t.Fatalf("method kosong tidak boleh menimpa method lama")
	}
}

func TestMarkAsCompletedAfterRefund(t *testing.T) {
	now := time.Now()
	p := PaymentModel{PaymentStatus: PaymentStatusCompleted, PaymentAmount: 50000}
	if err := p.Refund(50000, now); err != nil {
		t.Fatalf("Refund gagal: %v", err)
	}
	if err := p.MarkAsCompleted(now, "dev_mode"); err == nil {
		t.Fatalf("pembayaran refunded tidak boleh kembali completed")
	}
}

func TestRefundCeiling(t *testing.T) {
	now := time.Now()
	p := PaymentModel{PaymentStatus: PaymentStatusCompleted, PaymentAmount: 100000}

	if err := p.Refund(60000, now); err != nil {
		t.Fatalf("refund pertama gagal: %v", err)
	}
	if p.PaymentStatus != PaymentStatusRefunded {
		t.Fatalf("status = %s, ingin refunded", p.PaymentStatus)
	}
	if err := p.Refund(50000, now); err == nil {
		t.Fatalf("refund melebihi sisa harus ditolak")
	}
	if err := p.Refund(40000, now); err != nil {
		t.Fatalf("refund sisa gagal: %v", err)
	}
	if p.PaymentRefundedAmount != 100000 {
		t.Fatalf("refunded_amount = %v, ingin 100000", p.PaymentRefundedAmount)
	}
}

func TestCancelOnlyBeforeCompletion(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		ok     bool
	}{
		{PaymentStatusPending, true},
		{PaymentStatusProcessing, true},
		{PaymentStatusFailed, true},
		{PaymentStatusCompleted, false},
		{PaymentStatusRefunded, false},
		{PaymentStatusCancelled, false},
	}
	for _, tt := range tests {
		p := PaymentModel{PaymentStatus: tt.status}
		err := p.Cancel()
		if tt.ok && err != nil {
			t.Fatalf("Cancel dari %s gagal: %v", tt.status, err)
		}
		if !tt.ok && err == nil {
			t.Fatalf("Cancel dari %s harus ditolak", tt.status)
		}
	}
}
