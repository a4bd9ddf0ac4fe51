package service

import (
	"testing"
	"time"
)

func TestFormatInvoiceNumber(t *testing.T) {
	tests := []struct {
		now  time.Time
		seq  int64
		want string
	}{
		{time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), 1, "INV-202603-0001"},
		{time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), 42, "INV-202603-0042"},
		{time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC), 10000, "INV-202612-10000"},
	}
	for _, tt := range tests {
		if got := FormatInvoiceNumber(tt.now, tt.seq); got != tt.want {
			t.Fatalf("FormatInvoiceNumber(%v, %d) = %s, ingin %s", tt.now, tt.seq, got, tt.want)
		}
	}
}
