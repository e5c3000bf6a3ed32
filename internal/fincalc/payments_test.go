package fincalc

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

func pay(amount string, date string) entity.Payment {
	return entity.Payment{Amount: decimal.RequireFromString(amount), Date: date}
}

func TestSummarizePayments(t *testing.T) {
	target := decimal.NewFromInt(100)

	tests := []struct {
		name          string
		payments      []entity.Payment
		wantPaid      string
		wantRemaining string
		wantStatus    constants.PaymentStatus
		wantLastDate  string
	}{
		{
			name:          "no payments",
			wantPaid:      "0",
			wantRemaining: "100",
			wantStatus:    constants.PaymentUnpaid,
		},
		{
			name:          "partial",
			payments:      []entity.Payment{pay("30", "2024-01-10"), pay("20.50", "2024-01-05")},
			wantPaid:      "50.5",
			wantRemaining: "49.5",
			wantStatus:    constants.PaymentPartial,
			wantLastDate:  "2024-01-10",
		},
		{
			name:          "exactly paid",
			payments:      []entity.Payment{pay("60", "2024-01-01"), pay("40", "2024-01-02")},
			wantPaid:      "100",
			wantRemaining: "0",
			wantStatus:    constants.PaymentPaid,
			wantLastDate:  "2024-01-02",
		},
		{
			name:          "overpaid clamps remaining to zero",
			payments:      []entity.Payment{pay("150", "2024-02-01")},
			wantPaid:      "150",
			wantRemaining: "0",
			wantStatus:    constants.PaymentPaid,
			wantLastDate:  "2024-02-01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummarizePayments(target, tt.payments)
			if got.TotalPaid.String() != tt.wantPaid {
				t.Errorf("TotalPaid = %s, want %s", got.TotalPaid, tt.wantPaid)
			}
			if got.RemainingBalance.String() != tt.wantRemaining {
				t.Errorf("RemainingBalance = %s, want %s", got.RemainingBalance, tt.wantRemaining)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.LastPaymentDate != tt.wantLastDate {
				t.Errorf("LastPaymentDate = %q, want %q", got.LastPaymentDate, tt.wantLastDate)
			}
		})
	}

	t.Run("date ties keep the earlier payment", func(t *testing.T) {
		got := SummarizePayments(target, []entity.Payment{pay("10", "2024-01-01"), pay("10", "2024-01-01")})
		if got.LastPaymentDate != "2024-01-01" {
			t.Errorf("LastPaymentDate = %q", got.LastPaymentDate)
		}
	})
}
