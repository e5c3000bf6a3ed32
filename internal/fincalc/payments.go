package fincalc

import (
	"github.com/shopspring/decimal"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

// SummarizePayments aggregates a payment history against a target
// amount. The result is a derived view and is never persisted.
//
// Dates are YYYY-MM-DD strings, so the most recent payment is found by
// lexical comparison; ties keep the earlier entry in input order.
func SummarizePayments(target decimal.Decimal, payments []entity.Payment) entity.PaymentSummary {
	total := decimal.Zero
	last := ""
	for _, p := range payments {
		total = total.Add(p.Amount)
		if p.Date > last {
			last = p.Date
		}
	}

	remaining := target.Sub(total)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	status := constants.PaymentUnpaid
	switch {
	case total.GreaterThanOrEqual(target):
		status = constants.PaymentPaid
	case total.IsPositive():
		status = constants.PaymentPartial
	}

	return entity.PaymentSummary{
		TotalPaid:        total,
		RemainingBalance: remaining,
		Status:           status,
		LastPaymentDate:  last,
	}
}
