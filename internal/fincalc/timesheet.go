// Package fincalc derives financial figures from reconciled timesheets,
// team payroll, and payment histories. Everything here is pure
// computation over in-memory inputs.
package fincalc

import (
	"context"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/internal/entity"
	"github.com/tunde-fashola/bizbooks/internal/reconcile"
)

// HoursPerDay converts overtime hours to fractional days.
const HoursPerDay = 8.0

// Converter is the slice of the currency service these computations
// need.
type Converter interface {
	Rate(ctx context.Context, code string) float64
}

// ComputeTimesheetFinancials derives cost, revenue, and profit for each
// matched timesheet and returns records ready to persist, carrying the
// resolved exchange rate and every assignment field they were derived
// from.
//
// External revenue is computed in the assignment's external (billing)
// currency and compared to the base-currency cost as-is; the billing
// currency is assumed base-comparable and is not converted.
func ComputeTimesheetFinancials(ctx context.Context, matches []reconcile.Match, rates Converter) []entity.TimesheetRecord {
	records := make([]entity.TimesheetRecord, 0, len(matches))
	for _, m := range matches {
		a := m.Assignment
		rate := rates.Rate(ctx, a.InternalCurrency)

		totalDays := m.Entry.StandardDays + m.Entry.OvertimeDays + m.Entry.OvertimeHours/HoursPerDay
		internalCost := totalDays * a.InternalDayRate
		internalCostBase := internalCost * rate
		externalRevenue := totalDays * a.ExternalDayRate

		records = append(records, entity.TimesheetRecord{
			ID:             uuid.New(),
			TimesheetEntry: m.Entry,

			AssignmentID:     a.ID,
			InternalDayRate:  a.InternalDayRate,
			InternalCurrency: a.InternalCurrency,
			ExternalDayRate:  a.ExternalDayRate,
			ExternalCurrency: a.ExternalCurrency,

			TotalDaysWorked:  totalDays,
			InternalCost:     internalCost,
			InternalCostBase: internalCostBase,
			ExternalRevenue:  externalRevenue,
			Profit:           externalRevenue - internalCostBase,
			ExchangeRate:     rate,
		})
	}
	return records
}
