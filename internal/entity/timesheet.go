package entity

import (
	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
)

// TimesheetEntry is one validated timesheet row, before reconciliation
// against contractor assignments. Month is a YYYY-MM string.
type TimesheetEntry struct {
	UserID         uuid.UUID                 `json:"user_id"`
	ContractorName string                    `json:"contractor_name"`
	CustomerName   string                    `json:"customer_name"`
	Month          string                    `json:"month"`
	StandardDays   float64                   `json:"standard_days"`
	OvertimeDays   float64                   `json:"overtime_days"`
	OvertimeHours  float64                   `json:"overtime_hours"`
	Status         constants.TimesheetStatus `json:"status"`
}

// Assignment is a contractor↔customer pairing with its day rates. It is
// owned by the document store; the pipeline only reads it.
type Assignment struct {
	ID               uuid.UUID                  `json:"id"`
	UserID           uuid.UUID                  `json:"user_id"`
	ContractorName   string                     `json:"contractor_name"`
	CustomerName     string                     `json:"customer_name"`
	InternalDayRate  float64                    `json:"internal_day_rate"`
	InternalCurrency string                     `json:"internal_currency"`
	ExternalDayRate  float64                    `json:"external_day_rate"`
	ExternalCurrency string                     `json:"external_currency"`
	Status           constants.AssignmentStatus `json:"status"`
}

// TimesheetRecord is a matched timesheet entry with derived financials,
// carrying everything needed to persist it without re-deriving later.
type TimesheetRecord struct {
	ID uuid.UUID `json:"id"`
	TimesheetEntry

	AssignmentID     uuid.UUID `json:"assignment_id"`
	InternalDayRate  float64   `json:"internal_day_rate"`
	InternalCurrency string    `json:"internal_currency"`
	ExternalDayRate  float64   `json:"external_day_rate"`
	ExternalCurrency string    `json:"external_currency"`

	TotalDaysWorked  float64 `json:"total_days_worked"`
	InternalCost     float64 `json:"internal_cost"`
	InternalCostBase float64 `json:"internal_cost_base"`
	ExternalRevenue  float64 `json:"external_revenue"`
	Profit           float64 `json:"profit"`
	ExchangeRate     float64 `json:"exchange_rate"`
}
