package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tunde-fashola/bizbooks/constants"
)

// TeamMember is a salaried employee. BaseSalary is a monthly amount in
// the member's currency.
type TeamMember struct {
	ID         uuid.UUID              `json:"id"`
	UserID     uuid.UUID              `json:"user_id"`
	Name       string                 `json:"name"`
	BaseSalary decimal.Decimal        `json:"base_salary"`
	Currency   string                 `json:"currency"`
	Status     constants.MemberStatus `json:"status"`
}

// PayrollRecord is one generated payroll line for a member and month.
// At most one record set may exist per month.
type PayrollRecord struct {
	ID         uuid.UUID               `json:"id"`
	UserID     uuid.UUID               `json:"user_id"`
	MemberID   uuid.UUID               `json:"member_id"`
	MemberName string                  `json:"member_name"`
	Month      string                  `json:"month"`
	BaseSalary decimal.Decimal         `json:"base_salary"`
	NetAmount  decimal.Decimal         `json:"net_amount"`
	Currency   string                  `json:"currency"`
	Status     constants.PayrollStatus `json:"status"`
	CreatedAt  time.Time               `json:"created_at"`
}

// Payment is an amount received against a target transaction or
// timesheet record. Date is a YYYY-MM-DD string.
type Payment struct {
	ID       uuid.UUID       `json:"id"`
	TargetID uuid.UUID       `json:"target_id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
}

// PaymentSummary is a derived, non-persisted view of payments against a
// target amount.
type PaymentSummary struct {
	TotalPaid        decimal.Decimal         `json:"total_paid"`
	RemainingBalance decimal.Decimal         `json:"remaining_balance"`
	Status           constants.PaymentStatus `json:"status"`
	LastPaymentDate  string                  `json:"last_payment_date,omitempty"`
}
