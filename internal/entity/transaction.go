package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
)

// Transaction represents one revenue or expense posting for data transfer
// between layers. Dates are normalized YYYY-MM-DD strings.
type Transaction struct {
	ID          uuid.UUID          `json:"id"`
	UserID      uuid.UUID          `json:"user_id"`
	Date        string             `json:"date"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Type        constants.TxType   `json:"type"`
	Amount      float64            `json:"amount"`
	Status      constants.TxStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Subscription represents a recurring cost.
type Subscription struct {
	ID              uuid.UUID                    `json:"id"`
	UserID          uuid.UUID                    `json:"user_id"`
	Name            string                       `json:"name"`
	Cost            float64                      `json:"cost"`
	BillingCycle    constants.BillingCycle       `json:"billing_cycle"`
	NextBillingDate string                       `json:"next_billing_date"`
	Category        string                       `json:"category"`
	Status          constants.SubscriptionStatus `json:"status"`
	CreatedAt       time.Time                    `json:"created_at"`
}

// Partner represents a profit-sharing business partner.
type Partner struct {
	ID           uuid.UUID               `json:"id"`
	UserID       uuid.UUID               `json:"user_id"`
	Name         string                  `json:"name"`
	Email        string                  `json:"email"`
	SharePercent float64                 `json:"share_percent"`
	Role         string                  `json:"role"`
	Status       constants.PartnerStatus `json:"status"`
	CreatedAt    time.Time               `json:"created_at"`
}
