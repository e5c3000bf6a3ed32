package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

// Subscription template columns, in order:
// Name, Cost, Billing Cycle, Next Billing Date, Category, Status.
const (
	subColName = iota
	subColCost
	subColCycle
	subColNextBilling
	subColCategory
	subColStatus
)

// ParseSubscriptions validates every non-empty data row of a
// subscription sheet.
func ParseSubscriptions(m Matrix, userID uuid.UUID) (*Result[entity.Subscription], error) {
	if err := ensureReadable(m); err != nil {
		return nil, err
	}
	res := &Result[entity.Subscription]{}
	now := time.Now().UTC()
	for i := 1; i < len(m); i++ {
		row := m[i]
		if rowEmpty(row) {
			continue
		}
		var violations []string

		name := cell(row, subColName)
		if name == "" {
			violations = append(violations, "Name is required")
		}

		cost, ok := parseAmount(cell(row, subColCost))
		if !ok {
			violations = append(violations, "Cost must be a positive number")
		}

		cycle, err := constants.ParseBillingCycle(cell(row, subColCycle))
		if err != nil {
			violations = append(violations, "Billing cycle must be 'monthly' or 'annual'")
		}

		rawNext := cell(row, subColNextBilling)
		nextBilling := ""
		if rawNext == "" {
			violations = append(violations, "Next billing date is required")
		} else if d, err := ParseDate(rawNext); err != nil {
			violations = append(violations, "Invalid next billing date")
		} else {
			nextBilling = d
		}

		category := cell(row, subColCategory)
		if category == "" {
			category = constants.DefaultSubscriptionCategory
		}

		status, err := constants.ParseSubscriptionStatus(cell(row, subColStatus))
		if err != nil {
			violations = append(violations, "Status must be one of: active, cancelled, paused")
		}

		if len(violations) > 0 {
			res.Errors = append(res.Errors, RowError{Row: i + 1, Violations: violations})
			continue
		}
		res.Valid = append(res.Valid, entity.Subscription{
			ID:              uuid.New(),
			UserID:          userID,
			Name:            name,
			Cost:            cost,
			BillingCycle:    cycle,
			NextBillingDate: nextBilling,
			Category:        category,
			Status:          status,
			CreatedAt:       now,
		})
	}
	return res, nil
}
