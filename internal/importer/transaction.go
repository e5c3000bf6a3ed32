package importer

import (
	"time"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

// Transaction template columns, in order:
// Date, Description, Category, Type, Amount, Status.
const (
	txColDate = iota
	txColDescription
	txColCategory
	txColType
	txColAmount
	txColStatus
)

// ParseTransactions validates every non-empty data row of a transaction
// sheet. Validation collects all violations on a row before deciding;
// a row is either wholly valid or reported as one error entry.
func ParseTransactions(m Matrix, userID uuid.UUID) (*Result[entity.Transaction], error) {
	if err := ensureReadable(m); err != nil {
		return nil, err
	}
	res := &Result[entity.Transaction]{}
	now := time.Now().UTC()
	for i := 1; i < len(m); i++ {
		row := m[i]
		if rowEmpty(row) {
			continue
		}
		var violations []string

		rawDate := cell(row, txColDate)
		date := ""
		if rawDate == "" {
			violations = append(violations, "Date is required")
		} else if d, err := ParseDate(rawDate); err != nil {
			violations = append(violations, "Invalid date format")
		} else {
			date = d
		}

		description := cell(row, txColDescription)
		if description == "" {
			violations = append(violations, "Description is required")
		}

		category := cell(row, txColCategory)
		if category == "" {
			violations = append(violations, "Category is required")
		}

		txType, err := constants.ParseTxType(cell(row, txColType))
		if err != nil {
			violations = append(violations, "Type must be 'revenue' or 'expense'")
		}

		amount, ok := parseAmount(cell(row, txColAmount))
		if !ok {
			violations = append(violations, "Amount must be a positive number")
		}

		status, err := constants.ParseTxStatus(cell(row, txColStatus))
		if err != nil {
			violations = append(violations, "Status must be one of: draft, posted")
		}

		if len(violations) > 0 {
			res.Errors = append(res.Errors, RowError{Row: i + 1, Violations: violations})
			continue
		}
		res.Valid = append(res.Valid, entity.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        date,
			Description: description,
			Category:    category,
			Type:        txType,
			Amount:      amount,
			Status:      status,
			CreatedAt:   now,
		})
	}
	return res, nil
}
