package importer

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

// Partner template columns, in order:
// Name, Email, Share Percentage, Role, Status.
const (
	partnerColName = iota
	partnerColEmail
	partnerColShare
	partnerColRole
	partnerColStatus
)

// Minimal local@domain.tld shape; full RFC parsing is not the point of
// an import screen.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParsePartners validates every non-empty data row of a partner sheet.
func ParsePartners(m Matrix, userID uuid.UUID) (*Result[entity.Partner], error) {
	if err := ensureReadable(m); err != nil {
		return nil, err
	}
	res := &Result[entity.Partner]{}
	now := time.Now().UTC()
	for i := 1; i < len(m); i++ {
		row := m[i]
		if rowEmpty(row) {
			continue
		}
		var violations []string

		name := cell(row, partnerColName)
		if name == "" {
			violations = append(violations, "Name is required")
		}

		email := cell(row, partnerColEmail)
		if email == "" {
			violations = append(violations, "Email is required")
		} else if !emailRe.MatchString(email) {
			violations = append(violations, "Invalid email address")
		}

		share, err := strconv.ParseFloat(cell(row, partnerColShare), 64)
		if err != nil || math.IsNaN(share) || math.IsInf(share, 0) || share <= 0 || share > 100 {
			violations = append(violations, "Share percentage must be a number between 0 and 100")
		}

		role := cell(row, partnerColRole)
		if role == "" {
			violations = append(violations, "Role is required")
		}

		status, err := constants.ParsePartnerStatus(cell(row, partnerColStatus))
		if err != nil {
			violations = append(violations, "Status must be one of: active, inactive")
		}

		if len(violations) > 0 {
			res.Errors = append(res.Errors, RowError{Row: i + 1, Violations: violations})
			continue
		}
		res.Valid = append(res.Valid, entity.Partner{
			ID:           uuid.New(),
			UserID:       userID,
			Name:         name,
			Email:        email,
			SharePercent: share,
			Role:         role,
			Status:       status,
			CreatedAt:    now,
		})
	}
	return res, nil
}
