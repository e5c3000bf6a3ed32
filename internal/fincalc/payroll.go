package fincalc

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/common"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

var payrollMonthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// GeneratePayroll produces one pending payroll record per active team
// member for the given YYYY-MM month. The operation is all-or-nothing:
// it is rejected outright when any existing record already covers the
// month (idempotency guard at month granularity) or when no member is
// active. Net amount equals base salary; bonuses and deductions are
// edited on the persisted records afterwards.
func GeneratePayroll(month string, members []entity.TeamMember, existing []entity.PayrollRecord) ([]entity.PayrollRecord, error) {
	if !payrollMonthRe.MatchString(month) {
		return nil, common.NewAppError(common.CodeInvalidMonth,
			fmt.Sprintf("month %q is not in YYYY-MM format", month), nil)
	}
	for _, rec := range existing {
		if rec.Month == month {
			return nil, common.NewAppError(common.CodePayrollExists,
				fmt.Sprintf("payroll for %s already exists", month), nil)
		}
	}

	now := time.Now().UTC()
	var records []entity.PayrollRecord
	for _, m := range members {
		if m.Status != constants.MemberActive {
			continue
		}
		records = append(records, entity.PayrollRecord{
			ID:         uuid.New(),
			UserID:     m.UserID,
			MemberID:   m.ID,
			MemberName: m.Name,
			Month:      month,
			BaseSalary: m.BaseSalary,
			NetAmount:  m.BaseSalary,
			Currency:   m.Currency,
			Status:     constants.PayrollPending,
			CreatedAt:  now,
		})
	}
	if len(records) == 0 {
		return nil, common.NewAppError(common.CodeNoActiveMembers,
			"no active team members to generate payroll for", nil)
	}
	return records, nil
}
