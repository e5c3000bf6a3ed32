package importer

import (
	"regexp"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

// Timesheet template columns, in order:
// Contractor Name, Customer Name, Month, Standard Days Worked,
// Overtime Days, Overtime Hours, Status.
const (
	tsColContractor = iota
	tsColCustomer
	tsColMonth
	tsColStandardDays
	tsColOvertimeDays
	tsColOvertimeHours
	tsColStatus
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseTimesheets validates every non-empty data row of a timesheet
// sheet. Numeric day/hour cells that are blank or unparseable default to
// zero; parseable values outside their range are violations.
func ParseTimesheets(m Matrix, userID uuid.UUID) (*Result[entity.TimesheetEntry], error) {
	if err := ensureReadable(m); err != nil {
		return nil, err
	}
	res := &Result[entity.TimesheetEntry]{}
	for i := 1; i < len(m); i++ {
		row := m[i]
		if rowEmpty(row) {
			continue
		}
		var violations []string

		contractor := cell(row, tsColContractor)
		if contractor == "" {
			violations = append(violations, "Contractor name is required")
		}

		customer := cell(row, tsColCustomer)
		if customer == "" {
			violations = append(violations, "Customer name is required")
		}

		month := cell(row, tsColMonth)
		if !monthRe.MatchString(month) {
			violations = append(violations, "Month must be in YYYY-MM format")
		}

		standardDays, parsed := parseNumericCell(cell(row, tsColStandardDays))
		if parsed && (standardDays < 0 || standardDays > 31) {
			violations = append(violations, "Standard days worked must be between 0 and 31")
		}

		overtimeDays, parsed := parseNumericCell(cell(row, tsColOvertimeDays))
		if parsed && overtimeDays < 0 {
			violations = append(violations, "Overtime days must be zero or greater")
		}

		overtimeHours, parsed := parseNumericCell(cell(row, tsColOvertimeHours))
		if parsed && overtimeHours < 0 {
			violations = append(violations, "Overtime hours must be zero or greater")
		}

		status, err := constants.ParseTimesheetStatus(cell(row, tsColStatus))
		if err != nil {
			violations = append(violations, "Status must be one of: draft, submitted, approved")
		}

		if len(violations) > 0 {
			res.Errors = append(res.Errors, RowError{Row: i + 1, Violations: violations})
			continue
		}
		res.Valid = append(res.Valid, entity.TimesheetEntry{
			UserID:         userID,
			ContractorName: contractor,
			CustomerName:   customer,
			Month:          month,
			StandardDays:   standardDays,
			OvertimeDays:   overtimeDays,
			OvertimeHours:  overtimeHours,
			Status:         status,
		})
	}
	return res, nil
}
