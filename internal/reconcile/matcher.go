// Package reconcile resolves imported timesheet entries against the
// caller-supplied contractor assignments.
package reconcile

import (
	"fmt"
	"strings"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

// Match pairs a timesheet entry with exactly one active assignment.
type Match struct {
	Entry      entity.TimesheetEntry `json:"entry"`
	Assignment entity.Assignment     `json:"assignment"`
}

// Unmatched pairs a timesheet entry with the reason it could not be
// matched. Unmatched entries are a first-class output, not errors: a
// human may need to create the missing assignment.
type Unmatched struct {
	Entry  entity.TimesheetEntry `json:"entry"`
	Reason string                `json:"reason"`
}

// MatchResult partitions the entries; every input entry appears in
// exactly one of the two lists, in input order.
type MatchResult struct {
	Matched   []Match     `json:"matched"`
	Unmatched []Unmatched `json:"unmatched"`
}

// MatchTimesheets resolves each entry by (contractor, customer) name,
// compared case-insensitively after trimming. Only active assignments
// match; an entry whose names hit only a non-active assignment is
// unmatched with that status named. The function is pure and
// deterministic: the first active assignment in supplied order wins.
func MatchTimesheets(entries []entity.TimesheetEntry, assignments []entity.Assignment) MatchResult {
	var res MatchResult
	for _, entry := range entries {
		active, anyStatus := findAssignment(entry, assignments)
		switch {
		case active != nil:
			res.Matched = append(res.Matched, Match{Entry: entry, Assignment: *active})
		case anyStatus != nil:
			res.Unmatched = append(res.Unmatched, Unmatched{
				Entry: entry,
				Reason: fmt.Sprintf("Assignment exists but is not active (%s) for %s → %s",
					anyStatus.Status, entry.ContractorName, entry.CustomerName),
			})
		default:
			res.Unmatched = append(res.Unmatched, Unmatched{
				Entry: entry,
				Reason: fmt.Sprintf("No assignment found for %s → %s",
					entry.ContractorName, entry.CustomerName),
			})
		}
	}
	return res
}

// findAssignment returns the first active assignment whose names match
// the entry, and otherwise the first assignment of any status that does.
func findAssignment(entry entity.TimesheetEntry, assignments []entity.Assignment) (active, anyStatus *entity.Assignment) {
	for i := range assignments {
		a := &assignments[i]
		if !namesEqual(entry.ContractorName, a.ContractorName) || !namesEqual(entry.CustomerName, a.CustomerName) {
			continue
		}
		if a.Status == constants.AssignmentActive {
			return a, nil
		}
		if anyStatus == nil {
			anyStatus = a
		}
	}
	return nil, anyStatus
}

func namesEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
