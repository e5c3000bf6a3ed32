// Package sheet is the thin adapter between workbook files and the
// in-memory cell matrix the pipeline consumes, plus the import template
// generator. The pipeline itself never touches file bytes.
package sheet

import (
	"fmt"

	"github.com/tunde-fashola/bizbooks/internal/common"
	"github.com/tunde-fashola/bizbooks/internal/importer"
)

// Kind selects an import type.
type Kind string

const (
	KindTransactions  Kind = "transactions"
	KindSubscriptions Kind = "subscriptions"
	KindPartners      Kind = "partners"
	KindTimesheets    Kind = "timesheets"
)

// templateHeaders is the column contract per import type. Row 0 of every
// uploaded sheet is assumed to hold these, in order, and is skipped by
// the parsers.
var templateHeaders = map[Kind][]string{
	KindTransactions: {
		"Date (YYYY-MM-DD)",
		"Description",
		"Category",
		"Type (revenue/expense)",
		"Amount",
		"Status (draft/posted)",
	},
	KindSubscriptions: {
		"Name",
		"Cost",
		"Billing Cycle (monthly/annual)",
		"Next Billing Date (YYYY-MM-DD)",
		"Category",
		"Status (active/cancelled/paused)",
	},
	KindPartners: {
		"Name",
		"Email",
		"Share Percentage (0-100)",
		"Role",
		"Status (active/inactive)",
	},
	KindTimesheets: {
		"Contractor Name",
		"Customer Name",
		"Month (YYYY-MM)",
		"Standard Days Worked",
		"Overtime Days",
		"Overtime Hours",
		"Status (draft/submitted/approved)",
	},
}

// ParseKind resolves a user-supplied import type name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := templateHeaders[k]; !ok {
		return "", common.NewAppError(common.CodeUnknownImport,
			fmt.Sprintf("unknown import type %q (expected transactions, subscriptions, partners, or timesheets)", s), nil)
	}
	return k, nil
}

// Headers returns the column headers for an import type.
func Headers(k Kind) []string {
	return templateHeaders[k]
}

// Template returns the header-only cell matrix for an import type.
func Template(k Kind) importer.Matrix {
	return importer.Matrix{templateHeaders[k]}
}
