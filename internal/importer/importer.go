// Package importer turns raw spreadsheet cell matrices into validated
// domain records. Each import type partitions its non-empty data rows
// into valid records and row-indexed errors; a row is never silently
// dropped and never partially imported.
package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tunde-fashola/bizbooks/internal/common"
)

// Matrix is the in-memory spreadsheet: rows of raw cell values. Row 0 is
// the header and is never inspected. The byte-level codec lives outside
// this package.
type Matrix [][]string

// RowError collects every violation found on one spreadsheet row. Row is
// the displayed row number (data index + 1).
type RowError struct {
	Row        int      `json:"row"`
	Violations []string `json:"violations"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, strings.Join(e.Violations, ", "))
}

// Result partitions an import: every non-empty data row lands in exactly
// one of Valid or Errors.
type Result[T any] struct {
	Valid  []T        `json:"valid"`
	Errors []RowError `json:"errors"`
}

// ensureReadable rejects a sheet with no cells at all as a batch-level
// failure. A header-only sheet is fine and imports zero rows.
func ensureReadable(m Matrix) error {
	if len(m) == 0 {
		return common.NewAppError(common.CodeEmptySheet, "spreadsheet contains no rows", nil)
	}
	return nil
}

// cell returns the trimmed value at column i, or "" when the row is
// ragged and the column is absent.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseAmount parses a strictly positive finite number.
func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}

// parseNumericCell parses an optional numeric cell. A blank or
// unparseable cell yields (0, false): callers default to zero without a
// violation and skip range checks.
func parseNumericCell(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
