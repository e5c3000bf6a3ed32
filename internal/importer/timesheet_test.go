package importer

import (
	"testing"

	"github.com/tunde-fashola/bizbooks/constants"
)

func tsHeader() []string {
	return []string{"Contractor Name", "Customer Name", "Month (YYYY-MM)", "Standard Days Worked", "Overtime Days", "Overtime Hours", "Status (draft/submitted/approved)"}
}

func TestParseTimesheets(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		m := Matrix{tsHeader(),
			{"Jane Doe", "Acme Corp", "2024-01", "20", "2", "4", "approved"},
		}
		res, err := ParseTimesheets(m, testUser)
		if err != nil {
			t.Fatalf("ParseTimesheets: %v", err)
		}
		if len(res.Valid) != 1 {
			t.Fatalf("got %d valid, want 1: %v", len(res.Valid), res.Errors)
		}
		e := res.Valid[0]
		if e.StandardDays != 20 || e.OvertimeDays != 2 || e.OvertimeHours != 4 {
			t.Errorf("days = %v/%v/%v, want 20/2/4", e.StandardDays, e.OvertimeDays, e.OvertimeHours)
		}
		if e.Status != constants.TimesheetApproved {
			t.Errorf("Status = %q, want approved", e.Status)
		}
	})

	t.Run("blank numerics default to zero", func(t *testing.T) {
		m := Matrix{tsHeader(),
			{"Jane Doe", "Acme Corp", "2024-01", "", "n/a", "", ""},
		}
		res, err := ParseTimesheets(m, testUser)
		if err != nil {
			t.Fatalf("ParseTimesheets: %v", err)
		}
		if len(res.Valid) != 1 {
			t.Fatalf("got %d valid, want 1: %v", len(res.Valid), res.Errors)
		}
		e := res.Valid[0]
		if e.StandardDays != 0 || e.OvertimeDays != 0 || e.OvertimeHours != 0 {
			t.Errorf("days = %v/%v/%v, want zeros", e.StandardDays, e.OvertimeDays, e.OvertimeHours)
		}
		if e.Status != constants.TimesheetDraft {
			t.Errorf("Status = %q, want draft default", e.Status)
		}
	})

	t.Run("ranges enforced for parseable numbers", func(t *testing.T) {
		cases := []struct {
			name string
			row  []string
		}{
			{"standard days over 31", []string{"Jane", "Acme", "2024-01", "32", "0", "0", ""}},
			{"standard days negative", []string{"Jane", "Acme", "2024-01", "-1", "0", "0", ""}},
			{"overtime days negative", []string{"Jane", "Acme", "2024-01", "5", "-2", "0", ""}},
			{"overtime hours negative", []string{"Jane", "Acme", "2024-01", "5", "0", "-3", ""}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				res, err := ParseTimesheets(Matrix{tsHeader(), tc.row}, testUser)
				if err != nil {
					t.Fatalf("ParseTimesheets: %v", err)
				}
				if len(res.Errors) != 1 {
					t.Errorf("got %d errors, want 1: %+v", len(res.Errors), res)
				}
			})
		}
	})

	t.Run("month pattern", func(t *testing.T) {
		for _, month := range []string{"2024-1", "202401", "2024-13", "Jan 2024", ""} {
			res, err := ParseTimesheets(Matrix{tsHeader(), {"Jane", "Acme", month, "5", "0", "0", ""}}, testUser)
			if err != nil {
				t.Fatalf("ParseTimesheets: %v", err)
			}
			if len(res.Errors) != 1 {
				t.Errorf("month %q accepted", month)
			}
		}
	})

	t.Run("names required", func(t *testing.T) {
		res, err := ParseTimesheets(Matrix{tsHeader(), {"", "", "2024-01", "5", "0", "0", ""}}, testUser)
		if err != nil {
			t.Fatalf("ParseTimesheets: %v", err)
		}
		if len(res.Errors) != 1 || len(res.Errors[0].Violations) != 2 {
			t.Errorf("unexpected result: %+v", res.Errors)
		}
	})
}
