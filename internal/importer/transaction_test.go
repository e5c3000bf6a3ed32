package importer

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/common"
)

var testUser = uuid.MustParse("6aa12c93-3d93-4f0e-93a3-9a4be0f3c2fb")

func txHeader() []string {
	return []string{"Date (YYYY-MM-DD)", "Description", "Category", "Type (revenue/expense)", "Amount", "Status (draft/posted)"}
}

func TestParseTransactions(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		m := Matrix{txHeader(),
			{"2024-01-15", "Client Payment", "Income", "revenue", "5000", "posted"},
		}
		res, err := ParseTransactions(m, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Valid) != 1 || len(res.Errors) != 0 {
			t.Fatalf("got %d valid, %d errors, want 1, 0", len(res.Valid), len(res.Errors))
		}
		tx := res.Valid[0]
		if tx.Amount != 5000 {
			t.Errorf("Amount = %v, want 5000", tx.Amount)
		}
		if tx.Type != constants.TxRevenue {
			t.Errorf("Type = %q, want revenue", tx.Type)
		}
		if tx.Status != constants.TxPosted {
			t.Errorf("Status = %q, want posted", tx.Status)
		}
		if tx.UserID != testUser {
			t.Errorf("UserID = %v, want %v", tx.UserID, testUser)
		}
		if tx.ID == uuid.Nil {
			t.Error("ID not assigned")
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		m := Matrix{txHeader(),
			{"2024-01-15", "Refund", "Income", "revenue", "-5", "posted"},
		}
		res, err := ParseTransactions(m, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Valid) != 0 || len(res.Errors) != 1 {
			t.Fatalf("got %d valid, %d errors, want 0, 1", len(res.Valid), len(res.Errors))
		}
		if got := res.Errors[0].Error(); got != "Row 2: Amount must be a positive number" {
			t.Errorf("error = %q", got)
		}
	})

	t.Run("all violations collected on one row", func(t *testing.T) {
		m := Matrix{txHeader(),
			{"not-a-date", "", "", "transfer", "abc", "archived"},
		}
		res, err := ParseTransactions(m, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Errors) != 1 {
			t.Fatalf("got %d error entries, want 1", len(res.Errors))
		}
		e := res.Errors[0]
		if e.Row != 2 {
			t.Errorf("Row = %d, want 2", e.Row)
		}
		if len(e.Violations) != 6 {
			t.Errorf("got %d violations, want 6: %v", len(e.Violations), e.Violations)
		}
		if !strings.HasPrefix(e.Error(), "Row 2: ") {
			t.Errorf("error format: %q", e.Error())
		}
	})

	t.Run("status defaults to draft", func(t *testing.T) {
		m := Matrix{txHeader(),
			{"2024-01-15", "Hosting", "Infrastructure", "expense", "40", ""},
		}
		res, err := ParseTransactions(m, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Valid) != 1 {
			t.Fatalf("got %d valid, want 1: %v", len(res.Valid), res.Errors)
		}
		if res.Valid[0].Status != constants.TxDraft {
			t.Errorf("Status = %q, want draft", res.Valid[0].Status)
		}
	})

	t.Run("date formats normalized", func(t *testing.T) {
		m := Matrix{txHeader(),
			{"01/15/2024", "A", "Cat", "expense", "1", ""},
			{"45306", "B", "Cat", "expense", "1", ""},
		}
		res, err := ParseTransactions(m, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Valid) != 2 {
			t.Fatalf("got %d valid, want 2: %v", len(res.Valid), res.Errors)
		}
		for _, tx := range res.Valid {
			if tx.Date != "2024-01-15" {
				t.Errorf("Date = %q, want 2024-01-15", tx.Date)
			}
		}
	})

	t.Run("every non-empty row lands in exactly one partition", func(t *testing.T) {
		m := Matrix{txHeader(),
			{"2024-01-15", "Good", "Cat", "revenue", "10", "posted"},
			{"", "", "", "", "", ""},
			{"2024-01-16", "Bad", "Cat", "revenue", "-1", "posted"},
			{},
			{"2024-01-17", "Good2", "Cat", "expense", "3", ""},
		}
		res, err := ParseTransactions(m, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Valid)+len(res.Errors) != 3 {
			t.Errorf("valid %d + errors %d != 3 non-empty rows", len(res.Valid), len(res.Errors))
		}
	})

	t.Run("header only imports nothing", func(t *testing.T) {
		res, err := ParseTransactions(Matrix{txHeader()}, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Valid) != 0 || len(res.Errors) != 0 {
			t.Errorf("got %d valid, %d errors, want none", len(res.Valid), len(res.Errors))
		}
	})

	t.Run("no rows is a batch failure", func(t *testing.T) {
		_, err := ParseTransactions(Matrix{}, testUser)
		if !common.HasCode(err, common.CodeEmptySheet) {
			t.Errorf("err = %v, want %s", err, common.CodeEmptySheet)
		}
	})

	t.Run("ragged row treated as missing cells", func(t *testing.T) {
		m := Matrix{txHeader(),
			{"2024-01-15", "Short row", "Cat", "expense", "12"},
		}
		res, err := ParseTransactions(m, testUser)
		if err != nil {
			t.Fatalf("ParseTransactions: %v", err)
		}
		if len(res.Valid) != 1 {
			t.Fatalf("got %d valid, want 1: %v", len(res.Valid), res.Errors)
		}
		if res.Valid[0].Status != constants.TxDraft {
			t.Errorf("Status = %q, want draft default", res.Valid[0].Status)
		}
	})
}
