package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(":memory:")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndListAssignments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	first := entity.Assignment{
		UserID:           userID,
		ContractorName:   "Jane Doe",
		CustomerName:     "Acme Corp",
		InternalDayRate:  400,
		InternalCurrency: "EUR",
		ExternalDayRate:  650,
		ExternalCurrency: "USD",
		Status:           constants.AssignmentActive,
	}
	second := first
	second.ContractorName = "John Roe"
	second.Status = constants.AssignmentCompleted

	if err := store.SaveAssignment(ctx, &first); err != nil {
		t.Fatalf("SaveAssignment: %v", err)
	}
	if err := store.SaveAssignment(ctx, &second); err != nil {
		t.Fatalf("SaveAssignment: %v", err)
	}

	got, err := store.ListAssignments(ctx, userID)
	if err != nil {
		t.Fatalf("ListAssignments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d assignments, want 2", len(got))
	}
	// insertion order preserved: the matcher's tie-break depends on it
	if got[0].ContractorName != "Jane Doe" || got[1].ContractorName != "John Roe" {
		t.Errorf("order = %q, %q", got[0].ContractorName, got[1].ContractorName)
	}
	if got[0].Status != constants.AssignmentActive {
		t.Errorf("Status = %q, want active", got[0].Status)
	}
	if got[0].InternalDayRate != 400 || got[0].InternalCurrency != "EUR" {
		t.Errorf("rates not round-tripped: %+v", got[0])
	}

	other, err := store.ListAssignments(ctx, uuid.New())
	if err != nil {
		t.Fatalf("ListAssignments: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("got %d assignments for other user, want 0", len(other))
	}
}

func TestSaveTransactionAndTimesheetRecord(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	tx := entity.Transaction{
		UserID: userID, Date: "2024-01-15", Description: "Client Payment",
		Category: "Income", Type: constants.TxRevenue, Amount: 5000,
		Status: constants.TxPosted, CreatedAt: time.Now(),
	}
	if err := store.SaveTransaction(ctx, &tx); err != nil {
		t.Fatalf("SaveTransaction: %v", err)
	}
	if tx.ID == uuid.Nil {
		t.Error("transaction id not assigned")
	}

	rec := entity.TimesheetRecord{
		TimesheetEntry: entity.TimesheetEntry{
			UserID: userID, ContractorName: "Jane Doe", CustomerName: "Acme Corp",
			Month: "2024-01", StandardDays: 20, OvertimeDays: 2, OvertimeHours: 4,
			Status: constants.TimesheetApproved,
		},
		AssignmentID:     uuid.New(),
		InternalDayRate:  400,
		InternalCurrency: "EUR",
		ExternalDayRate:  650,
		ExternalCurrency: "USD",
		TotalDaysWorked:  22.5,
		InternalCost:     9000,
		InternalCostBase: 9900,
		ExternalRevenue:  14625,
		Profit:           4725,
		ExchangeRate:     1.1,
	}
	// foreign key requires the assignment row
	a := entity.Assignment{ID: rec.AssignmentID, UserID: userID, ContractorName: "Jane Doe",
		CustomerName: "Acme Corp", InternalDayRate: 400, InternalCurrency: "EUR",
		ExternalDayRate: 650, ExternalCurrency: "USD", Status: constants.AssignmentActive}
	if err := store.SaveAssignment(ctx, &a); err != nil {
		t.Fatalf("SaveAssignment: %v", err)
	}
	if err := store.SaveTimesheetRecord(ctx, &rec); err != nil {
		t.Fatalf("SaveTimesheetRecord: %v", err)
	}
}

func TestPayrollBatchIsAtomic(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := uuid.New()

	ada := entity.TeamMember{UserID: userID, Name: "Ada", BaseSalary: decimal.NewFromInt(5000),
		Currency: "USD", Status: constants.MemberActive}
	ben := entity.TeamMember{UserID: userID, Name: "Ben", BaseSalary: decimal.NewFromInt(4200),
		Currency: "USD", Status: constants.MemberActive}
	for _, m := range []*entity.TeamMember{&ada, &ben} {
		if err := store.SaveTeamMember(ctx, m); err != nil {
			t.Fatalf("SaveTeamMember: %v", err)
		}
	}

	batch := []entity.PayrollRecord{
		{UserID: userID, MemberID: ada.ID, MemberName: "Ada", Month: "2024-01",
			BaseSalary: ada.BaseSalary, NetAmount: ada.BaseSalary, Currency: "USD",
			Status: constants.PayrollPending, CreatedAt: time.Now()},
		{UserID: userID, MemberID: ben.ID, MemberName: "Ben", Month: "2024-01",
			BaseSalary: ben.BaseSalary, NetAmount: ben.BaseSalary, Currency: "USD",
			Status: constants.PayrollPending, CreatedAt: time.Now()},
	}
	if err := store.CreatePayrollBatch(ctx, batch); err != nil {
		t.Fatalf("CreatePayrollBatch: %v", err)
	}

	got, err := store.ListPayrollRecords(ctx, userID)
	if err != nil {
		t.Fatalf("ListPayrollRecords: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d payroll records, want 2", len(got))
	}
	if !got[0].NetAmount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("NetAmount = %s, want 5000", got[0].NetAmount)
	}

	// a batch violating the (member, month) uniqueness rolls back whole
	dup := []entity.PayrollRecord{
		{UserID: userID, MemberID: ada.ID, MemberName: "Ada", Month: "2024-02",
			BaseSalary: ada.BaseSalary, NetAmount: ada.BaseSalary, Currency: "USD",
			Status: constants.PayrollPending, CreatedAt: time.Now()},
		{UserID: userID, MemberID: ben.ID, MemberName: "Ben", Month: "2024-01",
			BaseSalary: ben.BaseSalary, NetAmount: ben.BaseSalary, Currency: "USD",
			Status: constants.PayrollPending, CreatedAt: time.Now()},
	}
	if err := store.CreatePayrollBatch(ctx, dup); err == nil {
		t.Fatal("duplicate batch accepted")
	}
	got, err = store.ListPayrollRecords(ctx, userID)
	if err != nil {
		t.Fatalf("ListPayrollRecords: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d records after failed batch, want 2 (nothing from the failed batch)", len(got))
	}
}

func TestPaymentsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	target := uuid.New()

	for _, p := range []entity.Payment{
		{TargetID: target, Amount: decimal.RequireFromString("30"), Date: "2024-01-10"},
		{TargetID: target, Amount: decimal.RequireFromString("20.50"), Date: "2024-01-05"},
	} {
		p := p
		if err := store.SavePayment(ctx, &p); err != nil {
			t.Fatalf("SavePayment: %v", err)
		}
	}

	got, err := store.ListPayments(ctx, target)
	if err != nil {
		t.Fatalf("ListPayments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d payments, want 2", len(got))
	}
	if !got[1].Amount.Equal(decimal.RequireFromString("20.5")) {
		t.Errorf("Amount = %s, want 20.5", got[1].Amount)
	}
}
