// Package storage abstracts the document store the import pipeline hands
// its records to. The pipeline itself never writes; callers persist one
// record at a time (explicitly non-atomic), except payroll batches which
// go through a single transactional write.
package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/internal/entity"
)

// Store is implemented by the SQLite backend; the interface keeps the
// CLI and tests independent of the engine.
type Store interface {
	SaveTransaction(ctx context.Context, tx *entity.Transaction) error
	SaveSubscription(ctx context.Context, sub *entity.Subscription) error
	SavePartner(ctx context.Context, p *entity.Partner) error
	SaveTimesheetRecord(ctx context.Context, rec *entity.TimesheetRecord) error

	SaveAssignment(ctx context.Context, a *entity.Assignment) error
	ListAssignments(ctx context.Context, userID uuid.UUID) ([]entity.Assignment, error)

	SaveTeamMember(ctx context.Context, m *entity.TeamMember) error
	ListTeamMembers(ctx context.Context, userID uuid.UUID) ([]entity.TeamMember, error)

	// CreatePayrollBatch persists a whole generated payroll run in one
	// transaction, so a month never ends up partially written.
	CreatePayrollBatch(ctx context.Context, records []entity.PayrollRecord) error
	ListPayrollRecords(ctx context.Context, userID uuid.UUID) ([]entity.PayrollRecord, error)

	SavePayment(ctx context.Context, p *entity.Payment) error
	ListPayments(ctx context.Context, targetID uuid.UUID) ([]entity.Payment, error)

	Close() error
}
