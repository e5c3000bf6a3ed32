// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface using the pure Go driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/tunde-fashola/bizbooks/constants"
	"github.com/tunde-fashola/bizbooks/internal/entity"
	"github.com/tunde-fashola/bizbooks/internal/storage"
)

var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath, creating parent
// directories and running migrations. Use ":memory:" for tests.
func New(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveTransaction(ctx context.Context, tx *entity.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, user_id, tx_date, description, category, tx_type, amount, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID.String(), tx.UserID.String(), tx.Date, tx.Description, tx.Category,
		string(tx.Type), tx.Amount, string(tx.Status), tx.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveSubscription(ctx context.Context, sub *entity.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, user_id, name, cost, billing_cycle, next_billing_date, category, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID.String(), sub.UserID.String(), sub.Name, sub.Cost, string(sub.BillingCycle),
		sub.NextBillingDate, sub.Category, string(sub.Status), sub.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SavePartner(ctx context.Context, p *entity.Partner) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO partners (id, user_id, name, email, share_percent, role, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.UserID.String(), p.Name, p.Email, p.SharePercent,
		p.Role, string(p.Status), p.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("insert partner: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveTimesheetRecord(ctx context.Context, rec *entity.TimesheetRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO timesheet_records (
			id, user_id, contractor_name, customer_name, month,
			standard_days, overtime_days, overtime_hours, status,
			assignment_id, internal_day_rate, internal_currency,
			external_day_rate, external_currency, total_days_worked,
			internal_cost, internal_cost_base, external_revenue, profit, exchange_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.UserID.String(), rec.ContractorName, rec.CustomerName, rec.Month,
		rec.StandardDays, rec.OvertimeDays, rec.OvertimeHours, string(rec.Status),
		rec.AssignmentID.String(), rec.InternalDayRate, rec.InternalCurrency,
		rec.ExternalDayRate, rec.ExternalCurrency, rec.TotalDaysWorked,
		rec.InternalCost, rec.InternalCostBase, rec.ExternalRevenue, rec.Profit, rec.ExchangeRate)
	if err != nil {
		return fmt.Errorf("insert timesheet record: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveAssignment(ctx context.Context, a *entity.Assignment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assignments (id, user_id, contractor_name, customer_name,
			internal_day_rate, internal_currency, external_day_rate, external_currency, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID.String(), a.UserID.String(), a.ContractorName, a.CustomerName,
		a.InternalDayRate, a.InternalCurrency, a.ExternalDayRate, a.ExternalCurrency, string(a.Status))
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListAssignments(ctx context.Context, userID uuid.UUID) ([]entity.Assignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, contractor_name, customer_name,
			internal_day_rate, internal_currency, external_day_rate, external_currency, status
		FROM assignments WHERE user_id = ? ORDER BY rowid`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	var out []entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		var id, uid, status string
		if err := rows.Scan(&id, &uid, &a.ContractorName, &a.CustomerName,
			&a.InternalDayRate, &a.InternalCurrency, &a.ExternalDayRate, &a.ExternalCurrency, &status); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		if a.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse assignment id: %w", err)
		}
		if a.UserID, err = uuid.Parse(uid); err != nil {
			return nil, fmt.Errorf("parse assignment user id: %w", err)
		}
		a.Status = constants.AssignmentStatus(status)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveTeamMember(ctx context.Context, m *entity.TeamMember) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO team_members (id, user_id, name, base_salary, currency, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID.String(), m.UserID.String(), m.Name, m.BaseSalary.String(), m.Currency, string(m.Status))
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListTeamMembers(ctx context.Context, userID uuid.UUID) ([]entity.TeamMember, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, name, base_salary, currency, status
		FROM team_members WHERE user_id = ? ORDER BY name`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("query team members: %w", err)
	}
	defer rows.Close()

	var out []entity.TeamMember
	for rows.Next() {
		var m entity.TeamMember
		var id, uid, salary, status string
		if err := rows.Scan(&id, &uid, &m.Name, &salary, &m.Currency, &status); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		if m.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse member id: %w", err)
		}
		if m.UserID, err = uuid.Parse(uid); err != nil {
			return nil, fmt.Errorf("parse member user id: %w", err)
		}
		if m.BaseSalary, err = decimal.NewFromString(salary); err != nil {
			return nil, fmt.Errorf("parse member salary: %w", err)
		}
		m.Status = constants.MemberStatus(status)
		out = append(out, m)
	}
	return out, rows.Err()
}

// CreatePayrollBatch inserts a whole payroll run inside one transaction:
// either every record for the month lands or none do.
func (s *SQLiteStore) CreatePayrollBatch(ctx context.Context, records []entity.PayrollRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO payroll_records (id, user_id, member_id, member_name, month,
			base_salary, net_amount, currency, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare payroll insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		rec := &records[i]
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		if _, err := stmt.ExecContext(ctx,
			rec.ID.String(), rec.UserID.String(), rec.MemberID.String(), rec.MemberName, rec.Month,
			rec.BaseSalary.String(), rec.NetAmount.String(), rec.Currency, string(rec.Status),
			rec.CreatedAt.Unix()); err != nil {
			return fmt.Errorf("insert payroll record for %s: %w", rec.MemberName, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit payroll batch: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListPayrollRecords(ctx context.Context, userID uuid.UUID) ([]entity.PayrollRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, member_id, member_name, month, base_salary, net_amount, currency, status
		FROM payroll_records WHERE user_id = ? ORDER BY month, member_name`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("query payroll records: %w", err)
	}
	defer rows.Close()

	var out []entity.PayrollRecord
	for rows.Next() {
		var rec entity.PayrollRecord
		var id, uid, mid, salary, net, status string
		if err := rows.Scan(&id, &uid, &mid, &rec.MemberName, &rec.Month, &salary, &net, &rec.Currency, &status); err != nil {
			return nil, fmt.Errorf("scan payroll record: %w", err)
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse payroll id: %w", err)
		}
		if rec.UserID, err = uuid.Parse(uid); err != nil {
			return nil, fmt.Errorf("parse payroll user id: %w", err)
		}
		if rec.MemberID, err = uuid.Parse(mid); err != nil {
			return nil, fmt.Errorf("parse payroll member id: %w", err)
		}
		if rec.BaseSalary, err = decimal.NewFromString(salary); err != nil {
			return nil, fmt.Errorf("parse payroll salary: %w", err)
		}
		if rec.NetAmount, err = decimal.NewFromString(net); err != nil {
			return nil, fmt.Errorf("parse payroll net amount: %w", err)
		}
		rec.Status = constants.PayrollStatus(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SavePayment(ctx context.Context, p *entity.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (id, target_id, amount, pay_date) VALUES (?, ?, ?, ?)`,
		p.ID.String(), p.TargetID.String(), p.Amount.String(), p.Date)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListPayments(ctx context.Context, targetID uuid.UUID) ([]entity.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, target_id, amount, pay_date FROM payments WHERE target_id = ? ORDER BY rowid`,
		targetID.String())
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var out []entity.Payment
	for rows.Next() {
		var p entity.Payment
		var id, tid, amount string
		if err := rows.Scan(&id, &tid, &amount, &p.Date); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if p.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse payment id: %w", err)
		}
		if p.TargetID, err = uuid.Parse(tid); err != nil {
			return nil, fmt.Errorf("parse payment target id: %w", err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse payment amount: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
