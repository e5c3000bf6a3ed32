package sqlite

import "database/sql"

// schema is run on startup to ensure tables exist. Monetary decimals
// (salaries, payments) are stored as TEXT to keep them exact; derived
// float figures are stored as REAL.
const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    tx_date TEXT NOT NULL,
    description TEXT NOT NULL,
    category TEXT NOT NULL,
    tx_type TEXT NOT NULL,
    amount REAL NOT NULL,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS subscriptions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    cost REAL NOT NULL,
    billing_cycle TEXT NOT NULL,
    next_billing_date TEXT NOT NULL,
    category TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS partners (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    share_percent REAL NOT NULL,
    role TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS assignments (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    contractor_name TEXT NOT NULL,
    customer_name TEXT NOT NULL,
    internal_day_rate REAL NOT NULL,
    internal_currency TEXT NOT NULL,
    external_day_rate REAL NOT NULL,
    external_currency TEXT NOT NULL,
    status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS timesheet_records (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    contractor_name TEXT NOT NULL,
    customer_name TEXT NOT NULL,
    month TEXT NOT NULL,
    standard_days REAL NOT NULL,
    overtime_days REAL NOT NULL,
    overtime_hours REAL NOT NULL,
    status TEXT NOT NULL,
    assignment_id TEXT NOT NULL,
    internal_day_rate REAL NOT NULL,
    internal_currency TEXT NOT NULL,
    external_day_rate REAL NOT NULL,
    external_currency TEXT NOT NULL,
    total_days_worked REAL NOT NULL,
    internal_cost REAL NOT NULL,
    internal_cost_base REAL NOT NULL,
    external_revenue REAL NOT NULL,
    profit REAL NOT NULL,
    exchange_rate REAL NOT NULL,
    FOREIGN KEY (assignment_id) REFERENCES assignments(id)
);

CREATE TABLE IF NOT EXISTS team_members (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    base_salary TEXT NOT NULL,
    currency TEXT NOT NULL,
    status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payroll_records (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    member_name TEXT NOT NULL,
    month TEXT NOT NULL,
    base_salary TEXT NOT NULL,
    net_amount TEXT NOT NULL,
    currency TEXT NOT NULL,
    status TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    UNIQUE (member_id, month),
    FOREIGN KEY (member_id) REFERENCES team_members(id)
);

CREATE TABLE IF NOT EXISTS payments (
    id TEXT PRIMARY KEY,
    target_id TEXT NOT NULL,
    amount TEXT NOT NULL,
    pay_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_user ON transactions(user_id);
CREATE INDEX IF NOT EXISTS idx_payroll_month ON payroll_records(month);
CREATE INDEX IF NOT EXISTS idx_payments_target ON payments(target_id);
`

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
