// Package pipeline sequences the import stages: parse and validate the
// cell matrix, then for timesheets reconcile against assignments and
// derive financials. The processor performs no persistence and no
// retries; the caller persists what it returns.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tunde-fashola/bizbooks/internal/entity"
	"github.com/tunde-fashola/bizbooks/internal/fincalc"
	"github.com/tunde-fashola/bizbooks/internal/importer"
	"github.com/tunde-fashola/bizbooks/internal/reconcile"
)

// Processor coordinates parsing, matching, and financial computation.
type Processor struct {
	Logger *slog.Logger
	Rates  fincalc.Converter
}

func NewProcessor(logger *slog.Logger, rates fincalc.Converter) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, Rates: rates}
}

// TimesheetImport is the full outcome of a timesheet import: the parse
// partition, the financial records for matched rows, and the unmatched
// rows with reasons.
type TimesheetImport struct {
	Valid     []entity.TimesheetEntry  `json:"valid"`
	Errors    []importer.RowError      `json:"errors"`
	Records   []entity.TimesheetRecord `json:"records"`
	Unmatched []reconcile.Unmatched    `json:"unmatched"`
}

// ImportTransactions parses and validates a transaction sheet.
func (p *Processor) ImportTransactions(ctx context.Context, m importer.Matrix, userID uuid.UUID) (*importer.Result[entity.Transaction], error) {
	res, err := importer.ParseTransactions(m, userID)
	if err != nil {
		p.Logger.Error("pipeline.parse.failed", "type", "transactions", "err", err)
		return nil, err
	}
	p.Logger.Info("pipeline.parse.ok", "type", "transactions", "valid", len(res.Valid), "errors", len(res.Errors))
	return res, nil
}

// ImportSubscriptions parses and validates a subscription sheet.
func (p *Processor) ImportSubscriptions(ctx context.Context, m importer.Matrix, userID uuid.UUID) (*importer.Result[entity.Subscription], error) {
	res, err := importer.ParseSubscriptions(m, userID)
	if err != nil {
		p.Logger.Error("pipeline.parse.failed", "type", "subscriptions", "err", err)
		return nil, err
	}
	p.Logger.Info("pipeline.parse.ok", "type", "subscriptions", "valid", len(res.Valid), "errors", len(res.Errors))
	return res, nil
}

// ImportPartners parses and validates a partner sheet.
func (p *Processor) ImportPartners(ctx context.Context, m importer.Matrix, userID uuid.UUID) (*importer.Result[entity.Partner], error) {
	res, err := importer.ParsePartners(m, userID)
	if err != nil {
		p.Logger.Error("pipeline.parse.failed", "type", "partners", "err", err)
		return nil, err
	}
	p.Logger.Info("pipeline.parse.ok", "type", "partners", "valid", len(res.Valid), "errors", len(res.Errors))
	return res, nil
}

// ImportTimesheets runs the full timesheet flow: parse, match against
// the supplied assignments, and compute financials for matched rows.
func (p *Processor) ImportTimesheets(ctx context.Context, m importer.Matrix, userID uuid.UUID, assignments []entity.Assignment) (*TimesheetImport, error) {
	res, err := importer.ParseTimesheets(m, userID)
	if err != nil {
		p.Logger.Error("pipeline.parse.failed", "type", "timesheets", "err", err)
		return nil, err
	}
	p.Logger.Info("pipeline.parse.ok", "type", "timesheets", "valid", len(res.Valid), "errors", len(res.Errors))

	matched := reconcile.MatchTimesheets(res.Valid, assignments)
	p.Logger.Info("pipeline.match.ok", "matched", len(matched.Matched), "unmatched", len(matched.Unmatched))

	records := fincalc.ComputeTimesheetFinancials(ctx, matched.Matched, p.Rates)
	p.Logger.Info("pipeline.compute.ok", "records", len(records))

	return &TimesheetImport{
		Valid:     res.Valid,
		Errors:    res.Errors,
		Records:   records,
		Unmatched: matched.Unmatched,
	}, nil
}

// GeneratePayroll wraps the payroll computation with stage logging. The
// caller persists the returned records, ideally in one batch.
func (p *Processor) GeneratePayroll(month string, members []entity.TeamMember, existing []entity.PayrollRecord) ([]entity.PayrollRecord, error) {
	records, err := fincalc.GeneratePayroll(month, members, existing)
	if err != nil {
		p.Logger.Error("pipeline.payroll.rejected", "month", month, "err", err)
		return nil, err
	}
	p.Logger.Info("pipeline.payroll.ok", "month", month, "records", len(records))
	return records, nil
}
