package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tunde-fashola/bizbooks/internal/common"
	"github.com/tunde-fashola/bizbooks/internal/importer"
	"github.com/tunde-fashola/bizbooks/internal/pipeline"
	"github.com/tunde-fashola/bizbooks/internal/sheet"
	"github.com/tunde-fashola/bizbooks/internal/storage"
)

var (
	importType string
	importUser string
)

var importCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Import a spreadsheet of records and persist the valid rows",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importType, "type", "", "import type: transactions, subscriptions, partners, or timesheets")
	importCmd.Flags().StringVar(&importUser, "user", "", "owning user id (UUID)")
	importCmd.MarkFlagRequired("type")
	importCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	kind, err := sheet.ParseKind(importType)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(importUser)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()
	matrix, err := sheet.ReadWorkbook(f)
	if err != nil {
		return err
	}

	cfg := common.LoadConfig()
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	rates, err := newRateService(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	proc := pipeline.NewProcessor(slog.Default(), rates)

	switch kind {
	case sheet.KindTransactions:
		res, err := proc.ImportTransactions(ctx, matrix, userID)
		if err != nil {
			return err
		}
		printRowErrors(res.Errors)
		saved := 0
		for i := range res.Valid {
			if err := store.SaveTransaction(ctx, &res.Valid[i]); err != nil {
				slog.Error("import.persist.failed", "row", i, "err", err)
				continue
			}
			saved++
		}
		fmt.Printf("Imported %d transactions (%d rows rejected)\n", saved, len(res.Errors))

	case sheet.KindSubscriptions:
		res, err := proc.ImportSubscriptions(ctx, matrix, userID)
		if err != nil {
			return err
		}
		printRowErrors(res.Errors)
		saved := 0
		for i := range res.Valid {
			if err := store.SaveSubscription(ctx, &res.Valid[i]); err != nil {
				slog.Error("import.persist.failed", "row", i, "err", err)
				continue
			}
			saved++
		}
		fmt.Printf("Imported %d subscriptions (%d rows rejected)\n", saved, len(res.Errors))

	case sheet.KindPartners:
		res, err := proc.ImportPartners(ctx, matrix, userID)
		if err != nil {
			return err
		}
		printRowErrors(res.Errors)
		saved := 0
		for i := range res.Valid {
			if err := store.SavePartner(ctx, &res.Valid[i]); err != nil {
				slog.Error("import.persist.failed", "row", i, "err", err)
				continue
			}
			saved++
		}
		fmt.Printf("Imported %d partners (%d rows rejected)\n", saved, len(res.Errors))

	case sheet.KindTimesheets:
		return importTimesheets(ctx, proc, store, matrix, userID)
	}
	return nil
}

func importTimesheets(ctx context.Context, proc *pipeline.Processor, store storage.Store, matrix importer.Matrix, userID uuid.UUID) error {
	assignments, err := store.ListAssignments(ctx, userID)
	if err != nil {
		return err
	}
	res, err := proc.ImportTimesheets(ctx, matrix, userID, assignments)
	if err != nil {
		return err
	}
	printRowErrors(res.Errors)
	for _, u := range res.Unmatched {
		fmt.Println("Unmatched:", u.Reason)
	}
	saved := 0
	for i := range res.Records {
		if err := store.SaveTimesheetRecord(ctx, &res.Records[i]); err != nil {
			slog.Error("import.persist.failed", "row", i, "err", err)
			continue
		}
		saved++
	}
	fmt.Printf("Imported %d timesheets (%d rows rejected, %d unmatched)\n",
		saved, len(res.Errors), len(res.Unmatched))
	return nil
}

func printRowErrors(errs []importer.RowError) {
	for _, e := range errs {
		fmt.Println(e.Error())
	}
}
