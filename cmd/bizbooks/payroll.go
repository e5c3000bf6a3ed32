package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tunde-fashola/bizbooks/internal/common"
	"github.com/tunde-fashola/bizbooks/internal/pipeline"
)

var (
	payrollMonth string
	payrollUser  string
)

var payrollCmd = &cobra.Command{
	Use:   "payroll",
	Short: "Generate payroll records for a month",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(payrollUser)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		cfg := common.LoadConfig()
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		members, err := store.ListTeamMembers(ctx, userID)
		if err != nil {
			return err
		}
		existing, err := store.ListPayrollRecords(ctx, userID)
		if err != nil {
			return err
		}

		proc := pipeline.NewProcessor(slog.Default(), nil)
		records, err := proc.GeneratePayroll(payrollMonth, members, existing)
		if err != nil {
			return err
		}
		if err := store.CreatePayrollBatch(ctx, records); err != nil {
			return err
		}
		for _, rec := range records {
			fmt.Printf("%s  %s  %s %s\n", rec.Month, rec.MemberName, rec.NetAmount, rec.Currency)
		}
		fmt.Printf("Generated %d payroll records for %s\n", len(records), payrollMonth)
		return nil
	},
}

func init() {
	payrollCmd.Flags().StringVar(&payrollMonth, "month", "", "target month (YYYY-MM)")
	payrollCmd.Flags().StringVar(&payrollUser, "user", "", "owning user id (UUID)")
	payrollCmd.MarkFlagRequired("month")
	payrollCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(payrollCmd)
}
