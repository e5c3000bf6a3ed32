package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tunde-fashola/bizbooks/internal/common"
	"github.com/tunde-fashola/bizbooks/internal/fincalc"
)

var (
	paymentsTarget string
	paymentsAmount string
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Summarize payments received against a target amount",
	RunE: func(cmd *cobra.Command, args []string) error {
		targetID, err := uuid.Parse(paymentsTarget)
		if err != nil {
			return fmt.Errorf("invalid --target: %w", err)
		}
		target, err := decimal.NewFromString(paymentsAmount)
		if err != nil {
			return fmt.Errorf("invalid --amount: %w", err)
		}
		cfg := common.LoadConfig()
		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		payments, err := store.ListPayments(cmd.Context(), targetID)
		if err != nil {
			return err
		}
		summary := fincalc.SummarizePayments(target, payments)
		fmt.Printf("Paid %s of %s (%s remaining): %s", summary.TotalPaid, target, summary.RemainingBalance, summary.Status)
		if summary.LastPaymentDate != "" {
			fmt.Printf(", last payment %s", summary.LastPaymentDate)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	paymentsCmd.Flags().StringVar(&paymentsTarget, "target", "", "target transaction or timesheet id (UUID)")
	paymentsCmd.Flags().StringVar(&paymentsAmount, "amount", "", "target amount")
	paymentsCmd.MarkFlagRequired("target")
	paymentsCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(paymentsCmd)
}
