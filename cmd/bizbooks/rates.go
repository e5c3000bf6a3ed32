package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tunde-fashola/bizbooks/internal/common"
)

var ratesRefresh bool

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show the exchange-rate table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := common.LoadConfig()
		svc, err := newRateService(cfg)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if ratesRefresh {
			svc.Refresh(ctx)
		}
		codes := svc.Codes()
		sort.Strings(codes)
		for _, code := range codes {
			fmt.Printf("%s  %.6f %s\n", code, svc.Rate(ctx, code), svc.Base())
		}
		return nil
	},
}

func init() {
	ratesCmd.Flags().BoolVar(&ratesRefresh, "refresh", false, "fetch a fresh table before printing")
	rootCmd.AddCommand(ratesCmd)
}
