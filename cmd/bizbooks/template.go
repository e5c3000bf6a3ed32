package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tunde-fashola/bizbooks/internal/sheet"
)

var (
	templateType string
	templateOut  string
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write an empty import template workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := sheet.ParseKind(templateType)
		if err != nil {
			return err
		}
		out := templateOut
		if out == "" {
			out = string(kind) + "-template.xlsx"
		}
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer f.Close()
		if err := sheet.WriteWorkbook(sheet.Template(kind), f); err != nil {
			return err
		}
		fmt.Println("Wrote", out)
		return nil
	},
}

func init() {
	templateCmd.Flags().StringVar(&templateType, "type", "", "import type: transactions, subscriptions, partners, or timesheets")
	templateCmd.Flags().StringVarP(&templateOut, "out", "o", "", "output path (default <type>-template.xlsx)")
	templateCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(templateCmd)
}
