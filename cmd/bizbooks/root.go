package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tunde-fashola/bizbooks/internal/common"
	"github.com/tunde-fashola/bizbooks/internal/currency"
	"github.com/tunde-fashola/bizbooks/internal/storage/sqlite"
	"github.com/tunde-fashola/bizbooks/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "bizbooks",
	Short: "Bulk import and financial reconciliation for small-business records",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup()
	},
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func openStore(cfg *common.Config) (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open store at %s: %w", cfg.Storage.Path, err)
	}
	return store, nil
}

// newRateService wires the currency engine from config: an optional live
// fetcher and an optional YAML override of the static fallback table.
func newRateService(cfg *common.Config) (*currency.Service, error) {
	var static map[string]float64
	if cfg.Rates.StaticFile != "" {
		loaded, err := currency.LoadStaticRates(cfg.Rates.StaticFile)
		if err != nil {
			return nil, err
		}
		static = loaded
	}
	var fetcher currency.Fetcher
	if cfg.Rates.URL != "" {
		fetcher = currency.NewHTTPFetcher(cfg.Rates.URL, cfg.Rates.FetchTimeout, slog.Default())
	}
	return currency.NewService(currency.Config{
		Base:   cfg.Rates.Base,
		TTL:    cfg.Rates.TTL,
		Static: static,
	}, fetcher, slog.Default()), nil
}
