// Package cmd implements the comptactl command line interface.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
	"github.com/comptaflow/backend/internal/infrastructure/config"
	"github.com/comptaflow/backend/internal/infrastructure/format"
	"github.com/comptaflow/backend/internal/infrastructure/logger"
)

var (
	cfg       *config.Config
	log       *zap.Logger
	formatter *format.Formatter

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "comptactl",
	Short: "Moroccan VAT accounting engine",
	Long: `comptactl runs the comptaflow accounting computations over plain JSON
ledger records: document VAT totals, monthly declaration filing with signed
XML export, and bank statement auto-reconciliation (lettrage).

Examples:
  # Document totals under the cash-basis regime
  comptactl totals documents.json --mode ENCAISSEMENT

  # File the January declaration
  comptactl declare --sales sales.json --purchases purchases.json --period 2025-01

  # Propose and apply bank matches
  comptactl reconcile --bank bank.json --documents documents.json --apply`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		log = logger.New(&logger.Config{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: cfg.Log.Output,
		})
		formatter = format.New(cfg.Export.Locale, valueobject.DefaultCurrency)
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Println("Error:", err)
	}
	if log != nil {
		_ = log.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
