package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apprecon "github.com/comptaflow/backend/internal/application/reconciliation"
)

var (
	reconcileBank      string
	reconcileDocuments string
	reconcileApply     bool
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Match bank statement entries against open documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := loadBankEntries(reconcileBank)
		if err != nil {
			return err
		}
		docs, err := loadDocuments(reconcileDocuments)
		if err != nil {
			return err
		}

		service := apprecon.NewService(log)
		matches := service.Propose(entries, docs)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "BANK ENTRY\tDOCUMENT\tSCORE")
		for _, m := range matches {
			fmt.Fprintf(w, "%s\t%s\t%.2f\n", m.BankEntryID, m.DocumentID, m.Score)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if !reconcileApply {
			log.Info("Dry run, no records mutated", zap.Int("proposals", len(matches)))
			return nil
		}

		applied := service.ApplyMatches(entries, docs, matches)
		log.Info("Lettrage pass complete",
			zap.Int("proposals", len(matches)),
			zap.Int("applied", applied))

		if err := writeJSON(reconcileBank, entries); err != nil {
			return err
		}
		return writeJSON(reconcileDocuments, docs)
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileBank, "bank", "", "Bank statement entries JSON file")
	reconcileCmd.Flags().StringVar(&reconcileDocuments, "documents", "", "Ledger documents JSON file")
	reconcileCmd.Flags().BoolVar(&reconcileApply, "apply", false, "Apply proposed matches and write records back")
	_ = reconcileCmd.MarkFlagRequired("bank")
	_ = reconcileCmd.MarkFlagRequired("documents")
	rootCmd.AddCommand(reconcileCmd)
}
