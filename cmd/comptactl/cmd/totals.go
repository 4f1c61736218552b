package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/comptaflow/backend/internal/domain/billing"
)

var totalsMode string

var totalsCmd = &cobra.Command{
	Use:   "totals <documents.json>",
	Short: "Compute HT/TVA/TTC totals per document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := billing.VATMode(totalsMode)
		if !mode.IsValid() {
			return fmt.Errorf("invalid VAT mode %q, want DEBIT or ENCAISSEMENT", totalsMode)
		}

		docs, err := loadDocuments(args[0])
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DOCUMENT\tTYPE\tHT\tTVA\tTTC\tRESTE DU")
		for i := range docs {
			totals := billing.ComputeDocumentTotals(&docs[i], mode)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				docs[i].ID,
				docs[i].Type,
				formatter.Amount(totals.HT.Amount()),
				formatter.Amount(totals.VATAmount.Amount()),
				formatter.Amount(totals.TTC.Amount()),
				formatter.Amount(totals.AmountDue.Amount()),
			)
			if totals.CashBasis != nil {
				fmt.Fprintf(w, "\tTVA encaissee\t\t%s\t\t\n",
					formatter.Amount(totals.CashBasis.CollectedTotal))
			}
		}
		return w.Flush()
	},
}

func init() {
	totalsCmd.Flags().StringVar(&totalsMode, "mode", string(billing.VATModeDebit), "VAT regime (DEBIT or ENCAISSEMENT)")
	rootCmd.AddCommand(totalsCmd)
}
