package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/comptaflow/backend/internal/domain/billing"
)

var numberType string

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Build and parse document numbers",
}

var numberNextCmd = &cobra.Command{
	Use:   "next <year> <sequence>",
	Short: "Build the document number for a year and sequence",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		docType := billing.DocumentType(numberType)
		if !docType.IsValid() {
			return fmt.Errorf("invalid document type %q", numberType)
		}

		year, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		sequence, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid sequence %q", args[1])
		}

		fmt.Println(billing.BuildDocumentNumber(billing.NumberSpec{
			Prefix:    prefixFor(docType),
			Year:      year,
			Sequence:  sequence,
			Separator: cfg.Numbering.Separator,
		}))
		return nil
	},
}

var numberParseCmd = &cobra.Command{
	Use:   "parse <number>",
	Short: "Split a document number into prefix, year and sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, ok := billing.ParseDocumentNumber(args[0])
		if !ok {
			return fmt.Errorf("unparseable document number %q", args[0])
		}
		fmt.Printf("prefix=%s year=%d sequence=%d\n", parsed.Prefix, parsed.Year, parsed.Sequence)
		return nil
	},
}

func prefixFor(docType billing.DocumentType) string {
	switch docType {
	case billing.DocumentTypeQuote:
		return cfg.Numbering.QuotePrefix
	case billing.DocumentTypeCreditNote:
		return cfg.Numbering.CreditPrefix
	default:
		return cfg.Numbering.InvoicePrefix
	}
}

func init() {
	numberNextCmd.Flags().StringVar(&numberType, "type", string(billing.DocumentTypeInvoice), "Document type (INVOICE, QUOTE, PURCHASE, CREDIT_NOTE)")
	numberCmd.AddCommand(numberNextCmd)
	numberCmd.AddCommand(numberParseCmd)
	rootCmd.AddCommand(numberCmd)
}
