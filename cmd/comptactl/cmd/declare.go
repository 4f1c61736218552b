package cmd

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appvat "github.com/comptaflow/backend/internal/application/vat"
	"github.com/comptaflow/backend/internal/domain/billing"
	domainvat "github.com/comptaflow/backend/internal/domain/vat"
	"github.com/comptaflow/backend/internal/infrastructure/archive"
	"github.com/comptaflow/backend/internal/infrastructure/export"
)

var (
	declareSales     string
	declarePurchases string
	declarePeriod    string
	declareCSV       bool
	declareXLSX      bool
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

var declareCmd = &cobra.Command{
	Use:   "declare",
	Short: "File the monthly VAT declaration (signed XML export)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !periodPattern.MatchString(declarePeriod) {
			return fmt.Errorf("invalid period %q, want YYYY-MM", declarePeriod)
		}
		if err := cfg.ValidateCompany(); err != nil {
			return err
		}

		var sales, purchases []billing.Document
		var err error
		if declareSales != "" {
			if sales, err = loadDocuments(declareSales); err != nil {
				return err
			}
		}
		if declarePurchases != "" {
			if purchases, err = loadDocuments(declarePurchases); err != nil {
				return err
			}
		}

		var store archive.Store = archive.NopStore{}
		if cfg.Archive.Enabled {
			s3, err := archive.NewS3Store(&cfg.Archive, log)
			if err != nil {
				return fmt.Errorf("failed to initialize archive store: %w", err)
			}
			if err := s3.EnsureBucket(cmd.Context()); err != nil {
				return err
			}
			store = s3
		}

		sink := export.NewDirectorySink(cfg.Export.Directory)
		service := appvat.NewDeclarationService(sink, store, formatter, log)

		company := domainvat.CompanyIdentity{
			LegalName: cfg.Company.LegalName,
			IF:        cfg.Company.IF,
			ICE:       cfg.Company.ICE,
			RC:        cfg.Company.RC,
		}

		now := time.Now()
		rows := service.Summary(sales, purchases)
		declaration, err := service.FileDeclaration(cmd.Context(), company, declarePeriod, rows, now)
		if err != nil {
			return err
		}

		fmt.Printf("Declaration %s: collected %s, deductible %s, net %s\n",
			declaration.Period,
			formatter.Currency(declaration.Collected),
			formatter.Currency(declaration.Deductible),
			formatter.Currency(declaration.Net))

		if declareCSV {
			if err := service.ExportSummaryCSV(cmd.Context(), rows, now); err != nil {
				return err
			}
		}
		if declareXLSX {
			if err := service.ExportSummaryWorkbook(cmd.Context(), rows, now); err != nil {
				return err
			}
		}

		log.Info("Declaration filed", zap.String("period", declarePeriod))
		return nil
	},
}

func init() {
	declareCmd.Flags().StringVar(&declareSales, "sales", "", "Sales documents JSON file")
	declareCmd.Flags().StringVar(&declarePurchases, "purchases", "", "Purchase documents JSON file")
	declareCmd.Flags().StringVar(&declarePeriod, "period", "", "Declaration period (YYYY-MM)")
	declareCmd.Flags().BoolVar(&declareCSV, "csv", false, "Also export the period summary as CSV")
	declareCmd.Flags().BoolVar(&declareXLSX, "xlsx", false, "Also export the period summary as an XLSX workbook")
	_ = declareCmd.MarkFlagRequired("period")
	rootCmd.AddCommand(declareCmd)
}
