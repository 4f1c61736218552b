// Package vat wires the VAT aggregation domain to export delivery and
// archiving. Computation stays pure; everything effectful happens here.
package vat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/comptaflow/backend/internal/domain/billing"
	domainvat "github.com/comptaflow/backend/internal/domain/vat"
	"github.com/comptaflow/backend/internal/infrastructure/archive"
	"github.com/comptaflow/backend/internal/infrastructure/export"
	"github.com/comptaflow/backend/internal/infrastructure/format"
)

// DeclarationService produces period VAT summaries and files declarations.
type DeclarationService struct {
	sink      export.Sink
	store     archive.Store
	formatter *format.Formatter
	logger    *zap.Logger
}

// NewDeclarationService creates a declaration service
func NewDeclarationService(sink export.Sink, store archive.Store, formatter *format.Formatter, logger *zap.Logger) *DeclarationService {
	if store == nil {
		store = archive.NopStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeclarationService{
		sink:      sink,
		store:     store,
		formatter: formatter,
		logger:    logger,
	}
}

// Summary aggregates sales and purchases and merges them into the net
// period summary. Sales quotes carry no VAT liability and are excluded;
// everything else on each side feeds its direction.
func (s *DeclarationService) Summary(sales, purchases []billing.Document) []domainvat.SummaryRow {
	taxableSales := make([]billing.Document, 0, len(sales))
	for _, doc := range sales {
		if doc.Type == billing.DocumentTypeQuote {
			continue
		}
		taxableSales = append(taxableSales, doc)
	}

	collected := domainvat.AggregatePeriods(taxableSales, domainvat.DirectionCollected)
	deductible := domainvat.AggregatePeriods(purchases, domainvat.DirectionDeductible)
	return domainvat.MergeSummaries(collected, deductible)
}

// FileDeclaration builds the declaration for one period from precomputed
// summary rows (see Summary), serializes and signs it, delivers it through
// the sink and archives a copy. Taking rows keeps one aggregation pass per
// command even when the caller also exports the summary. The computed
// declaration is returned even when delivery fails, so the caller's figures
// survive a failed export.
func (s *DeclarationService) FileDeclaration(
	ctx context.Context,
	company domainvat.CompanyIdentity,
	period string,
	rows []domainvat.SummaryRow,
	now time.Time,
) (domainvat.Declaration, error) {
	declaration := domainvat.NewDeclaration(company, period, rows)

	s.logger.Info("Filing VAT declaration",
		zap.String("period", period),
		zap.String("ice", company.ICE),
		zap.String("collected", declaration.Collected.StringFixed(2)),
		zap.String("deductible", declaration.Deductible.StringFixed(2)),
		zap.String("net", declaration.Net.StringFixed(2)))

	artifact, err := export.NewDeclarationArtifact(declaration, now)
	if err != nil {
		return declaration, fmt.Errorf("failed to serialize declaration for %s: %w", period, err)
	}

	if err := s.sink.Deliver(ctx, artifact); err != nil {
		return declaration, fmt.Errorf("failed to deliver declaration %s: %w", artifact.Filename, err)
	}

	if err := s.store.Put(ctx, artifact.Filename, artifact.Data, artifact.ContentType); err != nil {
		return declaration, fmt.Errorf("failed to archive declaration %s: %w", artifact.Filename, err)
	}

	return declaration, nil
}

// ExportSummaryCSV delivers the period summary as a semicolon CSV.
func (s *DeclarationService) ExportSummaryCSV(ctx context.Context, rows []domainvat.SummaryRow, now time.Time) error {
	table := export.Table{
		Header: []string{"Periode", "Base ventes", "Base achats", "TVA collectee", "TVA deductible", "TVA nette"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []export.Cell{
			export.PlainCell(row.Period),
			export.CurrencyCell(row.SalesBase),
			export.CurrencyCell(row.PurchaseBase),
			export.CurrencyCell(row.Collected),
			export.CurrencyCell(row.Deductible),
			export.CurrencyCell(row.Net),
		})
	}

	data, err := export.MarshalCSV(table, s.formatter)
	if err != nil {
		return fmt.Errorf("failed to serialize summary CSV: %w", err)
	}
	return s.sink.Deliver(ctx, export.Artifact{
		Filename:    export.CSVFilename("TVA", now),
		ContentType: "text/csv; charset=utf-8",
		Data:        data,
	})
}

// ExportSummaryWorkbook delivers the period summary as an XLSX workbook.
func (s *DeclarationService) ExportSummaryWorkbook(ctx context.Context, rows []domainvat.SummaryRow, now time.Time) error {
	data, err := export.MarshalSummaryWorkbook(rows)
	if err != nil {
		return fmt.Errorf("failed to serialize summary workbook: %w", err)
	}
	return s.sink.Deliver(ctx, export.Artifact{
		Filename:    export.SummaryWorkbookFilename(now),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	})
}
