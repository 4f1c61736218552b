package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/comptaflow/backend/internal/domain/vat"
)

const summarySheet = "TVA"

// MarshalSummaryWorkbook renders the merged period VAT summary as an XLSX
// workbook, one row per period, amounts as numeric cells so accountants can
// keep computing on them.
func MarshalSummaryWorkbook(rows []vat.SummaryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	header := []interface{}{"Période", "Base ventes", "Base achats", "TVA collectée", "TVA déductible", "TVA nette"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write summary header: %w", err)
	}

	for i, row := range rows {
		values := []interface{}{
			row.Period,
			row.SalesBase.InexactFloat64(),
			row.PurchaseBase.InexactFloat64(),
			row.Collected.InexactFloat64(),
			row.Deductible.InexactFloat64(),
			row.Net.InexactFloat64(),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write summary row %s: %w", row.Period, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// SummaryWorkbookFilename builds the workbook filename
func SummaryWorkbookFilename(now time.Time) string {
	return fmt.Sprintf("tva-summary-%d.xlsx", now.UnixMilli())
}
