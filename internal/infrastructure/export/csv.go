package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
	"github.com/comptaflow/backend/internal/infrastructure/format"
)

// utf8BOM lets spreadsheet software pick up the encoding of semicolon CSVs.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CellKind selects the rendering strategy for one cell. A tagged variant
// replaces the loose per-column render callbacks of older exports.
type CellKind int

const (
	CellPlain CellKind = iota
	CellCurrency
	CellDate
	CellCustom
)

// Cell is one typed table cell.
type Cell struct {
	Kind   CellKind
	Text   string
	Amount decimal.Decimal
	Date   valueobject.Date
}

// PlainCell renders its text verbatim
func PlainCell(text string) Cell {
	return Cell{Kind: CellPlain, Text: text}
}

// CurrencyCell renders through the formatter's currency rendering
func CurrencyCell(amount decimal.Decimal) Cell {
	return Cell{Kind: CellCurrency, Amount: amount}
}

// DateCell renders through the formatter's date rendering
func DateCell(date valueobject.Date) Cell {
	return Cell{Kind: CellDate, Date: date}
}

// CustomCell carries pre-rendered text, for callers that formatted upstream
func CustomCell(text string) Cell {
	return Cell{Kind: CellCustom, Text: text}
}

// Table is a header row plus typed data rows.
type Table struct {
	Header []string
	Rows   [][]Cell
}

// MarshalCSV renders the table as a semicolon-delimited, UTF-8-with-BOM
// CSV with one header row.
func MarshalCSV(table Table, formatter *format.Formatter) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(table.Header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range table.Rows {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = renderCell(cell, formatter)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCell(cell Cell, formatter *format.Formatter) string {
	switch cell.Kind {
	case CellCurrency:
		return formatter.Currency(cell.Amount)
	case CellDate:
		return formatter.Date(cell.Date)
	default:
		return cell.Text
	}
}

// CSVFilename builds the export filename from a prefix and an epoch
// millisecond timestamp.
func CSVFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d.csv", prefix, now.UnixMilli())
}
