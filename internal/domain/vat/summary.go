package vat

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

// SummaryRow is one period of the net VAT position, ready for tabular
// display or declaration. All figures carry the canonical 2-decimal scale.
type SummaryRow struct {
	Period       string
	SalesBase    decimal.Decimal
	PurchaseBase decimal.Decimal
	Collected    decimal.Decimal
	Deductible   decimal.Decimal
	Net          decimal.Decimal // Collected - Deductible; negative means a VAT credit
}

// MergeSummaries merges the sales and purchase aggregations over the union
// of their periods and computes the net position per period. Rows are sorted
// by period so output is deterministic.
func MergeSummaries(sales, purchases PeriodMap) []SummaryRow {
	periods := make(map[string]struct{}, len(sales)+len(purchases))
	for key := range sales {
		periods[key] = struct{}{}
	}
	for key := range purchases {
		periods[key] = struct{}{}
	}

	rows := make([]SummaryRow, 0, len(periods))
	for key := range periods {
		row := SummaryRow{Period: key}
		if s := sales[key]; s != nil {
			row.SalesBase = valueobject.RoundAmount(s.Base)
			row.Collected = valueobject.RoundAmount(s.Collected)
		}
		if p := purchases[key]; p != nil {
			row.PurchaseBase = valueobject.RoundAmount(p.Base)
			row.Deductible = valueobject.RoundAmount(p.Deductible)
		}
		row.Net = valueobject.RoundAmount(row.Collected.Sub(row.Deductible))
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })
	return rows
}

// RowForPeriod returns the summary row for one period, with zero figures
// when the period saw no activity.
func RowForPeriod(rows []SummaryRow, period string) SummaryRow {
	for _, row := range rows {
		if row.Period == period {
			return row
		}
	}
	return SummaryRow{Period: period}
}
