// Package vat buckets ledger documents into calendar months and derives the
// figures of the statutory Moroccan VAT declaration.
package vat

import (
	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/billing"
	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

// Direction tags which side of the declaration an aggregation feeds.
type Direction string

const (
	DirectionCollected  Direction = "COLLECTED"  // Sales: VAT collected from customers
	DirectionDeductible Direction = "DEDUCTIBLE" // Purchases: VAT deductible on supplier invoices
)

// IsValid checks if the direction is valid
func (d Direction) IsValid() bool {
	return d == DirectionCollected || d == DirectionDeductible
}

// PeriodTotals accumulates one month of declaration figures.
// Instances are ephemeral: recomputed on demand, never persisted.
type PeriodTotals struct {
	Period     string // "YYYY-MM"
	Base       decimal.Decimal
	Collected  decimal.Decimal
	Deductible decimal.Decimal
}

// PeriodMap indexes PeriodTotals by their "YYYY-MM" key.
type PeriodMap map[string]*PeriodTotals

// AggregatePeriods groups documents by the month of their date and
// accumulates base and directional VAT per period. Documents with an absent
// or unparseable date are skipped.
//
// The declaration base is gross quantity x unit price; the line discount is
// NOT applied on this path. This diverges from the invoice line computation
// and is kept as the declared statutory behavior pending review.
func AggregatePeriods(docs []billing.Document, direction Direction) PeriodMap {
	hundred := decimal.NewFromInt(100)
	periods := make(PeriodMap)

	for i := range docs {
		doc := &docs[i]
		key, ok := doc.Date.PeriodKey()
		if !ok {
			continue
		}

		totals := periods[key]
		if totals == nil {
			totals = &PeriodTotals{Period: key}
			periods[key] = totals
		}

		for _, line := range doc.Lines {
			base := line.Quantity.Mul(line.UnitPrice.Decimal)
			rate := valueobject.SanitizeVATRateDecimal(line.VATRate.Decimal)
			lineVAT := base.Mul(rate).Div(hundred)

			totals.Base = totals.Base.Add(base)
			switch direction {
			case DirectionCollected:
				totals.Collected = totals.Collected.Add(lineVAT)
			case DirectionDeductible:
				totals.Deductible = totals.Deductible.Add(lineVAT)
			}
		}
	}

	return periods
}
