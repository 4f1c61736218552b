package billing

import (
	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

// DocumentTotals aggregates the rounded line results of a document.
//
// The rounding policy is deliberate: totals are sums of already-rounded line
// values, never a single re-rounding of the grand total. Statutory documents
// must foot to the printed lines.
type DocumentTotals struct {
	HT            valueobject.Money
	VATAmount     valueobject.Money
	TTC           valueobject.Money
	DiscountValue valueobject.Money
	VATByRate     map[string]decimal.Decimal // keyed by rate, e.g. "20", "7.5"
	AmountDue     valueobject.Money          // TTC minus payments; negative means overpaid
	CashBasis     *CashBasisAllocation       // set only in ENCAISSEMENT mode on sales invoices
}

// ComputeDocumentTotals iterates the document lines and accumulates their
// rounded totals, bucketing VAT by distinct rate. Accumulation goes through
// Money so every addition is currency-checked. AmountDue may be negative;
// an overpayment is a valid ledger state, not an error.
//
// In ENCAISSEMENT mode on a sales invoice the cash-basis apportionment is
// computed and attached.
func ComputeDocumentTotals(doc *Document, mode VATMode) DocumentTotals {
	totals := DocumentTotals{
		HT:            valueobject.ZeroMAD(),
		VATAmount:     valueobject.ZeroMAD(),
		TTC:           valueobject.ZeroMAD(),
		DiscountValue: valueobject.ZeroMAD(),
		VATByRate:     make(map[string]decimal.Decimal),
	}

	for _, line := range doc.Lines {
		lt := ComputeLineTotals(line)
		totals.HT = totals.HT.MustAdd(lt.HT)
		totals.VATAmount = totals.VATAmount.MustAdd(lt.VATAmount)
		totals.TTC = totals.TTC.MustAdd(lt.TTC)
		totals.DiscountValue = totals.DiscountValue.MustAdd(lt.DiscountValue)

		key := lt.VATRate.String()
		totals.VATByRate[key] = totals.VATByRate[key].Add(lt.VATAmount.Amount())
	}

	payments := valueobject.NewMoneyMAD(doc.PaymentsTotal())
	totals.AmountDue = totals.TTC.MustSubtract(payments).Round()

	if mode == VATModeEncaissement && doc.IsSalesInvoice() {
		allocation := ApportionCashBasisVAT(totals.TTC.Amount(), totals.VATByRate, doc.Payments)
		totals.CashBasis = &allocation
	}

	return totals
}
