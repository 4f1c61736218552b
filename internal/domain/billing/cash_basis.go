package billing

import (
	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

// CashBasisAllocation is the VAT actually owed under the encaissement
// regime, recognized proportionally as cash comes in.
type CashBasisAllocation struct {
	CollectedByRate map[string]decimal.Decimal // rate -> VAT recognized so far
	CollectedTotal  decimal.Decimal
}

// ApportionCashBasisVAT splits the VAT liability of an invoice across its
// payments. For each payment the paid ratio is computed against the original
// TTC, clamped to [0,1]; each rate bucket then contributes
// round(bucketVAT * ratio) for that payment.
//
// The ratio is intentionally taken against the original TTC for every
// payment, not against a declining balance. When cumulative payments exceed
// TTC the same VAT can be recognized more than once across payments; the
// statutory review of that behavior is still open, so it is preserved here
// rather than silently corrected.
func ApportionCashBasisVAT(ttc decimal.Decimal, vatByRate map[string]decimal.Decimal, payments []Payment) CashBasisAllocation {
	allocation := CashBasisAllocation{
		CollectedByRate: make(map[string]decimal.Decimal, len(vatByRate)),
		CollectedTotal:  decimal.Zero,
	}

	one := decimal.NewFromInt(1)
	for _, payment := range payments {
		ratio := decimal.Zero
		if !ttc.IsZero() {
			ratio = payment.Amount.Div(ttc)
			if ratio.IsNegative() {
				ratio = decimal.Zero
			} else if ratio.GreaterThan(one) {
				ratio = one
			}
		}

		for rate, bucketVAT := range vatByRate {
			collected := valueobject.RoundAmount(bucketVAT.Mul(ratio))
			allocation.CollectedByRate[rate] = allocation.CollectedByRate[rate].Add(collected)
			allocation.CollectedTotal = allocation.CollectedTotal.Add(collected)
		}
	}

	return allocation
}
