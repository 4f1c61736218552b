package billing

import (
	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

var hundred = decimal.NewFromInt(100)

// LineTotals holds the per-line amounts, each already rounded to the cent.
type LineTotals struct {
	HT            valueobject.Money // Amount excluding tax, after discount
	VATAmount     valueobject.Money
	TTC           valueobject.Money // HT + VATAmount
	DiscountValue valueobject.Money // What the discount took off the gross line
	VATRate       decimal.Decimal   // Sanitized rate actually applied
}

// ComputeLineTotals computes HT/VAT/TTC for a single line.
//
// The discount is clamped to [0,100] and the VAT rate is sanitized to a
// non-negative value before use. Each figure is rounded independently, so
// HT + VATAmount == TTC holds to the cent by construction.
func ComputeLineTotals(line DocumentLine) LineTotals {
	qty := line.Quantity.Decimal
	unitPrice := line.UnitPrice.Decimal
	discount := valueobject.ClampDiscountPercent(line.DiscountPercent.Decimal)
	rate := valueobject.SanitizeVATRateDecimal(line.VATRate.Decimal)

	discountedUnit := unitPrice.Mul(decimal.NewFromInt(1).Sub(discount.Div(hundred)))
	ht := valueobject.NewMoneyMAD(valueobject.RoundAmount(qty.Mul(discountedUnit)))
	vat := valueobject.NewMoneyMAD(valueobject.RoundAmount(ht.Amount().Mul(rate).Div(hundred)))
	ttc := ht.MustAdd(vat).Round()
	discountValue := valueobject.NewMoneyMAD(valueobject.RoundAmount(qty.Mul(unitPrice).Sub(ht.Amount())))

	return LineTotals{
		HT:            ht,
		VATAmount:     vat,
		TTC:           ttc,
		DiscountValue: discountValue,
		VATRate:       rate,
	}
}
