package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SanitizeVATRate coerces user-entered VAT rate text into a non-negative
// decimal percentage. Comma decimals ("7,5") are tolerated; non-numeric or
// negative input coerces to zero rather than erroring, so a malformed rate
// yields an untaxed line instead of a rejected document.
func SanitizeVATRate(raw string) decimal.Decimal {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	rate, err := decimal.NewFromString(normalized)
	if err != nil || rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

// SanitizeVATRateDecimal applies the same non-negative coercion to a rate
// that is already numeric.
func SanitizeVATRateDecimal(rate decimal.Decimal) decimal.Decimal {
	if rate.IsNegative() {
		return decimal.Zero
	}
	return rate
}

// ClampDiscountPercent clamps a discount percentage to the [0, 100] range.
func ClampDiscountPercent(percent decimal.Decimal) decimal.Decimal {
	if percent.IsNegative() {
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}
