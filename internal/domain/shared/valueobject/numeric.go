package valueobject

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// LenientDecimal is a decimal that tolerates the loose numeric input found
// in user-maintained ledgers: JSON numbers, numeric strings, and
// comma-decimal strings ("7,5") all decode; anything malformed decodes to
// zero instead of failing the whole document. The zero-coercion is a
// deliberate, documented trade of robustness over strictness.
type LenientDecimal struct {
	decimal.Decimal
}

// NewLenientDecimal wraps a decimal value
func NewLenientDecimal(d decimal.Decimal) LenientDecimal {
	return LenientDecimal{Decimal: d}
}

// LenientFromFloat wraps a float64 value
func LenientFromFloat(f float64) LenientDecimal {
	return LenientDecimal{Decimal: decimal.NewFromFloat(f)}
}

// LenientFromString parses a numeric string, coercing malformed input to zero
func LenientFromString(raw string) LenientDecimal {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return LenientDecimal{}
	}
	return LenientDecimal{Decimal: d}
}

// UnmarshalJSON implements json.Unmarshaler with zero-coercion semantics
func (l *LenientDecimal) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		d, derr := decimal.NewFromString(num.String())
		if derr == nil {
			l.Decimal = d
			return nil
		}
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		l.Decimal = LenientFromString(raw).Decimal
		return nil
	}
	l.Decimal = decimal.Zero
	return nil
}

// MarshalJSON implements json.Marshaler
func (l LenientDecimal) MarshalJSON() ([]byte, error) {
	return l.Decimal.MarshalJSON()
}
