// Package format renders amounts and dates for tabular output. The locale
// is explicit configuration on the Formatter; there is no process-wide
// mutable locale state.
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

// Formatter renders values for one locale and currency.
type Formatter struct {
	printer  *message.Printer
	currency valueobject.Currency
}

// New creates a Formatter for the given BCP 47 locale tag. An unparseable
// tag falls back to French, the customary locale for Moroccan filings.
func New(locale string, currency valueobject.Currency) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	return &Formatter{
		printer:  message.NewPrinter(tag),
		currency: currency,
	}
}

// Amount renders a bare amount with locale digit grouping at two decimals
func (f *Formatter) Amount(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.InexactFloat64(),
		number.MinFractionDigits(valueobject.AmountScale),
		number.MaxFractionDigits(valueobject.AmountScale),
	))
}

// Currency renders an amount followed by the currency code
func (f *Formatter) Currency(d decimal.Decimal) string {
	return f.Amount(d) + " " + string(f.currency)
}

// Date renders a calendar date, empty for the zero date
func (f *Formatter) Date(d valueobject.Date) string {
	return d.String()
}
