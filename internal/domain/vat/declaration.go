package vat

import (
	"github.com/shopspring/decimal"
)

// CompanyIdentity is the filer identity stamped on every declaration.
// IF/ICE/RC are the Moroccan tax identifier triad.
type CompanyIdentity struct {
	LegalName string `mapstructure:"legal_name" validate:"required"`
	IF        string `mapstructure:"if" validate:"required,numeric"`
	ICE       string `mapstructure:"ice" validate:"required,numeric,len=15"`
	RC        string `mapstructure:"rc" validate:"required"`
}

// Declaration is the monthly VAT declaration payload for the DGI.
type Declaration struct {
	Company    CompanyIdentity
	Period     string // "YYYY-MM"
	Collected  decimal.Decimal
	Deductible decimal.Decimal
	Net        decimal.Decimal
}

// NewDeclaration builds the declaration for one period from a merged
// summary. A period with no activity yields a zero declaration, which is a
// valid filing.
func NewDeclaration(company CompanyIdentity, period string, rows []SummaryRow) Declaration {
	row := RowForPeriod(rows, period)
	return Declaration{
		Company:    company,
		Period:     period,
		Collected:  row.Collected,
		Deductible: row.Deductible,
		Net:        row.Net,
	}
}
