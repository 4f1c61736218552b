// Package billing holds the ledger document model and the VAT totals
// computations that run over it. Everything in this package is pure: inputs
// are plain records owned by the caller, outputs are derived totals.
package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

// DocumentType represents the commercial nature of a ledger document
type DocumentType string

const (
	DocumentTypeInvoice    DocumentType = "INVOICE"     // Sales invoice (facture)
	DocumentTypeQuote      DocumentType = "QUOTE"       // Quote (devis), never carries VAT liability
	DocumentTypePurchase   DocumentType = "PURCHASE"    // Supplier invoice
	DocumentTypeCreditNote DocumentType = "CREDIT_NOTE" // Credit note (avoir)
)

// IsValid checks if the document type is valid
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeInvoice, DocumentTypeQuote, DocumentTypePurchase, DocumentTypeCreditNote:
		return true
	}
	return false
}

// String returns the string representation
func (t DocumentType) String() string {
	return string(t)
}

// VATMode represents the VAT recognition regime of the company
type VATMode string

const (
	VATModeDebit        VATMode = "DEBIT"        // Accrual basis: liability arises on invoicing
	VATModeEncaissement VATMode = "ENCAISSEMENT" // Cash basis: liability arises on payment receipt
)

// IsValid checks if the VAT mode is valid
func (m VATMode) IsValid() bool {
	return m == VATModeDebit || m == VATModeEncaissement
}

// DocumentLine is one immutable line of a document. Numeric fields use the
// lenient decoding rules: malformed input coerces to zero.
type DocumentLine struct {
	Description     string                        `json:"description,omitempty"`
	Quantity        valueobject.LenientDecimal    `json:"quantity"`
	UnitPrice       valueobject.LenientDecimal    `json:"unit_price"`
	DiscountPercent valueobject.LenientDecimal    `json:"discount_percent"`
	VATRate         valueobject.LenientDecimal    `json:"vat_rate"`
}

// Payment is a cash movement applied to a document. Append-only from the
// document's perspective.
type Payment struct {
	ID     uuid.UUID                  `json:"id"`
	Amount valueobject.LenientDecimal `json:"amount"`
	Date   valueobject.Date           `json:"date"`
}

// Document is a ledger document as owned by the surrounding sales/purchase
// store. The engine only reads it; the two reconciliation fields are the
// single exception, mutated by reconciliation.ApplyMatch / UndoMatch.
type Document struct {
	ID                string           `json:"id"`
	Type              DocumentType     `json:"type"`
	Date              valueobject.Date `json:"date"`
	Lines             []DocumentLine   `json:"lines"`
	Payments          []Payment        `json:"payments"`
	Reconciled        bool             `json:"reconciled,omitempty"`
	ReconciliationRef string           `json:"reconciliation_ref,omitempty"`
}

// IsSalesInvoice reports whether the document carries collected VAT
func (d *Document) IsSalesInvoice() bool {
	return d.Type == DocumentTypeInvoice
}

// PaymentsTotal returns the raw sum of payment amounts
func (d *Document) PaymentsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.Payments {
		total = total.Add(p.Amount.Decimal)
	}
	return total
}
