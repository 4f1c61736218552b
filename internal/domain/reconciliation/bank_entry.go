// Package reconciliation matches bank statement entries against open ledger
// documents (lettrage) using a heuristic score over amount, date and
// reference proximity.
package reconciliation

import (
	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

// BankEntry is one movement of an imported bank statement.
// Amount is signed: negative for debits on the company account.
type BankEntry struct {
	ID                string                     `json:"id"`
	Date              valueobject.Date           `json:"date"`
	Amount            valueobject.LenientDecimal `json:"amount"`
	Label             string                     `json:"label"`
	Reference         string                     `json:"reference"`
	Reconciled        bool                       `json:"reconciled,omitempty"`
	MatchedDocumentID string                     `json:"matched_document_id,omitempty"`
}

// Match is one proposed pairing from an auto-reconcile pass.
// It is a proposal, not a persisted state change.
type Match struct {
	BankEntryID string  `json:"bank_entry_id"`
	DocumentID  string  `json:"document_id"`
	Score       float64 `json:"score"`
}
