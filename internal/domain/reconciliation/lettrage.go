package reconciliation

import (
	"github.com/comptaflow/backend/internal/domain/billing"
	"github.com/comptaflow/backend/internal/domain/shared"
)

// ReconciliationRefPrefix prefixes the lettrage reference written on the
// document side of a match.
const ReconciliationRefPrefix = "LET-"

// ApplyMatch marks both sides of a match as reconciled. These two writes are
// the only mutations the engine performs on caller-owned records; the caller
// must persist the pair as one transactional write.
func ApplyMatch(entry *BankEntry, doc *billing.Document) error {
	if entry == nil || doc == nil {
		return shared.ErrInvalidInput
	}

	entry.Reconciled = true
	entry.MatchedDocumentID = doc.ID
	doc.Reconciled = true
	doc.ReconciliationRef = ReconciliationRefPrefix + entry.ID
	return nil
}

// UndoMatch clears exactly the four fields set by ApplyMatch, restoring the
// pair to its pre-match state.
func UndoMatch(entry *BankEntry, doc *billing.Document) error {
	if entry == nil || doc == nil {
		return shared.ErrInvalidInput
	}

	entry.Reconciled = false
	entry.MatchedDocumentID = ""
	doc.Reconciled = false
	doc.ReconciliationRef = ""
	return nil
}
