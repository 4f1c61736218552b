package reconciliation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/comptaflow/backend/internal/domain/billing"
)

// Scoring weights and tolerances. The three components sum to 1.0.
const (
	amountWeight    = 0.5
	dateWeight      = 0.2
	referenceWeight = 0.3

	// dateToleranceDays is the widest gap, in whole days, still considered
	// a plausible settlement delay.
	dateToleranceDays = 5
)

// amountTolerance is the absolute gap, in currency units, under which the
// bank amount is considered to settle the outstanding amount.
var amountTolerance = decimal.NewFromInt(5)

// ScoreCandidate scores one bank entry against one open document.
//
// outstanding is TTC minus existing payments. The amount component compares
// absolute values so that debit-signed bank exports still match; the
// reference component looks for the document id inside the entry's label and
// reference, case-insensitively. The result is in [0, 1].
func ScoreCandidate(entry *BankEntry, doc *billing.Document) float64 {
	outstanding := billing.ComputeDocumentTotals(doc, billing.VATModeDebit).AmountDue.Amount()

	score := 0.0

	gap := entry.Amount.Abs().Sub(outstanding.Abs()).Abs()
	if gap.LessThan(amountTolerance) {
		score += amountWeight
	}

	if !entry.Date.IsZero() && !doc.Date.IsZero() &&
		entry.Date.DaysBetween(doc.Date) <= dateToleranceDays {
		score += dateWeight
	}

	haystack := strings.ToLower(entry.Label + entry.Reference)
	if doc.ID != "" && strings.Contains(haystack, strings.ToLower(doc.ID)) {
		score += referenceWeight
	}

	return score
}
