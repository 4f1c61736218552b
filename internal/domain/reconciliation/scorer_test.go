package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comptaflow/backend/internal/domain/billing"
	"github.com/comptaflow/backend/internal/domain/shared/valueobject"
)

func entry(id string, amount float64, date, label, reference string) BankEntry {
	return BankEntry{
		ID:        id,
		Date:      valueobject.ParseDate(date),
		Amount:    valueobject.LenientFromFloat(amount),
		Label:     label,
		Reference: reference,
	}
}

func invoice(id string, ttc float64, date string) billing.Document {
	// A zero-rate line keeps TTC equal to the unit price.
	return billing.Document{
		ID:   id,
		Type: billing.DocumentTypeInvoice,
		Date: valueobject.ParseDate(date),
		Lines: []billing.DocumentLine{{
			Quantity:  valueobject.LenientFromFloat(1),
			UnitPrice: valueobject.LenientFromFloat(ttc),
			VATRate:   valueobject.LenientFromFloat(0),
		}},
	}
}

func TestScoreCandidate_FullMatch(t *testing.T) {
	// Amount, date and reference all line up: 0.5 + 0.2 + 0.3.
	e := entry("BNK-1", -1000, "2025-01-10", "VIR FAC-2025-00012", "")
	d := invoice("FAC-2025-00012", 1000, "2025-01-08")

	assert.InDelta(t, 1.0, ScoreCandidate(&e, &d), 1e-9)
}

func TestScoreCandidate_Components(t *testing.T) {
	tests := []struct {
		name  string
		entry BankEntry
		doc   billing.Document
		want  float64
	}{
		{
			name:  "amount only",
			entry: entry("BNK-1", 1000, "2025-03-01", "VIREMENT RECU", ""),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0.5,
		},
		{
			name:  "amount gap within tolerance",
			entry: entry("BNK-1", 996.50, "2025-03-01", "", ""),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0.5,
		},
		{
			name:  "amount gap at tolerance boundary rejected",
			entry: entry("BNK-1", 995, "2025-03-01", "", ""),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0,
		},
		{
			name:  "date only",
			entry: entry("BNK-1", 50, "2025-01-12", "", ""),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0.2,
		},
		{
			name:  "date gap beyond tolerance",
			entry: entry("BNK-1", 50, "2025-01-20", "", ""),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0,
		},
		{
			name:  "reference only, case-insensitive",
			entry: entry("BNK-1", 50, "2025-03-01", "vir fac-2025-00012 merci", ""),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0.3,
		},
		{
			name:  "reference found in reference field",
			entry: entry("BNK-1", 50, "2025-03-01", "", "FAC-2025-00012"),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0.3,
		},
		{
			name:  "amount and reference without date",
			entry: entry("BNK-1", -1000, "2025-03-01", "FAC-2025-00012", ""),
			doc:   invoice("FAC-2025-00012", 1000, "2025-01-08"),
			want:  0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ScoreCandidate(&tt.entry, &tt.doc), 1e-9)
		})
	}
}

func TestScoreCandidate_OutstandingUsesAmountDue(t *testing.T) {
	// A partially paid invoice matches the remainder, not the face TTC.
	d := invoice("FAC-2025-00020", 1000, "2025-01-08")
	d.Payments = []billing.Payment{{
		Amount: valueobject.LenientFromFloat(400),
		Date:   valueobject.ParseDate("2025-01-09"),
	}}

	remainder := entry("BNK-1", -600, "2025-03-01", "", "")
	face := entry("BNK-2", -1000, "2025-03-01", "", "")

	assert.InDelta(t, 0.5, ScoreCandidate(&remainder, &d), 1e-9)
	assert.InDelta(t, 0.0, ScoreCandidate(&face, &d), 1e-9)
}

func TestScoreCandidate_MissingDatesSkipDateComponent(t *testing.T) {
	e := entry("BNK-1", -1000, "", "FAC-2025-00012", "")
	d := invoice("FAC-2025-00012", 1000, "2025-01-08")

	assert.InDelta(t, 0.8, ScoreCandidate(&e, &d), 1e-9)
}

func TestScoreCandidate_EmptyDocumentIDNeverMatchesReference(t *testing.T) {
	e := entry("BNK-1", 50, "2025-03-01", "whatever", "")
	d := invoice("", 1000, "2025-01-08")

	assert.InDelta(t, 0.0, ScoreCandidate(&e, &d), 1e-9)
}
