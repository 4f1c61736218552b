package reconciliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comptaflow/backend/internal/domain/billing"
)

func TestAutoReconcile_ProposesAboveThreshold(t *testing.T) {
	entries := []BankEntry{
		entry("BNK-1", -1000, "2025-01-10", "VIR FAC-2025-00012", ""),
	}
	docs := []billing.Document{
		invoice("FAC-2025-00012", 1000, "2025-01-08"),
	}

	matches := AutoReconcile(entries, docs)
	require.Len(t, matches, 1)
	assert.Equal(t, "BNK-1", matches[0].BankEntryID)
	assert.Equal(t, "FAC-2025-00012", matches[0].DocumentID)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-9)
}

func TestAutoReconcile_BelowThresholdIsSilent(t *testing.T) {
	// Amount alone (0.5) is not enough to propose.
	entries := []BankEntry{
		entry("BNK-1", -1000, "2025-06-01", "VIREMENT RECU", ""),
	}
	docs := []billing.Document{
		invoice("FAC-2025-00012", 1000, "2025-01-08"),
	}

	assert.Empty(t, AutoReconcile(entries, docs))
}

func TestAutoReconcile_PicksBestCandidate(t *testing.T) {
	entries := []BankEntry{
		entry("BNK-1", -1000, "2025-01-10", "VIR FAC-2025-00012", ""),
	}
	docs := []billing.Document{
		invoice("FAC-2025-00011", 1000, "2025-01-09"),
		invoice("FAC-2025-00012", 1000, "2025-01-08"),
	}

	matches := AutoReconcile(entries, docs)
	require.Len(t, matches, 1)
	assert.Equal(t, "FAC-2025-00012", matches[0].DocumentID)
}

func TestAutoReconcile_TieBreaksOnInputOrder(t *testing.T) {
	// Two documents score identically; the first in input order wins.
	entries := []BankEntry{
		entry("BNK-1", -1000, "2025-01-10", "VIREMENT", ""),
	}
	docs := []billing.Document{
		invoice("FAC-2025-00001", 1000, "2025-01-09"),
		invoice("FAC-2025-00002", 1000, "2025-01-09"),
	}

	first := AutoReconcile(entries, docs)
	require.Len(t, first, 1)
	assert.Equal(t, "FAC-2025-00001", first[0].DocumentID)

	again := AutoReconcile(entries, docs)
	assert.Equal(t, first, again)
}

func TestAutoReconcile_DoesNotWithholdDocumentsWithinPass(t *testing.T) {
	// Greedy per entry: both entries propose the same document; the caller
	// resolves the conflict before applying.
	entries := []BankEntry{
		entry("BNK-1", -1000, "2025-01-10", "VIR FAC-2025-00012", ""),
		entry("BNK-2", -1000, "2025-01-11", "VIR FAC-2025-00012", ""),
	}
	docs := []billing.Document{
		invoice("FAC-2025-00012", 1000, "2025-01-08"),
	}

	matches := AutoReconcile(entries, docs)
	require.Len(t, matches, 2)
	assert.Equal(t, matches[0].DocumentID, matches[1].DocumentID)
}

func TestAutoReconcile_SkipsReconciledSides(t *testing.T) {
	entries := []BankEntry{
		entry("BNK-1", -1000, "2025-01-10", "VIR FAC-2025-00012", ""),
	}
	docs := []billing.Document{
		invoice("FAC-2025-00012", 1000, "2025-01-08"),
	}

	entries[0].Reconciled = true
	assert.Empty(t, AutoReconcile(entries, docs))

	entries[0].Reconciled = false
	docs[0].Reconciled = true
	assert.Empty(t, AutoReconcile(entries, docs))
}

func TestAutoReconcile_SecondPassAfterApplyIsEmpty(t *testing.T) {
	entries := []BankEntry{
		entry("BNK-1", -1000, "2025-01-10", "VIR FAC-2025-00012", ""),
	}
	docs := []billing.Document{
		invoice("FAC-2025-00012", 1000, "2025-01-08"),
	}

	matches := AutoReconcile(entries, docs)
	require.Len(t, matches, 1)
	require.NoError(t, ApplyMatch(&entries[0], &docs[0]))

	assert.Empty(t, AutoReconcile(entries, docs))
}
