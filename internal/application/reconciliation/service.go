// Package reconciliation drives auto-reconcile passes and applies the
// resulting matches to caller-owned records.
package reconciliation

import (
	"go.uber.org/zap"

	"github.com/comptaflow/backend/internal/domain/billing"
	domainrecon "github.com/comptaflow/backend/internal/domain/reconciliation"
)

// Service runs the matcher and applies proposals. It holds no locks; a
// caller with concurrent writers must serialize mutations per
// entry/document pair itself.
type Service struct {
	logger *zap.Logger
}

// NewService creates a reconciliation service
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Propose runs one auto-reconcile pass and returns the proposals.
func (s *Service) Propose(entries []domainrecon.BankEntry, docs []billing.Document) []domainrecon.Match {
	matches := domainrecon.AutoReconcile(entries, docs)
	for _, m := range matches {
		s.logger.Debug("Match proposed",
			zap.String("bank_entry", m.BankEntryID),
			zap.String("document", m.DocumentID),
			zap.Float64("score", m.Score))
	}
	return matches
}

// ApplyMatches applies proposals pairwise to the given slices, mutating them
// in place, and returns how many were applied.
//
// The matcher is deliberately non-exclusive: two entries can propose the
// same document in one pass. Resolution belongs to the caller, and here it
// is first proposal wins; later proposals against an already-reconciled
// document are skipped with a warning.
func (s *Service) ApplyMatches(entries []domainrecon.BankEntry, docs []billing.Document, matches []domainrecon.Match) int {
	entryByID := make(map[string]*domainrecon.BankEntry, len(entries))
	for i := range entries {
		entryByID[entries[i].ID] = &entries[i]
	}
	docByID := make(map[string]*billing.Document, len(docs))
	for i := range docs {
		docByID[docs[i].ID] = &docs[i]
	}

	applied := 0
	for _, m := range matches {
		entry := entryByID[m.BankEntryID]
		doc := docByID[m.DocumentID]
		if entry == nil || doc == nil {
			s.logger.Warn("Match references unknown records",
				zap.String("bank_entry", m.BankEntryID),
				zap.String("document", m.DocumentID))
			continue
		}
		if entry.Reconciled || doc.Reconciled {
			s.logger.Warn("Skipping match against already-reconciled record",
				zap.String("bank_entry", m.BankEntryID),
				zap.String("document", m.DocumentID))
			continue
		}

		if err := domainrecon.ApplyMatch(entry, doc); err != nil {
			s.logger.Error("Failed to apply match", zap.Error(err))
			continue
		}
		applied++
		s.logger.Info("Lettrage applied",
			zap.String("bank_entry", entry.ID),
			zap.String("document", doc.ID),
			zap.Float64("score", m.Score))
	}
	return applied
}
