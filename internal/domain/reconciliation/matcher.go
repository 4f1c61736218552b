package reconciliation

import (
	"github.com/comptaflow/backend/internal/domain/billing"
)

// MatchThreshold is the minimum score at which a pairing is proposed.
const MatchThreshold = 0.7

// AutoReconcile proposes a best match for every unreconciled bank entry, in
// input order, against every unreconciled document. A proposal is emitted
// only at score >= MatchThreshold. On equal scores the earliest document in
// input order wins, so a fixed input ordering gives a fixed result.
//
// The scan is greedy per entry: a chosen document is not withheld from later
// entries, so two entries may propose the same document in one pass. The
// caller resolves that before applying; a global assignment (weighted
// bipartite matching) would supersede this, not a silent patch here.
func AutoReconcile(entries []BankEntry, docs []billing.Document) []Match {
	var matches []Match

	for i := range entries {
		entry := &entries[i]
		if entry.Reconciled {
			continue
		}

		bestScore := 0.0
		bestDoc := ""
		for j := range docs {
			doc := &docs[j]
			if doc.Reconciled {
				continue
			}
			if score := ScoreCandidate(entry, doc); score > bestScore {
				bestScore = score
				bestDoc = doc.ID
			}
		}

		if bestDoc != "" && bestScore >= MatchThreshold {
			matches = append(matches, Match{
				BankEntryID: entry.ID,
				DocumentID:  bestDoc,
				Score:       bestScore,
			})
		}
	}

	return matches
}
