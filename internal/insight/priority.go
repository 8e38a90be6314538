package insight

import (
	"sort"
	"time"
)

// DefaultPriorityLimit caps the smart-review working set.
const DefaultPriorityLimit = 20

type candidate struct {
	itemID   int
	priority float64
}

// PriorityQuestions ranks the questions most in need of review: due
// records weighted by how overdue and how hard they are, plus every
// currently-wrong question regardless of due-ness. Descending by
// priority, ties kept in input order (due reviews by question id, then
// wrong answers in set order), truncated to limit.
func (a *Analyzer) PriorityQuestions(collection string, limit int, now time.Time) []int {
	var candidates []candidate

	for _, due := range a.sched.DueReviews(collection, now) {
		candidates = append(candidates, candidate{
			itemID:   due.ItemID,
			priority: float64(due.DaysOverdue(now))*10 + (5 - due.EaseFactor),
		})
	}

	for _, itemID := range a.ledger.WrongAnswers(collection) {
		rec := a.sched.Record(collection, itemID, now)
		candidates = append(candidates, candidate{
			itemID:   itemID,
			priority: 15 - rec.EaseFactor,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority > candidates[j].priority
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	ids := make([]int, len(candidates))
	for i, c := range candidates {
		ids[i] = c.itemID
	}
	return ids
}
