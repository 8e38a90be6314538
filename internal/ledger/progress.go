package ledger

import (
	"time"

	"github.com/avelasco/roadready/internal/store"
)

// TestProgress records one completed sequential practice test.
// Retaking the same test overwrites the record.
type TestProgress struct {
	Completed       bool      `json:"completed"`
	Score           int       `json:"score"` // percent
	Correct         int       `json:"correct"`
	Total           int       `json:"total"`
	Passed          bool      `json:"passed"`
	DurationSeconds int       `json:"duration"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

// SaveTestProgress stores the result of a sequential practice test.
func (l *Ledger) SaveTestProgress(collection string, testNumber int, p TestProgress, now time.Time) {
	progress := l.allProgress()
	if progress[collection] == nil {
		progress[collection] = make(map[int]TestProgress)
	}
	p.LastUpdated = now
	progress[collection][testNumber] = p
	l.store.Set(store.KeyTestProgress, progress)
}

// TestProgressFor returns the stored record for one practice test.
func (l *Ledger) TestProgressFor(collection string, testNumber int) (TestProgress, bool) {
	p, ok := l.allProgress()[collection][testNumber]
	return p, ok
}

// CompletedTests returns every stored practice-test record for a
// collection, keyed by test number.
func (l *Ledger) CompletedTests(collection string) map[int]TestProgress {
	progress := l.allProgress()[collection]
	if progress == nil {
		return map[int]TestProgress{}
	}
	return progress
}

func (l *Ledger) allProgress() map[string]map[int]TestProgress {
	progress := make(map[string]map[int]TestProgress)
	l.store.Get(store.KeyTestProgress, &progress)
	return progress
}
