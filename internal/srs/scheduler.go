package srs

import (
	"sort"
	"time"

	"github.com/avelasco/roadready/internal/store"
)

// Scheduler reads and writes review records through the store. Records
// are created lazily on first review and only removed by a full data
// reset.
type Scheduler struct {
	store *store.Store
}

// NewScheduler creates a scheduler backed by st.
func NewScheduler(st *store.Store) *Scheduler {
	return &Scheduler{store: st}
}

// records loads the full review map: collection id -> item id -> record.
func (s *Scheduler) records() map[string]map[int]Record {
	data := make(map[string]map[int]Record)
	s.store.Get(store.KeySpacedRepetition, &data)
	return data
}

// Record returns the stored record for a question, or a fresh default
// if it was never reviewed. The default is not persisted.
func (s *Scheduler) Record(collection string, itemID int, now time.Time) Record {
	if rec, ok := s.records()[collection][itemID]; ok {
		return rec
	}
	return NewRecord(now)
}

// Review applies one review step with the given quality signal and
// persists the result. Returns the updated record.
func (s *Scheduler) Review(collection string, itemID, quality int, now time.Time) Record {
	data := s.records()
	rec, ok := data[collection][itemID]
	if !ok {
		rec = NewRecord(now)
	}
	rec = Update(rec, quality, now)

	if data[collection] == nil {
		data[collection] = make(map[int]Record)
	}
	data[collection][itemID] = rec
	s.store.Set(store.KeySpacedRepetition, data)
	return rec
}

// DueReview pairs a due record with its question id.
type DueReview struct {
	ItemID int
	Record
}

// DueReviews returns every record in the collection due at now,
// ordered by question id. The boundary is inclusive.
func (s *Scheduler) DueReviews(collection string, now time.Time) []DueReview {
	var due []DueReview
	for itemID, rec := range s.records()[collection] {
		if rec.Due(now) {
			due = append(due, DueReview{ItemID: itemID, Record: rec})
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ItemID < due[j].ItemID })
	return due
}

// TrackedCount returns how many questions in the collection have a
// review record.
func (s *Scheduler) TrackedCount(collection string) int {
	return len(s.records()[collection])
}
