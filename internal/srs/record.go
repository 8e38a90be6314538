// Package srs implements the spaced repetition scheduler: an SM-2
// variant tracking one review record per question.
package srs

import (
	"math"
	"time"
)

// Quality signals passed to Update. The formula accepts the full SM-2
// 0-5 scale, but call sites only ever use these two values, so the
// effective granularity is binary.
const (
	QualityFailed = 1
	QualityGood   = 4
)

// MinEaseFactor is the floor the ease factor never drops below.
const MinEaseFactor = 1.3

// Record holds the scheduling state for a single question.
type Record struct {
	EaseFactor  float64    `json:"easeFactor"`
	Interval    int        `json:"interval"` // days until next review
	Repetitions int        `json:"repetitions"`
	NextReview  time.Time  `json:"nextReview"`
	LastReview  *time.Time `json:"lastReviewed,omitempty"`
}

// NewRecord returns the default state for a question reviewed for the
// first time: due immediately, ease factor 2.5.
func NewRecord(now time.Time) Record {
	return Record{
		EaseFactor:  2.5,
		Interval:    1,
		Repetitions: 0,
		NextReview:  now,
	}
}

// Update applies one SM-2 review step and returns the next state.
// A qualifying review (quality >= 3) grows the interval: 1 day, then
// 6 days, then interval*easeFactor rounded. A failed review resets
// repetitions and interval. The ease factor always moves by the SM-2
// delta and never drops below MinEaseFactor.
func Update(r Record, quality int, now time.Time) Record {
	if quality >= 3 {
		switch r.Repetitions {
		case 0:
			r.Interval = 1
		case 1:
			r.Interval = 6
		default:
			r.Interval = int(math.Round(float64(r.Interval) * r.EaseFactor))
		}
		r.Repetitions++
	} else {
		r.Repetitions = 0
		r.Interval = 1
	}

	q := float64(quality)
	r.EaseFactor = math.Max(MinEaseFactor, r.EaseFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)))

	r.NextReview = now.AddDate(0, 0, r.Interval)
	last := now
	r.LastReview = &last
	return r
}

// Due reports whether the record is due at now. The boundary is
// inclusive: a record whose NextReview equals now is due.
func (r Record) Due(now time.Time) bool {
	return !r.NextReview.After(now)
}

// DaysOverdue returns whole days past the review date, 0 if not due.
func (r Record) DaysOverdue(now time.Time) int {
	if !r.Due(now) {
		return 0
	}
	return int(math.Floor(now.Sub(r.NextReview).Hours() / 24))
}
