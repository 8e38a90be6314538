// Package ledger records answer outcomes and the aggregates derived
// from them: user statistics, the wrong-answer and favorite sets, the
// study streak, day-bucketed activity for trend reporting, and
// per-test progress.
//
// Only the most recent attempt per question is kept; aggregates carry
// the full history. Wrong-answer entries are retained even after a
// later correct answer; only an explicit clear removes them, and the
// priority ranking downstream depends on that.
package ledger

import (
	"math"
	"time"

	"github.com/avelasco/roadready/internal/store"
)

// AnswerEntry is the most recent attempt at a question.
type AnswerEntry struct {
	Answer    int       `json:"answer"` // 1-based chosen option
	Correct   bool      `json:"correct"`
	Timestamp time.Time `json:"timestamp"`
}

// UserStats aggregates answer outcomes across all collections.
// AccuracyRate is always recomputed from the counters, never written
// independently.
type UserStats struct {
	TotalSolved  int       `json:"totalQuestionsSolved"`
	Correct      int       `json:"correctAnswers"`
	Incorrect    int       `json:"incorrectAnswers"`
	TestsTaken   int       `json:"testsTaken"`
	AccuracyRate float64   `json:"accuracyRate"` // percent, 1 decimal
	LastUpdated  time.Time `json:"lastUpdated"`
}

// DayActivity counts answers in one calendar day.
type DayActivity struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// DayPerformance is one bucket of the 7-day trend.
type DayPerformance struct {
	Date     time.Time
	Label    string // short weekday name
	Correct  int
	Total    int
	Accuracy int // percent, 0 when no answers
}

const dayFormat = "2006-01-02"

// Ledger provides all answer-derived state on top of the store.
type Ledger struct {
	store *store.Store
}

// New creates a ledger backed by st.
func New(st *store.Store) *Ledger {
	return &Ledger{store: st}
}

// RecordAnswer upserts the latest attempt for a question, updates the
// aggregate counters and daily activity, and tracks the question in
// the wrong-answer set when incorrect. Returns whether the attempt was
// correct.
func (l *Ledger) RecordAnswer(collection string, itemID, chosen, correctOption int, now time.Time) bool {
	correct := chosen == correctOption

	answers := l.allAnswers()
	if answers[collection] == nil {
		answers[collection] = make(map[int]AnswerEntry)
	}
	answers[collection][itemID] = AnswerEntry{Answer: chosen, Correct: correct, Timestamp: now}
	l.store.Set(store.KeyAnswers, answers)

	stats := l.Stats()
	stats.TotalSolved++
	if correct {
		stats.Correct++
	} else {
		stats.Incorrect++
	}
	l.saveStats(stats, now)

	day := now.Format(dayFormat)
	activity := l.dailyActivity()
	bucket := activity[day]
	bucket.Answered++
	if correct {
		bucket.Correct++
	}
	activity[day] = bucket
	l.store.Set(store.KeyDailyActivity, activity)

	if !correct {
		l.addWrong(collection, itemID)
	}
	return correct
}

// Answers returns the latest attempts for a collection, keyed by
// question id.
func (l *Ledger) Answers(collection string) map[int]AnswerEntry {
	answers := l.allAnswers()[collection]
	if answers == nil {
		return map[int]AnswerEntry{}
	}
	return answers
}

// AnsweredCount returns how many distinct questions in the collection
// have been attempted.
func (l *Ledger) AnsweredCount(collection string) int {
	return len(l.allAnswers()[collection])
}

// Stats returns the aggregate user statistics.
func (l *Ledger) Stats() UserStats {
	var stats UserStats
	l.store.Get(store.KeyUserStats, &stats)
	return stats
}

// IncrementTestsTaken bumps the completed-test counter.
func (l *Ledger) IncrementTestsTaken(now time.Time) {
	stats := l.Stats()
	stats.TestsTaken++
	l.saveStats(stats, now)
}

// WeeklyTrend returns the last 7 days of activity, oldest to newest,
// labeled by short weekday name.
func (l *Ledger) WeeklyTrend(now time.Time) []DayPerformance {
	activity := l.dailyActivity()
	trend := make([]DayPerformance, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		bucket := activity[date.Format(dayFormat)]
		accuracy := 0
		if bucket.Answered > 0 {
			accuracy = int(math.Round(float64(bucket.Correct) / float64(bucket.Answered) * 100))
		}
		trend = append(trend, DayPerformance{
			Date:     date,
			Label:    date.Format("Mon"),
			Correct:  bucket.Correct,
			Total:    bucket.Answered,
			Accuracy: accuracy,
		})
	}
	return trend
}

func (l *Ledger) allAnswers() map[string]map[int]AnswerEntry {
	answers := make(map[string]map[int]AnswerEntry)
	l.store.Get(store.KeyAnswers, &answers)
	return answers
}

func (l *Ledger) dailyActivity() map[string]DayActivity {
	activity := make(map[string]DayActivity)
	l.store.Get(store.KeyDailyActivity, &activity)
	return activity
}

func (l *Ledger) saveStats(stats UserStats, now time.Time) {
	stats.AccuracyRate = accuracyRate(stats.Correct, stats.Incorrect)
	stats.LastUpdated = now
	l.store.Set(store.KeyUserStats, stats)
}

// accuracyRate derives the percentage to 1 decimal, 0 when no answers.
func accuracyRate(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*1000) / 10
}
