// Package quiz drives quiz sessions: it selects a working set for the
// chosen mode, tracks the cursor, accepts answers, runs the simulator
// countdown, and produces the final result. One session is live at a
// time; the engine is single-owner and callers serialize access.
package quiz

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/insight"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/srs"
)

// Mode identifies how a session selects and treats its working set.
type Mode string

const (
	ModePractice         Mode = "practice"
	ModeSimulator        Mode = "simulator"
	ModeFlashcard        Mode = "flashcard"
	ModeWrongReview      Mode = "wrong_review"
	ModeFavorites        Mode = "favorites"
	ModeSpacedRepetition Mode = "spaced_repetition"
	ModeReview           Mode = "review"
)

// DefaultFlashcardCount is used when no count is requested.
const DefaultFlashcardCount = 20

// passThreshold is the minimum score percentage to pass, on top of the
// per-collection allowed-mistakes rule.
const passThreshold = 70

// Answer is one submitted answer within a session.
type Answer struct {
	ItemID    int       `json:"questionNumber"`
	Chosen    int       `json:"userAnswer"`
	Correct   int       `json:"correctAnswer"`
	IsCorrect bool      `json:"isCorrect"`
	At        time.Time `json:"timestamp"`
}

// Session is the live quiz state. Fields are read directly by the
// presentation layer; only the engine mutates them.
type Session struct {
	ID         string
	Mode       Mode
	Collection string
	TestNumber int
	Questions  []content.Item
	Cursor     int
	Answers    []Answer
	StartedAt  time.Time
	TimeLimit  time.Duration // 0 = untimed

	timer *Countdown
}

// Result summarizes a finished session.
type Result struct {
	Correct         int
	Incorrect       int
	Total           int
	Percentage      int
	Passed          bool
	AllowedMistakes int
	Duration        time.Duration
}

// Engine orchestrates sessions over the content provider, ledger,
// scheduler and analyzer.
type Engine struct {
	content  content.Provider
	ledger   *ledger.Ledger
	sched    *srs.Scheduler
	analyzer *insight.Analyzer

	now func() time.Time
	rng *rand.Rand

	reviewLimit int

	session *Session
}

// NewEngine wires an engine over its collaborators.
func NewEngine(p content.Provider, l *ledger.Ledger, s *srs.Scheduler, a *insight.Analyzer) *Engine {
	return &Engine{
		content:  p,
		ledger:   l,
		sched:    s,
		analyzer: a,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Session returns the live session, or nil.
func (e *Engine) Session() *Session {
	return e.session
}

// StartPractice begins sequential practice test testNumber: the slice
// [(n-1)*pageSize, n*pageSize) of the collection's ordered question
// list. Returns false when the slice is empty.
func (e *Engine) StartPractice(collection string, testNumber int) bool {
	cfg := e.content.Config(collection)
	ids := e.content.ItemIDs(collection)

	start := (testNumber - 1) * cfg.PageSize
	end := start + cfg.PageSize
	var page []int
	if start >= 0 && start < len(ids) {
		if end > len(ids) {
			end = len(ids)
		}
		page = ids[start:end]
	}

	s := e.begin(ModePractice, collection, e.items(collection, page))
	if s == nil {
		return false
	}
	s.TestNumber = testNumber
	return true
}

// StartSimulator begins a timed exam simulation: a uniform random
// sample of the collection's pool, with the collection's time limit.
func (e *Engine) StartSimulator(collection string) bool {
	cfg := e.content.Config(collection)
	sample := e.sample(collection, cfg.SimulatorCount)

	s := e.begin(ModeSimulator, collection, sample)
	if s == nil {
		return false
	}
	s.TimeLimit = time.Duration(cfg.TimeLimitMinutes) * time.Minute
	s.timer = NewCountdown(s.TimeLimit)
	return true
}

// StartFlashcards begins an untimed random-sample session.
func (e *Engine) StartFlashcards(collection string, count int) bool {
	if count <= 0 {
		count = DefaultFlashcardCount
	}
	return e.begin(ModeFlashcard, collection, e.sample(collection, count)) != nil
}

// StartWrongReview begins a session over the wrong-answer set, in set
// order.
func (e *Engine) StartWrongReview(collection string) bool {
	ids := e.ledger.WrongAnswers(collection)
	return e.begin(ModeWrongReview, collection, e.items(collection, ids)) != nil
}

// StartFavoritesReview begins a session over the favorite set, in set
// order.
func (e *Engine) StartFavoritesReview(collection string) bool {
	ids := e.ledger.Favorites(collection)
	return e.begin(ModeFavorites, collection, e.items(collection, ids)) != nil
}

// StartSpacedRepetition begins a session over the analyzer's priority
// ranking, capped at the configured review limit.
func (e *Engine) StartSpacedRepetition(collection string) bool {
	limit := e.reviewLimit
	if limit <= 0 {
		limit = insight.DefaultPriorityLimit
	}
	ids := e.analyzer.PriorityQuestions(collection, limit, e.now())
	return e.begin(ModeSpacedRepetition, collection, e.items(collection, ids)) != nil
}

// SetReviewLimit caps smart-review sessions. Zero restores the default.
func (e *Engine) SetReviewLimit(n int) {
	e.reviewLimit = n
}

// StartReview replays a completed session's answers for read-only
// inspection. Submissions are rejected; no scoring side effects occur.
func (e *Engine) StartReview(collection string, answers []Answer) bool {
	ids := make([]int, len(answers))
	for i, a := range answers {
		ids[i] = a.ItemID
	}
	s := e.begin(ModeReview, collection, e.items(collection, ids))
	if s == nil {
		return false
	}
	s.Answers = append([]Answer(nil), answers...)
	return true
}

// begin replaces any live session. Returns nil when the working set is
// empty, leaving no session live.
func (e *Engine) begin(mode Mode, collection string, questions []content.Item) *Session {
	e.stopTimer()
	e.session = nil
	if len(questions) == 0 {
		return nil
	}
	e.session = &Session{
		ID:         uuid.NewString(),
		Mode:       mode,
		Collection: collection,
		Questions:  questions,
		StartedAt:  e.now(),
	}
	return e.session
}

// Current returns the question under the cursor, or false when the
// session is absent or exhausted.
func (e *Engine) Current() (content.Item, bool) {
	s := e.session
	if s == nil || s.Cursor >= len(s.Questions) {
		return content.Item{}, false
	}
	return s.Questions[s.Cursor], true
}

// Submit records an answer for the current question: it appends to the
// session, updates the ledger and streak, and applies a scheduler
// review (quality 4 when correct, 1 when not). Returns the correctness
// and whether a submission happened at all. Review-mode sessions and
// exhausted sessions reject submissions.
func (e *Engine) Submit(chosen int) (correct, ok bool) {
	item, ok := e.Current()
	if !ok || e.session.Mode == ModeReview {
		return false, false
	}

	now := e.now()
	correct = e.ledger.RecordAnswer(e.session.Collection, item.ID, chosen, item.Correct, now)

	quality := srs.QualityFailed
	if correct {
		quality = srs.QualityGood
	}
	e.sched.Review(e.session.Collection, item.ID, quality, now)
	e.ledger.StreakTick(now)

	e.session.Answers = append(e.session.Answers, Answer{
		ItemID:    item.ID,
		Chosen:    chosen,
		Correct:   item.Correct,
		IsCorrect: correct,
		At:        now,
	})
	return correct, true
}

// Next advances the cursor. Returns whether a question remains.
func (e *Engine) Next() bool {
	s := e.session
	if s == nil {
		return false
	}
	s.Cursor++
	return s.Cursor < len(s.Questions)
}

// Prev moves the cursor back one question. Returns whether it moved.
func (e *Engine) Prev() bool {
	s := e.session
	if s == nil || s.Cursor == 0 {
		return false
	}
	s.Cursor--
	return true
}

// Progress returns the 1-based position and the working set size.
func (e *Engine) Progress() (current, total int) {
	s := e.session
	if s == nil {
		return 0, 0
	}
	current = s.Cursor + 1
	if current > len(s.Questions) {
		current = len(s.Questions)
	}
	return current, len(s.Questions)
}

// Finish stops the timer and scores the session. Passing requires at
// most the collection's allowed mistakes and a score of at least 70%.
// Practice sessions persist a test-progress record; every finish
// counts one taken test. Returns false with a zero result when no
// session is live.
func (e *Engine) Finish() (Result, bool) {
	s := e.session
	if s == nil {
		return Result{}, false
	}
	e.stopTimer()

	correct := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	total := len(s.Answers)
	percentage := 0
	if total > 0 {
		percentage = int(float64(correct)/float64(total)*100 + 0.5)
	}

	now := e.now()
	cfg := e.content.Config(s.Collection)
	incorrect := total - correct
	res := Result{
		Correct:         correct,
		Incorrect:       incorrect,
		Total:           total,
		Percentage:      percentage,
		Passed:          incorrect <= cfg.AllowedMistakes && percentage >= passThreshold,
		AllowedMistakes: cfg.AllowedMistakes,
		Duration:        now.Sub(s.StartedAt),
	}

	if s.Mode == ModeReview {
		return res, true
	}

	e.ledger.IncrementTestsTaken(now)

	if s.Mode == ModePractice {
		e.ledger.SaveTestProgress(s.Collection, s.TestNumber, ledger.TestProgress{
			Completed:       true,
			Score:           res.Percentage,
			Correct:         res.Correct,
			Total:           res.Total,
			Passed:          res.Passed,
			DurationSeconds: int(res.Duration.Seconds()),
		}, now)
	}
	return res, true
}

// Reset abandons the live session and stops its timer.
func (e *Engine) Reset() {
	e.stopTimer()
	e.session = nil
}

// TimerEvents returns the countdown channel, or nil for untimed
// sessions.
func (e *Engine) TimerEvents() <-chan TimerEvent {
	if e.session == nil || e.session.timer == nil {
		return nil
	}
	return e.session.timer.Events()
}

// TimeRemaining reports the wall-clock time left, 0 when exhausted or
// untimed.
func (e *Engine) TimeRemaining() time.Duration {
	s := e.session
	if s == nil || s.TimeLimit == 0 {
		return 0
	}
	remaining := s.TimeLimit - e.now().Sub(s.StartedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ToggleFavorite flips the current question's favorite membership and
// returns the new state. No-op when no question is current.
func (e *Engine) ToggleFavorite() bool {
	item, ok := e.Current()
	if !ok {
		return false
	}
	return e.ledger.ToggleFavorite(e.session.Collection, item.ID)
}

// IsCurrentFavorite reports the current question's favorite state.
func (e *Engine) IsCurrentFavorite() bool {
	item, ok := e.Current()
	if !ok {
		return false
	}
	return e.ledger.IsFavorite(e.session.Collection, item.ID)
}

// SubmittedAnswer returns the session's recorded answer for a question.
func (e *Engine) SubmittedAnswer(itemID int) (Answer, bool) {
	if e.session == nil {
		return Answer{}, false
	}
	for _, a := range e.session.Answers {
		if a.ItemID == itemID {
			return a, true
		}
	}
	return Answer{}, false
}

func (e *Engine) stopTimer() {
	if e.session != nil && e.session.timer != nil {
		e.session.timer.Stop()
		e.session.timer = nil
	}
}

// items maps question ids to items, dropping ids the provider no
// longer knows.
func (e *Engine) items(collection string, ids []int) []content.Item {
	out := make([]content.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := e.content.Item(collection, id); ok {
			out = append(out, item)
		}
	}
	return out
}

// sample draws count distinct questions uniformly from the pool, or
// the whole pool when it is smaller.
func (e *Engine) sample(collection string, count int) []content.Item {
	ids := e.content.ItemIDs(collection)
	shuffled := append([]int(nil), ids...)
	e.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return e.items(collection, shuffled)
}
