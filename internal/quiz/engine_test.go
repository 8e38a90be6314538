package quiz

import (
	"math/rand"
	"testing"
	"time"

	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/insight"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/srs"
	"github.com/avelasco/roadready/internal/store"
)

// stubProvider serves n sequentially numbered questions for one
// collection with a fixed config.
type stubProvider struct {
	n   int
	cfg content.CollectionConfig
}

func (s stubProvider) Item(_ string, id int) (content.Item, bool) {
	if id < 1 || id > s.n {
		return content.Item{}, false
	}
	return content.Item{
		ID:      id,
		Prompt:  "Question?",
		Options: [4]string{"a", "b", "c", "d"},
		Correct: 1,
	}, true
}

func (s stubProvider) ItemIDs(_ string) []int {
	ids := make([]int, s.n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func (s stubProvider) Config(_ string) content.CollectionConfig { return s.cfg }

func (s stubProvider) Collections() []string { return []string{"sample"} }

var testConfig = content.CollectionConfig{
	PageSize:         20,
	SimulatorCount:   10,
	TimeLimitMinutes: 15,
	AllowedMistakes:  2,
}

func newTestEngine(t *testing.T, items int) (*Engine, *ledger.Ledger, *srs.Scheduler) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	p := stubProvider{n: items, cfg: testConfig}
	l := ledger.New(st)
	sched := srs.NewScheduler(st)
	e := NewEngine(p, l, sched, insight.New(p, l, sched))
	e.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) }
	e.rng = rand.New(rand.NewSource(1))
	return e, l, sched
}

// answer works through the live session, getting the first wrong
// questions wrong and the rest right, then finishes.
func answer(t *testing.T, e *Engine, wrong int) Result {
	t.Helper()
	for i := 0; ; i++ {
		item, ok := e.Current()
		if !ok {
			break
		}
		chosen := item.Correct
		if i < wrong {
			chosen = item.Correct%4 + 1
		}
		if _, ok := e.Submit(chosen); !ok {
			t.Fatalf("Submit rejected at question %d", i+1)
		}
		if !e.Next() {
			break
		}
	}
	res, ok := e.Finish()
	if !ok {
		t.Fatal("Finish() returned no result for a live session")
	}
	return res
}

func TestStartPracticeSlices(t *testing.T) {
	e, _, _ := newTestEngine(t, 45)

	if !e.StartPractice("sample", 1) {
		t.Fatal("StartPractice(1) = false")
	}
	s := e.Session()
	if len(s.Questions) != 20 || s.Questions[0].ID != 1 || s.Questions[19].ID != 20 {
		t.Errorf("test 1 covers ids %d..%d (%d questions), want 1..20",
			s.Questions[0].ID, s.Questions[len(s.Questions)-1].ID, len(s.Questions))
	}

	// The last page is short: 45 questions leave 5 for test 3.
	if !e.StartPractice("sample", 3) {
		t.Fatal("StartPractice(3) = false")
	}
	s = e.Session()
	if len(s.Questions) != 5 || s.Questions[0].ID != 41 {
		t.Errorf("test 3 starts at id %d with %d questions, want 41 with 5", s.Questions[0].ID, len(s.Questions))
	}
	if s.TestNumber != 3 {
		t.Errorf("TestNumber = %d, want 3", s.TestNumber)
	}

	if e.StartPractice("sample", 4) {
		t.Error("StartPractice(4) = true, want false past the last page")
	}
	// A failed start must not leave the previous test's session live.
	if e.Session() != nil {
		t.Error("failed start left a stale session live")
	}
	if e.StartPractice("sample", 0) {
		t.Error("StartPractice(0) = true, want false")
	}
	if e.Session() != nil {
		t.Error("failed start left a session live")
	}
}

func TestSubmitSideEffects(t *testing.T) {
	e, l, sched := newTestEngine(t, 45)
	e.StartPractice("sample", 1)

	correct, ok := e.Submit(1)
	if !ok || !correct {
		t.Fatalf("Submit(correct) = %v, %v, want true, true", correct, ok)
	}
	e.Next()
	correct, ok = e.Submit(3)
	if !ok || correct {
		t.Fatalf("Submit(wrong) = %v, %v, want false, true", correct, ok)
	}

	stats := l.Stats()
	if stats.TotalSolved != 2 || stats.Correct != 1 || stats.Incorrect != 1 {
		t.Errorf("stats = %+v, want 2 solved, 1 correct, 1 incorrect", stats)
	}
	if wrong := l.WrongAnswers("sample"); len(wrong) != 1 || wrong[0] != 2 {
		t.Errorf("WrongAnswers = %v, want [2]", wrong)
	}
	if streak := l.Streak(); streak.Current != 1 {
		t.Errorf("streak = %d, want 1 after answering today", streak.Current)
	}

	rec := sched.Record("sample", 1, e.now())
	if rec.Repetitions != 1 || rec.EaseFactor != 2.5 {
		t.Errorf("record for correct answer = %+v, want 1 repetition at ease 2.5", rec)
	}
	rec = sched.Record("sample", 2, e.now())
	if rec.Repetitions != 0 || rec.EaseFactor >= 2.5 {
		t.Errorf("record for wrong answer = %+v, want reset repetitions and lowered ease", rec)
	}
}

func TestFinishScoring(t *testing.T) {
	tests := []struct {
		name       string
		wrong      int
		percentage int
		passed     bool
	}{
		{"clean pass", 0, 100, true},
		{"one mistake", 1, 80, true},
		{"under pass threshold", 2, 60, false}, // within the mistake budget, but 60% < 70%
		{"over mistake budget", 3, 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t, 45)
			// Test 3 holds the 5 leftover questions.
			if !e.StartPractice("sample", 3) {
				t.Fatal("StartPractice(3) = false")
			}
			res := answer(t, e, tt.wrong)

			if res.Total != 5 || res.Correct != 5-tt.wrong {
				t.Errorf("result = %d/%d, want %d/5", res.Correct, res.Total, 5-tt.wrong)
			}
			if res.Percentage != tt.percentage {
				t.Errorf("Percentage = %d, want %d", res.Percentage, tt.percentage)
			}
			if res.Passed != tt.passed {
				t.Errorf("Passed = %v, want %v", res.Passed, tt.passed)
			}
			if res.AllowedMistakes != 2 {
				t.Errorf("AllowedMistakes = %d, want 2", res.AllowedMistakes)
			}
		})
	}
}

func TestFinishPersistsPracticeProgress(t *testing.T) {
	e, l, _ := newTestEngine(t, 45)
	e.StartPractice("sample", 3)
	res := answer(t, e, 1)

	p, ok := l.TestProgressFor("sample", 3)
	if !ok {
		t.Fatal("no progress saved for test 3")
	}
	if !p.Completed || p.Score != res.Percentage || p.Passed != res.Passed {
		t.Errorf("progress = %+v, want completed with score %d", p, res.Percentage)
	}
	if got := l.Stats().TestsTaken; got != 1 {
		t.Errorf("TestsTaken = %d, want 1", got)
	}
	if e.Session() == nil {
		t.Error("Finish cleared the session; the summary still reads it")
	}
}

func TestReviewModeIsReadOnly(t *testing.T) {
	e, l, _ := newTestEngine(t, 45)
	e.StartPractice("sample", 3)
	answer(t, e, 2)
	answers := append([]Answer(nil), e.Session().Answers...)

	if !e.StartReview("sample", answers) {
		t.Fatal("StartReview = false")
	}
	if _, ok := e.Submit(1); ok {
		t.Error("Submit accepted in review mode")
	}
	res, ok := e.Finish()
	if !ok {
		t.Fatal("Finish() = false for review session")
	}
	if res.Correct != 3 || res.Incorrect != 2 {
		t.Errorf("review result = %d/%d incorrect %d, want 3/5 with 2", res.Correct, res.Total, res.Incorrect)
	}
	if got := l.Stats().TestsTaken; got != 1 {
		t.Errorf("TestsTaken = %d after review, want the original 1", got)
	}
}

func TestSimulatorSession(t *testing.T) {
	e, _, _ := newTestEngine(t, 45)
	if !e.StartSimulator("sample") {
		t.Fatal("StartSimulator = false")
	}
	s := e.Session()
	defer e.Reset()

	if len(s.Questions) != 10 {
		t.Fatalf("simulator drew %d questions, want 10", len(s.Questions))
	}
	seen := make(map[int]bool)
	for _, q := range s.Questions {
		if seen[q.ID] {
			t.Errorf("question %d drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
	if s.TimeLimit != 15*time.Minute {
		t.Errorf("TimeLimit = %v, want 15m", s.TimeLimit)
	}
	if e.TimerEvents() == nil {
		t.Error("TimerEvents() = nil for a timed session")
	}

	e.now = func() time.Time { return s.StartedAt.Add(5 * time.Minute) }
	if got := e.TimeRemaining(); got != 10*time.Minute {
		t.Errorf("TimeRemaining = %v, want 10m", got)
	}
}

func TestSimulatorClampsToPool(t *testing.T) {
	e, _, _ := newTestEngine(t, 4)
	if !e.StartSimulator("sample") {
		t.Fatal("StartSimulator = false")
	}
	defer e.Reset()
	if got := len(e.Session().Questions); got != 4 {
		t.Errorf("simulator drew %d questions from a pool of 4, want 4", got)
	}
}

func TestStartWrongReviewUsesSetOrder(t *testing.T) {
	e, l, _ := newTestEngine(t, 45)
	l.RecordAnswer("sample", 7, 2, 1, e.now())
	l.RecordAnswer("sample", 3, 2, 1, e.now())

	if !e.StartWrongReview("sample") {
		t.Fatal("StartWrongReview = false")
	}
	s := e.Session()
	if len(s.Questions) != 2 || s.Questions[0].ID != 7 || s.Questions[1].ID != 3 {
		t.Errorf("wrong review ids = %v, want [7 3] in insertion order", questionIDs(s))
	}

	if e.StartFavoritesReview("sample") {
		t.Error("StartFavoritesReview = true with no favorites")
	}
}

func TestStartSpacedRepetitionHonorsLimit(t *testing.T) {
	e, l, _ := newTestEngine(t, 45)
	for id := 1; id <= 5; id++ {
		l.RecordAnswer("sample", id, 2, 1, e.now())
	}

	e.SetReviewLimit(2)
	if !e.StartSpacedRepetition("sample") {
		t.Fatal("StartSpacedRepetition = false")
	}
	if got := len(e.Session().Questions); got != 2 {
		t.Errorf("smart review drew %d questions, want the limit of 2", got)
	}

	e.SetReviewLimit(0)
	e.StartSpacedRepetition("sample")
	if got := len(e.Session().Questions); got != 5 {
		t.Errorf("smart review drew %d questions, want all 5 under the default limit", got)
	}
}

func TestCursorMovement(t *testing.T) {
	e, _, _ := newTestEngine(t, 45)
	e.StartPractice("sample", 3)

	if e.Prev() {
		t.Error("Prev() = true at the first question")
	}
	if cur, total := e.Progress(); cur != 1 || total != 5 {
		t.Errorf("Progress = %d/%d, want 1/5", cur, total)
	}
	for i := 0; i < 4; i++ {
		if !e.Next() {
			t.Fatalf("Next() = false at question %d", i+1)
		}
	}
	if e.Next() {
		t.Error("Next() = true past the last question")
	}
	if _, ok := e.Current(); ok {
		t.Error("Current() = true past the last question")
	}
	if _, ok := e.Submit(1); ok {
		t.Error("Submit accepted past the last question")
	}
	if cur, _ := e.Progress(); cur != 5 {
		t.Errorf("Progress current = %d past the end, want clamped to 5", cur)
	}
	if !e.Prev() {
		t.Error("Prev() = false with room to move back")
	}
}

func TestFinishWithoutSession(t *testing.T) {
	e, _, _ := newTestEngine(t, 45)
	if _, ok := e.Finish(); ok {
		t.Error("Finish() = true with no session")
	}
	e.StartPractice("sample", 1)
	e.Reset()
	if e.Session() != nil {
		t.Error("Reset left a session live")
	}
}

func questionIDs(s *Session) []int {
	ids := make([]int, len(s.Questions))
	for i, q := range s.Questions {
		ids[i] = q.ID
	}
	return ids
}
