package insight

import (
	"testing"
	"time"

	"github.com/avelasco/roadready/internal/srs"
)

func TestPriorityQuestionsRanksWrongAboveFreshDue(t *testing.T) {
	f := newFixture(t, genericPrompts(10))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// Item 1 reviewed successfully; it comes due tomorrow with priority
	// (5 - 2.5) = 2.5. Item 2 answered wrong: priority 15 - 2.5 = 12.5.
	f.sched.Review("sample", 1, srs.QualityGood, now)
	f.ledger.RecordAnswer("sample", 2, 2, 1, now)

	got := f.analyzer.PriorityQuestions("sample", 20, now.AddDate(0, 0, 1))
	want := []int{2, 1}
	if len(got) != len(want) {
		t.Fatalf("PriorityQuestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PriorityQuestions = %v, want %v", got, want)
		}
	}
}

func TestPriorityQuestionsOverdueWeight(t *testing.T) {
	f := newFixture(t, genericPrompts(10))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	f.sched.Review("sample", 1, srs.QualityGood, now)
	f.sched.Review("sample", 2, srs.QualityGood, now.AddDate(0, 0, 3))

	// Four days later item 1 is 3 days overdue (priority 32.5), item 2
	// is 0 days overdue (priority 2.5).
	got := f.analyzer.PriorityQuestions("sample", 20, now.AddDate(0, 0, 4))
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("PriorityQuestions = %v, want [1 2] (most overdue first)", got)
	}
}

func TestPriorityQuestionsKeepDuplicates(t *testing.T) {
	f := newFixture(t, genericPrompts(10))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	// Item 1 is both due and in the wrong set; it appears once per
	// source.
	f.sched.Review("sample", 1, srs.QualityFailed, now)
	f.ledger.RecordAnswer("sample", 1, 2, 1, now)

	got := f.analyzer.PriorityQuestions("sample", 20, now.AddDate(0, 0, 1))
	if len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Errorf("PriorityQuestions = %v, want [1 1] (sources are not deduplicated)", got)
	}
}

func TestPriorityQuestionsLimit(t *testing.T) {
	f := newFixture(t, genericPrompts(10))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for id := 1; id <= 8; id++ {
		f.ledger.RecordAnswer("sample", id, 2, 1, now)
	}

	if got := f.analyzer.PriorityQuestions("sample", 3, now); len(got) != 3 {
		t.Errorf("len = %d, want the limit of 3", len(got))
	}
	if got := f.analyzer.PriorityQuestions("sample", 0, now); len(got) != 8 {
		t.Errorf("len = %d, want all 8 with no limit", len(got))
	}
}

func TestPriorityQuestionsEmpty(t *testing.T) {
	f := newFixture(t, genericPrompts(10))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	if got := f.analyzer.PriorityQuestions("sample", 20, now); len(got) != 0 {
		t.Errorf("PriorityQuestions = %v, want empty with no history", got)
	}
}
