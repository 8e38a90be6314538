package insight

import (
	"testing"
	"time"
)

func TestPredictEmptyProfile(t *testing.T) {
	f := newFixture(t, genericPrompts(40))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	p := f.analyzer.Predict("sample", now)

	// Accuracy, coverage and streak are 0. Consistency is trivially
	// stable (100) and there are no critical topics (100), so the
	// score is 0.15*100 + 0.15*100 = 30.
	if p.SuccessRate != 30 {
		t.Errorf("SuccessRate = %d, want 30", p.SuccessRate)
	}
	if p.Confidence != ConfidenceLow {
		t.Errorf("Confidence = %q, want %q", p.Confidence, ConfidenceLow)
	}
	if p.Readiness != ReadinessNotReady {
		t.Errorf("Readiness = %q, want %q", p.Readiness, ReadinessNotReady)
	}
	// ceil((85-30)/10) = 6
	if p.RecommendedHours != 6 {
		t.Errorf("RecommendedHours = %d, want 6", p.RecommendedHours)
	}
	if p.Breakdown.Accuracy != 0 || p.Breakdown.Coverage != 0 || p.Breakdown.Streak != 0 {
		t.Errorf("Breakdown = %+v, want zero activity components", p.Breakdown)
	}
	if p.Breakdown.Consistency != 100 || p.Breakdown.WeakTopics != 100 {
		t.Errorf("Breakdown = %+v, want 100 for consistency and weak topics", p.Breakdown)
	}
}

func TestPredictPerfectCoverage(t *testing.T) {
	f := newFixture(t, genericPrompts(40))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for id := 1; id <= 40; id++ {
		f.ledger.RecordAnswer("sample", id, 1, 1, now.Add(time.Duration(id)*time.Minute))
	}

	p := f.analyzer.Predict("sample", now)

	// All components at 100 except the streak (never ticked). The
	// weights sum to 1.1, so the score still lands on 100:
	// 50 + 20 + 15 + 0 + 15.
	if p.SuccessRate != 100 {
		t.Errorf("SuccessRate = %d, want 100", p.SuccessRate)
	}
	if p.Readiness != ReadinessReady {
		t.Errorf("Readiness = %q, want %q with 40 answers at 100", p.Readiness, ReadinessReady)
	}
	// 40 answers but no tests taken keeps confidence low.
	if p.Confidence != ConfidenceLow {
		t.Errorf("Confidence = %q, want %q", p.Confidence, ConfidenceLow)
	}
	if p.RecommendedHours != 0 {
		t.Errorf("RecommendedHours = %d, want 0 above the target score", p.RecommendedHours)
	}
}

func TestPredictConfidenceTiers(t *testing.T) {
	f := newFixture(t, genericPrompts(60))
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for id := 1; id <= 20; id++ {
		f.ledger.RecordAnswer("sample", id, 1, 1, now)
	}
	f.ledger.IncrementTestsTaken(now)

	if got := f.analyzer.Predict("sample", now).Confidence; got != ConfidenceMedium {
		t.Errorf("Confidence = %q, want %q at 20 answers and 1 test", got, ConfidenceMedium)
	}

	for id := 21; id <= 50; id++ {
		f.ledger.RecordAnswer("sample", id, 1, 1, now)
	}
	f.ledger.IncrementTestsTaken(now)
	f.ledger.IncrementTestsTaken(now)

	if got := f.analyzer.Predict("sample", now).Confidence; got != ConfidenceHigh {
		t.Errorf("Confidence = %q, want %q at 50 answers and 3 tests", got, ConfidenceHigh)
	}
}

func TestPredictCriticalTopicsDragScore(t *testing.T) {
	f := newFixture(t, map[int]string{
		1: "What is the speed limit in town?",
		2: "What is the maximum speed here?",
		3: "When may you drive faster than the limit?",
	})
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for id := 1; id <= 3; id++ {
		f.ledger.RecordAnswer("sample", id, 2, 1, now)
	}

	p := f.analyzer.Predict("sample", now)
	if p.Breakdown.WeakTopics != 80 {
		t.Errorf("WeakTopics = %d, want 80 with one critical topic", p.Breakdown.WeakTopics)
	}

	found := false
	for _, line := range p.Insights {
		if line == "You have 1 critical weak area. Focus on these first." {
			found = true
		}
	}
	if !found {
		t.Errorf("Insights = %v, missing the critical-topic warning", p.Insights)
	}
}

func TestPredictStreakInsights(t *testing.T) {
	f := newFixture(t, genericPrompts(10))
	day := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		f.ledger.StreakTick(day.AddDate(0, 0, i))
	}

	p := f.analyzer.Predict("sample", day.AddDate(0, 0, 6))
	if p.Breakdown.Streak != 70 {
		t.Errorf("Streak component = %d, want 70 for a 7-day streak", p.Breakdown.Streak)
	}

	found := false
	for _, line := range p.Insights {
		if line == "Amazing 7-day streak! Consistency is key to success." {
			found = true
		}
	}
	if !found {
		t.Errorf("Insights = %v, missing the streak praise", p.Insights)
	}
}
