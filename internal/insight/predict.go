package insight

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Component weights of the composite readiness score. They sum to 1.1,
// so a profile can reach 100 without a perfect streak.
const (
	weightAccuracy    = 0.50
	weightCoverage    = 0.20
	weightConsistency = 0.15
	weightStreak      = 0.10
	weightWeakTopics  = 0.15
)

// recentWindow is how many latest answers the consistency check uses.
const recentWindow = 20

// Breakdown exposes the rounded component scores of a prediction.
type Breakdown struct {
	Accuracy    int
	Coverage    int
	Consistency int
	Streak      int
	WeakTopics  int
}

// Prediction is the exam-readiness report. It is a deterministic
// weighted heuristic over ledger and scheduler data, not a model.
type Prediction struct {
	SuccessRate      int // percent
	Confidence       string
	Readiness        string
	RecommendedHours int
	Breakdown        Breakdown
	Insights         []string
}

// Confidence labels.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Readiness labels.
const (
	ReadinessReady    = "Ready"
	ReadinessAlmost   = "Almost Ready"
	ReadinessNeedWork = "Needs Work"
	ReadinessNotReady = "Not Ready"
)

// Predict combines accuracy, coverage, consistency, streak and weak
// topics into a single readiness score with confidence and readiness
// tiers.
func (a *Analyzer) Predict(collection string, now time.Time) Prediction {
	stats := a.ledger.Stats()
	answers := a.ledger.Answers(collection)
	streak := a.ledger.Streak()

	answeredCount := len(answers)
	totalAvailable := len(a.content.ItemIDs(collection))

	accuracyScore := stats.AccuracyRate

	coverageScore := 0.0
	if totalAvailable > 0 {
		coverageScore = math.Min(float64(answeredCount)/float64(totalAvailable)*100, 100)
	}

	// Consistency compares overall accuracy with the latest answers:
	// a drift under 10 points scores 100, anything else 70. The signal
	// is deliberately binary.
	recent := make([]bool, 0, recentWindow)
	type stamped struct {
		at      time.Time
		correct bool
	}
	ordered := make([]stamped, 0, len(answers))
	for _, entry := range answers {
		ordered = append(ordered, stamped{entry.Timestamp, entry.Correct})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].at.After(ordered[j].at) })
	for i := 0; i < len(ordered) && i < recentWindow; i++ {
		recent = append(recent, ordered[i].correct)
	}
	recentAccuracy := 0.0
	if len(recent) > 0 {
		hits := 0
		for _, c := range recent {
			if c {
				hits++
			}
		}
		recentAccuracy = float64(hits) / float64(len(recent)) * 100
	}
	consistencyScore := 70.0
	if math.Abs(accuracyScore-recentAccuracy) < 10 {
		consistencyScore = 100.0
	}

	streakScore := math.Min(float64(streak.Current)*10, 100)

	criticalTopics := 0
	for _, area := range a.WeakAreas(collection) {
		if area.Severity == SeverityCritical {
			criticalTopics++
		}
	}
	weakTopicScore := math.Max(100-float64(criticalTopics)*20, 0)

	successRate := accuracyScore*weightAccuracy +
		coverageScore*weightCoverage +
		consistencyScore*weightConsistency +
		streakScore*weightStreak +
		weakTopicScore*weightWeakTopics

	confidence := ConfidenceLow
	switch {
	case answeredCount >= 50 && stats.TestsTaken >= 3:
		confidence = ConfidenceHigh
	case answeredCount >= 20 && stats.TestsTaken >= 1:
		confidence = ConfidenceMedium
	}

	readiness := ReadinessNotReady
	switch {
	case successRate >= 85 && answeredCount >= 30:
		readiness = ReadinessReady
	case successRate >= 75 && answeredCount >= 20:
		readiness = ReadinessAlmost
	case successRate >= 60:
		readiness = ReadinessNeedWork
	}

	hours := int(math.Max(0, math.Ceil((85-successRate)/10)))

	return Prediction{
		SuccessRate:      int(math.Round(successRate)),
		Confidence:       confidence,
		Readiness:        readiness,
		RecommendedHours: hours,
		Breakdown: Breakdown{
			Accuracy:    int(math.Round(accuracyScore)),
			Coverage:    int(math.Round(coverageScore)),
			Consistency: int(math.Round(consistencyScore)),
			Streak:      int(math.Round(streakScore)),
			WeakTopics:  int(math.Round(weakTopicScore)),
		},
		Insights: buildInsights(successRate, criticalTopics, streak.Current),
	}
}

// buildInsights selects coaching messages by score tier, critical-topic
// count and streak length.
func buildInsights(successRate float64, criticalTopics, streak int) []string {
	var insights []string

	switch {
	case successRate >= 85:
		insights = append(insights, "Excellent! You're performing above the passing threshold.")
	case successRate >= 75:
		insights = append(insights, "Good progress! A bit more practice will get you exam-ready.")
	case successRate >= 60:
		insights = append(insights, "Keep studying! Focus on your weak areas to improve faster.")
	default:
		insights = append(insights, "More practice needed. Don't worry, you'll get there!")
	}

	if criticalTopics > 0 {
		plural := ""
		if criticalTopics > 1 {
			plural = "s"
		}
		insights = append(insights, fmt.Sprintf("You have %d critical weak area%s. Focus on these first.", criticalTopics, plural))
	}

	switch {
	case streak >= 7:
		insights = append(insights, fmt.Sprintf("Amazing %d-day streak! Consistency is key to success.", streak))
	case streak >= 3:
		insights = append(insights, fmt.Sprintf("Great %d-day streak! Keep it up.", streak))
	}

	return insights
}
