package insight

import (
	"testing"
	"time"
)

func TestWeakAreasRequireThreeAnswers(t *testing.T) {
	f := newFixture(t, map[int]string{
		1: "What is the speed limit here?",
		2: "What is the maximum speed there?",
	})
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	f.ledger.RecordAnswer("sample", 1, 2, 1, now)
	f.ledger.RecordAnswer("sample", 2, 2, 1, now)

	if areas := f.analyzer.WeakAreas("sample"); len(areas) != 0 {
		t.Errorf("WeakAreas = %v, want none below 3 classified answers", areas)
	}
}

func TestWeakAreaSeverityTiers(t *testing.T) {
	tests := []struct {
		name     string
		correct  int // out of 4 answered
		severity Severity
		minutes  int
	}{
		{"critical below 50", 1, SeverityCritical, 60},
		{"high below 70", 2, SeverityHigh, 30},
		{"moderate below 85", 3, SeverityModerate, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, map[int]string{
				1: "What is the speed limit in town?",
				2: "What is the maximum speed on a highway?",
				3: "When may you drive faster than the limit?",
				4: "What is the minimum speed on a motorway?",
			})
			now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

			for id := 1; id <= 4; id++ {
				chosen := 2 // wrong
				if id <= tt.correct {
					chosen = 1
				}
				f.ledger.RecordAnswer("sample", id, chosen, 1, now)
			}

			areas := f.analyzer.WeakAreas("sample")
			if len(areas) != 1 {
				t.Fatalf("WeakAreas = %d entries, want 1", len(areas))
			}
			area := areas[0]
			if area.Topic != "Speed Limits" {
				t.Errorf("Topic = %q, want Speed Limits", area.Topic)
			}
			if area.Severity != tt.severity {
				t.Errorf("Severity = %q, want %q", area.Severity, tt.severity)
			}
			if area.StudyMinutes != tt.minutes {
				t.Errorf("StudyMinutes = %d, want %d", area.StudyMinutes, tt.minutes)
			}
			if area.Total != 4 || area.Correct != tt.correct {
				t.Errorf("counts = %d/%d, want %d/4", area.Correct, area.Total, tt.correct)
			}
		})
	}
}

func TestStrongTopicIsNotWeak(t *testing.T) {
	f := newFixture(t, map[int]string{
		1: "What is the speed limit in town?",
		2: "What is the maximum speed on a highway?",
		3: "When may you drive faster than the limit?",
		4: "What is the minimum speed on a motorway?",
	})
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for id := 1; id <= 4; id++ {
		f.ledger.RecordAnswer("sample", id, 1, 1, now)
	}

	if areas := f.analyzer.WeakAreas("sample"); len(areas) != 0 {
		t.Errorf("WeakAreas = %v, want none at 100%% accuracy", areas)
	}
}

func TestWeakAreasOrderedBySeverity(t *testing.T) {
	// Four speed questions all wrong (critical) and four weather
	// questions with one miss at 75% (moderate).
	prompts := map[int]string{
		1: "What is the speed limit in town?",
		2: "What is the maximum speed on a highway?",
		3: "When may you drive faster than the limit?",
		4: "What is the minimum speed on a motorway?",
		5: "How should you drive in heavy rain?",
		6: "What does fog do to visibility?",
		7: "How do you handle ice on the road?",
		8: "When is the road most slippery?",
	}
	f := newFixture(t, prompts)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for id := 1; id <= 4; id++ {
		f.ledger.RecordAnswer("sample", id, 2, 1, now)
	}
	for id := 5; id <= 8; id++ {
		chosen := 1
		if id == 8 {
			chosen = 2
		}
		f.ledger.RecordAnswer("sample", id, chosen, 1, now)
	}

	areas := f.analyzer.WeakAreas("sample")
	if len(areas) != 2 {
		t.Fatalf("WeakAreas = %d entries, want 2", len(areas))
	}
	if areas[0].Severity != SeverityCritical || areas[0].Topic != "Speed Limits" {
		t.Errorf("areas[0] = %s/%s, want critical Speed Limits", areas[0].Topic, areas[0].Severity)
	}
	if areas[1].Severity != SeverityModerate || areas[1].Topic != "Weather Conditions" {
		t.Errorf("areas[1] = %s/%s, want moderate Weather Conditions", areas[1].Topic, areas[1].Severity)
	}
}
