package insight

import "testing"

func TestTopicMatches(t *testing.T) {
	speed := Topics[0]
	if speed.Name != "Speed Limits" {
		t.Fatalf("Topics[0] = %q, taxonomy order changed", speed.Name)
	}

	tests := []struct {
		prompt string
		want   bool
	}{
		{"What is the maximum speed in town?", true},
		{"WHAT IS THE SPEED LIMIT?", true}, // case-insensitive
		{"When must you yield?", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := speed.Matches(tt.prompt); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.prompt, got, tt.want)
		}
	}
}

func TestClassificationIsNonExclusive(t *testing.T) {
	prompt := "What speed applies when you turn at an intersection?"
	matched := 0
	for _, topic := range Topics {
		if topic.Matches(prompt) {
			matched++
		}
	}
	if matched < 2 {
		t.Errorf("prompt matched %d topics, want several (classification is non-exclusive)", matched)
	}
}

func TestImprovementPlan(t *testing.T) {
	if got := ImprovementPlan("Speed Limits"); got == genericPlan {
		t.Error("known topic should have a specific plan")
	}
	if got := ImprovementPlan("No Such Topic"); got != genericPlan {
		t.Errorf("unknown topic plan = %q, want the generic fallback", got)
	}
}
