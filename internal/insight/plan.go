package insight

import (
	"fmt"
	"time"
)

// Task priorities for the daily study plan.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task is one entry of the daily study plan.
type Task struct {
	Title            string
	Description      string
	Priority         string
	EstimatedMinutes int
	Type             string
	Action           string
}

// DailyPlan builds a rule-based study plan. Task order is fixed:
// due reviews, critical weak topics, practice test, new content,
// flashcards, streak maintenance.
func (a *Analyzer) DailyPlan(collection string, now time.Time) []Task {
	var tasks []Task

	due := a.sched.DueReviews(collection, now)
	if len(due) > 0 {
		plural := ""
		if len(due) > 1 {
			plural = "s"
		}
		tasks = append(tasks, Task{
			Title:            "Review Due Questions",
			Description:      fmt.Sprintf("Review %d question%s scheduled for today", len(due), plural),
			Priority:         PriorityHigh,
			EstimatedMinutes: len(due) * 2,
			Type:             "review",
			Action:           "spaced_repetition",
		})
	}

	for _, area := range a.WeakAreas(collection) {
		if area.Severity != SeverityCritical {
			continue
		}
		tasks = append(tasks, Task{
			Title:            "Master " + area.Topic,
			Description:      area.Plan,
			Priority:         PriorityHigh,
			EstimatedMinutes: area.StudyMinutes,
			Type:             "weak_area",
			Action:           "practice_topic",
		})
	}

	stats := a.ledger.Stats()
	if stats.TestsTaken < 5 {
		tasks = append(tasks, Task{
			Title:            "Complete Practice Test",
			Description:      "Take a full practice test to assess your progress",
			Priority:         PriorityMedium,
			EstimatedMinutes: 30,
			Type:             "practice",
			Action:           "practice_test",
		})
	}

	answered := a.ledger.AnsweredCount(collection)
	total := len(a.content.ItemIDs(collection))
	if answered < total {
		tasks = append(tasks, Task{
			Title:            "Explore New Questions",
			Description:      fmt.Sprintf("%d questions remaining to complete all content", total-answered),
			Priority:         PriorityMedium,
			EstimatedMinutes: 20,
			Type:             "new_content",
			Action:           "practice_test",
		})
	}

	tasks = append(tasks, Task{
		Title:            "Flashcard Practice",
		Description:      "Quick review with flashcards for reinforcement",
		Priority:         PriorityLow,
		EstimatedMinutes: 15,
		Type:             "flashcard",
		Action:           "flashcards",
	})

	streak := a.ledger.Streak()
	if streak.Current >= 3 {
		tasks = append(tasks, Task{
			Title:            "Maintain Your Streak",
			Description:      fmt.Sprintf("Keep your %d-day streak alive!", streak.Current),
			Priority:         PriorityMedium,
			EstimatedMinutes: 10,
			Type:             "streak",
			Action:           "quick_practice",
		})
	}

	return tasks
}
