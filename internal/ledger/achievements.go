package ledger

import "fmt"

// Achievement is a badge earned from cumulative activity.
type Achievement struct {
	Icon        string
	Title       string
	Description string
}

// Achievements derives the earned badges from stats and streak state.
// Within each family only the highest earned tier is reported.
func (l *Ledger) Achievements() []Achievement {
	stats := l.Stats()
	streak := l.Streak()
	var out []Achievement

	switch {
	case stats.TotalSolved >= 500:
		out = append(out, Achievement{"🏆", "Expert", "500+ questions solved"})
	case stats.TotalSolved >= 250:
		out = append(out, Achievement{"⭐", "Advanced", "250+ questions solved"})
	case stats.TotalSolved >= 100:
		out = append(out, Achievement{"🌟", "Intermediate", "100+ questions solved"})
	case stats.TotalSolved >= 50:
		out = append(out, Achievement{"✨", "Beginner", "50+ questions solved"})
	}

	switch {
	case stats.AccuracyRate >= 90:
		out = append(out, Achievement{"🎯", "Sharpshooter", "90%+ accuracy"})
	case stats.AccuracyRate >= 80:
		out = append(out, Achievement{"🎪", "Accurate", "80%+ accuracy"})
	}

	switch {
	case streak.Current >= 30:
		out = append(out, Achievement{"🔥", "On Fire!", "30-day streak"})
	case streak.Current >= 14:
		out = append(out, Achievement{"💪", "Dedicated", "2-week streak"})
	case streak.Current >= 7:
		out = append(out, Achievement{"📚", "Consistent", "7-day streak"})
	}

	switch {
	case stats.TestsTaken >= 20:
		out = append(out, Achievement{"📝", "Test Master", "20+ tests completed"})
	case stats.TestsTaken >= 10:
		out = append(out, Achievement{"✏️", "Test Pro", "10+ tests completed"})
	}

	return out
}

// String renders the badge for plain-text listings.
func (a Achievement) String() string {
	return fmt.Sprintf("%s %s — %s", a.Icon, a.Title, a.Description)
}
