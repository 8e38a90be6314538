package insights

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/roadready/internal/insight"
	"github.com/avelasco/roadready/internal/quiz"
	"github.com/avelasco/roadready/internal/router"
	"github.com/avelasco/roadready/internal/screen"
	sessionscreen "github.com/avelasco/roadready/internal/screens/session"
	"github.com/avelasco/roadready/internal/ui/components"
	"github.com/avelasco/roadready/internal/ui/layout"
	"github.com/avelasco/roadready/internal/ui/theme"
)

// InsightsScreen shows the exam readiness prediction, weak areas and
// the generated study plan.
type InsightsScreen struct {
	engine     *quiz.Engine
	collection string

	prediction insight.Prediction
	weakAreas  []insight.WeakArea
	plan       []insight.Task
	status     string
}

var _ screen.Screen = (*InsightsScreen)(nil)

// New computes the analysis once at open time.
func New(engine *quiz.Engine, analyzer *insight.Analyzer, collection string) *InsightsScreen {
	now := time.Now()
	return &InsightsScreen{
		engine:     engine,
		collection: collection,
		prediction: analyzer.Predict(collection, now),
		weakAreas:  analyzer.WeakAreas(collection),
		plan:       analyzer.DailyPlan(collection, now),
	}
}

func (s *InsightsScreen) Init() tea.Cmd {
	return nil
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "s" {
		if !s.engine.StartSpacedRepetition(s.collection) {
			s.status = "Nothing to review yet."
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: sessionscreen.New(s.engine)}
		}
	}
	return s, nil
}

func (s *InsightsScreen) View(width, height int) string {
	var b strings.Builder
	barWidth := min(width-24, 40)

	b.WriteString(theme.Title.Render("EXAM READINESS") + "\n\n")

	p := s.prediction
	rateStyle := theme.Correct
	if p.SuccessRate < 60 {
		rateStyle = theme.Incorrect
	} else if p.SuccessRate < 85 {
		rateStyle = theme.Warning
	}
	b.WriteString(rateStyle.Render(fmt.Sprintf("%d%%", p.SuccessRate)) +
		theme.Body.Render("  "+p.Readiness) +
		theme.Hint.Render("  ("+p.Confidence+" confidence)") + "\n")
	if p.RecommendedHours > 0 {
		b.WriteString(theme.Hint.Render(
			fmt.Sprintf("Estimated %d more study hours to reach the pass zone", p.RecommendedHours)) + "\n")
	}
	b.WriteString("\n")

	factors := []struct {
		label string
		value int
	}{
		{"Accuracy   ", p.Breakdown.Accuracy},
		{"Coverage   ", p.Breakdown.Coverage},
		{"Consistency", p.Breakdown.Consistency},
		{"Streak     ", p.Breakdown.Streak},
		{"Weak topics", p.Breakdown.WeakTopics},
	}
	for _, f := range factors {
		bar := components.NewProgressBar(f.label, float64(f.value)/100, true, barWidth)
		b.WriteString(bar.View() + "\n")
	}

	if len(s.weakAreas) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Weak areas") + "\n")
		for _, w := range s.weakAreas {
			sev := lipgloss.NewStyle().
				Foreground(theme.SeverityColor(string(w.Severity))).
				Bold(true).
				Render(strings.ToUpper(string(w.Severity)))
			b.WriteString(fmt.Sprintf("%s  %s  %d%% (%d/%d)  ~%d min\n",
				sev, w.Topic, w.Accuracy, w.Correct, w.Total, w.StudyMinutes))
			b.WriteString("  " + theme.Hint.Render(w.Plan) + "\n")
		}
	}

	if len(s.plan) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Today's plan") + "\n")
		for _, t := range s.plan {
			marker := lipgloss.NewStyle().
				Foreground(priorityColor(t.Priority)).
				Render("●")
			b.WriteString(fmt.Sprintf("%s %s  %s\n", marker, t.Title,
				theme.Hint.Render(fmt.Sprintf("%d min", t.EstimatedMinutes))))
			b.WriteString("  " + theme.Hint.Render(t.Description) + "\n")
		}
	}

	for _, line := range p.Insights {
		b.WriteString("\n" + theme.Body.Render(line))
	}

	if s.status != "" {
		b.WriteString("\n\n" + theme.Warning.Render(s.status))
	}

	box := theme.Card.Width(min(width-4, 90)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *InsightsScreen) Title() string {
	return "Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "S", Description: "Smart review"},
		{Key: "Esc", Description: "Back"},
	}
}

func priorityColor(priority string) color.Color {
	switch priority {
	case insight.PriorityHigh:
		return theme.Error
	case insight.PriorityMedium:
		return theme.Accent
	default:
		return theme.Secondary
	}
}
