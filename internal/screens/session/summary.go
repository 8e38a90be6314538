package session

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/roadready/internal/quiz"
	"github.com/avelasco/roadready/internal/router"
	"github.com/avelasco/roadready/internal/screen"
	"github.com/avelasco/roadready/internal/ui/components"
	"github.com/avelasco/roadready/internal/ui/layout"
	"github.com/avelasco/roadready/internal/ui/theme"
)

// SummaryScreen shows the result of a finished session and can replay
// its answers in review mode.
type SummaryScreen struct {
	engine     *quiz.Engine
	result     quiz.Result
	mode       quiz.Mode
	collection string
	answers    []quiz.Answer
	timedOut   bool
}

var _ screen.Screen = (*SummaryScreen)(nil)

// NewSummary captures the finished session's answers so the review
// replay survives the engine starting a new session.
func NewSummary(engine *quiz.Engine, result quiz.Result, timedOut bool) *SummaryScreen {
	s := &SummaryScreen{
		engine:   engine,
		result:   result,
		timedOut: timedOut,
	}
	if sess := engine.Session(); sess != nil {
		s.mode = sess.Mode
		s.collection = sess.Collection
		s.answers = append([]quiz.Answer(nil), sess.Answers...)
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r":
		if len(s.answers) == 0 {
			return s, nil
		}
		if !s.engine.StartReview(s.collection, s.answers) {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: New(s.engine)}
		}
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	if s.scored() {
		if s.result.Passed {
			b.WriteString(theme.Correct.Render("PASSED") + "\n\n")
		} else {
			b.WriteString(theme.Incorrect.Render("NOT PASSED") + "\n\n")
		}
		if s.timedOut {
			b.WriteString(theme.Warning.Render("Time expired.") + "\n\n")
		}
	} else {
		b.WriteString(theme.Title.Render("Session Complete") + "\n\n")
	}

	b.WriteString(fmt.Sprintf("Score       %d%%\n", s.result.Percentage))
	b.WriteString(fmt.Sprintf("Correct     %d of %d\n", s.result.Correct, s.result.Total))
	b.WriteString(fmt.Sprintf("Mistakes    %d", s.result.Incorrect))
	if s.scored() {
		b.WriteString(fmt.Sprintf(" (max %d)", s.result.AllowedMistakes))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Time        %s\n\n", formatDuration(s.result.Duration)))

	bar := components.NewProgressBar("", float64(s.result.Percentage)/100, true, min(width-12, 50))
	if s.result.Passed {
		bar.Color = theme.Success
	} else if s.scored() {
		bar.Color = theme.Error
	}
	b.WriteString(bar.View() + "\n")

	if len(s.answers) > 0 {
		b.WriteString("\n" + theme.Hint.Render("Press R to review your answers"))
	}

	box := theme.Card.Width(min(width-4, 70)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if len(s.answers) > 0 {
		hints = append([]layout.KeyHint{{Key: "R", Description: "Review answers"}}, hints...)
	}
	return hints
}

// scored reports whether the pass/fail verdict is meaningful for the
// session's mode.
func (s *SummaryScreen) scored() bool {
	return s.mode == quiz.ModePractice || s.mode == quiz.ModeSimulator
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	sec := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm %02ds", m, sec)
}
