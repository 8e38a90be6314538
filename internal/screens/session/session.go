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

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
)

// timerMsg carries a countdown event into the update loop.
type timerMsg quiz.TimerEvent

// PlayScreen drives a live quiz session.
type PlayScreen struct {
	engine *quiz.Engine

	choice      components.MultiChoice
	phase       phase
	lastCorrect bool
	flipped     bool

	remaining time.Duration
	expired   bool
}

var _ screen.Screen = (*PlayScreen)(nil)

// New creates a play screen for the engine's live session. The caller
// must have started a session before pushing this screen.
func New(engine *quiz.Engine) *PlayScreen {
	p := &PlayScreen{
		engine:    engine,
		remaining: engine.TimeRemaining(),
	}
	p.loadCurrent()
	return p
}

func (p *PlayScreen) Init() tea.Cmd {
	return waitForTimer(p.engine.TimerEvents())
}

// waitForTimer blocks on the countdown channel and delivers the next
// event. Returns nil for untimed sessions.
func waitForTimer(ch <-chan quiz.TimerEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return timerMsg(ev)
	}
}

func (p *PlayScreen) loadCurrent() {
	item, ok := p.engine.Current()
	if !ok {
		return
	}

	sess := p.engine.Session()
	options := item.Options[:]

	switch {
	case sess.Mode == quiz.ModeReview:
		chosen := -1
		if ans, ok := p.engine.SubmittedAnswer(item.ID); ok {
			chosen = ans.Chosen - 1
		}
		p.choice = components.NewRevealedChoice(item.Prompt, options, item.Correct-1, chosen)
		p.phase = phaseFeedback
	case sess.Mode == quiz.ModeFlashcard:
		p.choice = components.NewMultiChoice(item.Prompt, options, item.Correct-1)
		p.phase = phaseAnswering
		p.flipped = false
	default:
		p.choice = components.NewMultiChoice(item.Prompt, options, item.Correct-1)
		p.phase = phaseAnswering
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	sess := p.engine.Session()
	if sess == nil {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch msg := msg.(type) {
	case timerMsg:
		p.remaining = msg.Remaining
		if msg.Expired {
			p.expired = true
			return p, p.finish()
		}
		return p, waitForTimer(p.engine.TimerEvents())

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	sess := p.engine.Session()
	key := msg.String()

	if sess.Mode == quiz.ModeReview {
		switch key {
		case "n", "right", "enter", "l":
			if p.engine.Next() {
				p.loadCurrent()
			}
		case "p", "left", "h":
			if p.engine.Prev() {
				p.loadCurrent()
			}
		}
		return p, nil
	}

	if sess.Mode == quiz.ModeFlashcard {
		return p.handleFlashcardKey(key)
	}

	switch p.phase {
	case phaseAnswering:
		switch key {
		case "f":
			p.engine.ToggleFavorite()
			return p, nil
		case "p", "left":
			if p.engine.Prev() {
				p.loadCurrent()
			}
			return p, nil
		}

		var cmd tea.Cmd
		p.choice, cmd = p.choice.Update(msg)
		if p.choice.Submitted {
			correct, ok := p.engine.Submit(p.choice.ChosenIndex + 1)
			if ok {
				p.lastCorrect = correct
				p.phase = phaseFeedback
			}
		}
		return p, cmd

	case phaseFeedback:
		switch key {
		case "f":
			p.engine.ToggleFavorite()
		case "enter", "n", "right":
			if p.engine.Next() {
				p.loadCurrent()
			} else {
				return p, p.finish()
			}
		}
		return p, nil
	}

	return p, nil
}

// Flashcards are self-graded: space flips the card, no answer is
// recorded.
func (p *PlayScreen) handleFlashcardKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "space", " ", "enter":
		if !p.flipped {
			p.flipped = true
			item, _ := p.engine.Current()
			p.choice = components.NewRevealedChoice(item.Prompt, item.Options[:], item.Correct-1, -1)
			return p, nil
		}
		if p.engine.Next() {
			p.loadCurrent()
		} else {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	case "n", "right":
		if p.engine.Next() {
			p.loadCurrent()
		}
	case "p", "left":
		if p.engine.Prev() {
			p.loadCurrent()
		}
	case "f":
		p.engine.ToggleFavorite()
	}
	return p, nil
}

func (p *PlayScreen) finish() tea.Cmd {
	res, ok := p.engine.Finish()
	if !ok {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	summary := NewSummary(p.engine, res, p.expired)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: summary} }
}

func (p *PlayScreen) View(width, height int) string {
	sess := p.engine.Session()
	if sess == nil {
		return ""
	}

	item, ok := p.engine.Current()
	if !ok {
		return theme.Hint.Render("Nothing to show.")
	}

	current, total := p.engine.Progress()

	var b strings.Builder

	status := fmt.Sprintf("Question %d of %d", current, total)
	if p.engine.IsCurrentFavorite() {
		status += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render("★")
	}
	if sess.TimeLimit > 0 {
		status += "    " + renderClock(p.remaining)
	}
	b.WriteString(theme.Subtitle.Render(status) + "\n\n")

	bar := components.NewProgressBar("", float64(current)/float64(total), false, min(width-8, 60))
	b.WriteString(bar.View() + "\n\n")

	b.WriteString(p.choice.View())

	if item.Image != "" {
		b.WriteString("\n" + theme.Hint.Render("[figure: "+item.Image+"]") + "\n")
	}

	switch {
	case sess.Mode == quiz.ModeReview:
		if ans, ok := p.engine.SubmittedAnswer(item.ID); ok {
			if ans.IsCorrect {
				b.WriteString("\n" + theme.Correct.Render("You answered this correctly."))
			} else {
				b.WriteString("\n" + theme.Incorrect.Render("You got this one wrong."))
			}
		} else {
			b.WriteString("\n" + theme.Hint.Render("Not answered."))
		}
	case sess.Mode == quiz.ModeFlashcard && !p.flipped:
		b.WriteString("\n" + theme.Hint.Render("Space to reveal the answer"))
	case p.phase == phaseFeedback:
		if p.lastCorrect {
			b.WriteString("\n" + theme.Correct.Render("Correct!"))
		} else {
			b.WriteString("\n" + theme.Incorrect.Render("Incorrect."))
		}
	}

	box := theme.Card.Width(min(width-4, 90)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (p *PlayScreen) Title() string {
	sess := p.engine.Session()
	if sess == nil {
		return "Session"
	}
	switch sess.Mode {
	case quiz.ModePractice:
		return fmt.Sprintf("Practice Test %d", sess.TestNumber)
	case quiz.ModeSimulator:
		return "Exam Simulator"
	case quiz.ModeFlashcard:
		return "Flashcards"
	case quiz.ModeWrongReview:
		return "Mistake Review"
	case quiz.ModeFavorites:
		return "Favorites"
	case quiz.ModeSpacedRepetition:
		return "Smart Review"
	case quiz.ModeReview:
		return "Answer Review"
	}
	return "Session"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	sess := p.engine.Session()
	if sess == nil {
		return nil
	}
	switch {
	case sess.Mode == quiz.ModeReview:
		return []layout.KeyHint{
			{Key: "←→", Description: "Navigate"},
			{Key: "Esc", Description: "Back"},
		}
	case sess.Mode == quiz.ModeFlashcard:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip / Next"},
			{Key: "F", Description: "Favorite"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "F", Description: "Favorite"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func renderClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	text := fmt.Sprintf("⏱ %02d:%02d", m, s)
	if d <= 5*time.Minute {
		return theme.Warning.Render(text)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(text)
}
