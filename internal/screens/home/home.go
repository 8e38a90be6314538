package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/insight"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/quiz"
	"github.com/avelasco/roadready/internal/router"
	"github.com/avelasco/roadready/internal/screen"
	"github.com/avelasco/roadready/internal/screens/insights"
	sessionscreen "github.com/avelasco/roadready/internal/screens/session"
	"github.com/avelasco/roadready/internal/screens/stats"
	"github.com/avelasco/roadready/internal/ui/components"
	"github.com/avelasco/roadready/internal/ui/layout"
	"github.com/avelasco/roadready/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	engine     *quiz.Engine
	catalog    content.Provider
	ledger     *ledger.Ledger
	analyzer   *insight.Analyzer
	collection string

	menu           components.Menu
	picking        bool
	picker         components.NumberInput
	testCount      int
	flashcardCount int
	status         string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen over the shared services.
func New(engine *quiz.Engine, catalog content.Provider, l *ledger.Ledger, analyzer *insight.Analyzer, collection string, flashcardCount int) *HomeScreen {
	h := &HomeScreen{
		engine:         engine,
		catalog:        catalog,
		ledger:         l,
		analyzer:       analyzer,
		collection:     collection,
		flashcardCount: flashcardCount,
	}

	cfg := catalog.Config(collection)
	total := len(catalog.ItemIDs(collection))
	h.testCount = (total + cfg.PageSize - 1) / cfg.PageSize

	items := []components.MenuItem{
		{Label: "PRACTICE TEST", Hint: fmt.Sprintf("%d tests", h.testCount), Action: h.pickTest},
		{Label: "EXAM SIMULATOR", Hint: fmt.Sprintf("%d questions, timed", cfg.SimulatorCount), Action: h.start(h.startSimulator, "No questions available.")},
		{Label: "FLASHCARDS", Action: h.start(h.startFlashcards, "No questions available.")},
		{Label: "SMART REVIEW", Hint: "due + missed questions", Action: h.start(h.startSmartReview, "Nothing to review yet. Answer some questions first.")},
		{Label: "REVIEW MISTAKES", Action: h.start(h.startWrongReview, "No wrong answers recorded. Nice.")},
		{Label: "FAVORITES", Action: h.start(h.startFavorites, "No favorites yet. Press F during a quiz to add one.")},
		{Label: "STATISTICS", Action: h.openStats},
		{Label: "INSIGHTS", Action: h.openInsights},
		{Label: "QUIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h.menu = components.NewMenu(items)
	return h
}

// start wraps a session starter: push the play screen on success, show
// failMsg in the status line otherwise.
func (h *HomeScreen) start(begin func() bool, failMsg string) func() tea.Cmd {
	return func() tea.Cmd {
		if !begin() {
			h.status = failMsg
			return nil
		}
		h.status = ""
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: sessionscreen.New(h.engine)}
		}
	}
}

func (h *HomeScreen) startSimulator() bool {
	return h.engine.StartSimulator(h.collection)
}

func (h *HomeScreen) startFlashcards() bool {
	return h.engine.StartFlashcards(h.collection, h.flashcardCount)
}

func (h *HomeScreen) startSmartReview() bool {
	return h.engine.StartSpacedRepetition(h.collection)
}

func (h *HomeScreen) startWrongReview() bool {
	return h.engine.StartWrongReview(h.collection)
}

func (h *HomeScreen) startFavorites() bool {
	return h.engine.StartFavoritesReview(h.collection)
}

func (h *HomeScreen) pickTest() tea.Cmd {
	h.picking = true
	h.status = ""
	h.picker = components.NewNumberInput("test number", 1, h.testCount)
	return h.picker.Init()
}

func (h *HomeScreen) openStats() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: stats.New(h.ledger, h.catalog, h.collection),
		}
	}
}

func (h *HomeScreen) openInsights() tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: insights.New(h.engine, h.analyzer, h.collection),
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.picking {
		return h.updatePicker(msg)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updatePicker(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.picking = false
			return h, nil
		case "enter":
			n, ok := h.picker.Value()
			if !ok {
				h.status = fmt.Sprintf("Enter a test number between 1 and %d.", h.testCount)
				return h, nil
			}
			h.picking = false
			if !h.engine.StartPractice(h.collection, n) {
				h.status = "That test has no questions."
				return h, nil
			}
			h.status = ""
			return h, func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(h.engine)}
			}
		}
	}

	var cmd tea.Cmd
	h.picker, cmd = h.picker.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("ROADREADY") + "\n")
	b.WriteString(theme.Subtitle.Render("driving theory trainer") + "\n\n")

	streak := h.ledger.Streak()
	userStats := h.ledger.Stats()
	statsLine := fmt.Sprintf("  %d answered    %.0f%% accuracy    %d day streak  ",
		userStats.TotalSolved, userStats.AccuracyRate, streak.Current)
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Render(statsLine) + "\n\n")

	if h.picking {
		b.WriteString(theme.Body.Render("Which practice test?") + "\n\n")
		b.WriteString(h.picker.View() + "\n")
	} else {
		b.WriteString(h.menu.View())
	}

	if h.status != "" {
		b.WriteString("\n" + theme.Warning.Render(h.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.picking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return nil
}
