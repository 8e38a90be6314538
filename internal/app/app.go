package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/insight"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/quiz"
	"github.com/avelasco/roadready/internal/router"
	"github.com/avelasco/roadready/internal/screen"
	"github.com/avelasco/roadready/internal/screens/home"
	"github.com/avelasco/roadready/internal/ui/layout"
)

// Options carries the wired services into the TUI.
type Options struct {
	Engine     *quiz.Engine
	Catalog    content.Provider
	Ledger     *ledger.Ledger
	Analyzer   *insight.Analyzer
	Collection string

	// FlashcardCount sizes flashcard sessions; zero uses the default.
	FlashcardCount int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	ledger *ledger.Ledger
	engine *quiz.Engine
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Engine, opts.Catalog, opts.Ledger, opts.Analyzer, opts.Collection, opts.FlashcardCount)
	return AppModel{
		router: router.New(homeScreen),
		ledger: opts.Ledger,
		engine: opts.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				// Leaving a live session abandons it.
				if m.engine.Session() != nil {
					m.engine.Reset()
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			// Depth 1: the home screen may use Esc itself.
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak := m.ledger.Streak()
	stats := m.ledger.Stats()
	header := layout.RenderHeader(title, streak.Current, stats.AccuracyRate, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
