package stats

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/screen"
	"github.com/avelasco/roadready/internal/ui/components"
	"github.com/avelasco/roadready/internal/ui/theme"
)

// StatsScreen shows overall statistics, the weekly trend and earned
// achievements.
type StatsScreen struct {
	stats     ledger.UserStats
	streak    ledger.StreakState
	trend     []ledger.DayPerformance
	earned    []ledger.Achievement
	completed map[int]ledger.TestProgress
	answered  int
	total     int
}

var _ screen.Screen = (*StatsScreen)(nil)

// New snapshots the ledger at open time.
func New(l *ledger.Ledger, catalog content.Provider, collection string) *StatsScreen {
	return &StatsScreen{
		stats:     l.Stats(),
		streak:    l.Streak(),
		trend:     l.WeeklyTrend(time.Now()),
		earned:    l.Achievements(),
		completed: l.CompletedTests(collection),
		answered:  l.AnsweredCount(collection),
		total:     len(catalog.ItemIDs(collection)),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("STATISTICS") + "\n\n")

	b.WriteString(fmt.Sprintf("Questions answered   %d\n", s.stats.TotalSolved))
	b.WriteString(fmt.Sprintf("Correct              %d\n", s.stats.Correct))
	b.WriteString(fmt.Sprintf("Incorrect            %d\n", s.stats.Incorrect))
	b.WriteString(fmt.Sprintf("Accuracy             %.1f%%\n", s.stats.AccuracyRate))
	b.WriteString(fmt.Sprintf("Tests taken          %d\n", s.stats.TestsTaken))
	b.WriteString(fmt.Sprintf("Streak               %d (best %d)\n", s.streak.Current, s.streak.Best))

	coverage := 0.0
	if s.total > 0 {
		coverage = float64(s.answered) / float64(s.total)
	}
	b.WriteString("\n")
	bar := components.NewProgressBar("Coverage", coverage, true, min(width-12, 50))
	b.WriteString(bar.View() + "\n")

	weekAnswered, weekCorrect := 0, 0
	for _, day := range s.trend {
		weekAnswered += day.Total
		weekCorrect += day.Correct
	}
	b.WriteString("\n" + theme.Body.Bold(true).Render("Last 7 days") + "  " +
		theme.Hint.Render(fmt.Sprintf("%d answered, %d correct", weekAnswered, weekCorrect)) + "\n")
	for _, day := range s.trend {
		pct := 0.0
		if day.Total > 0 {
			pct = float64(day.Accuracy) / 100
		}
		dayBar := components.NewProgressBar(day.Label, pct, false, min(width-24, 40))
		b.WriteString(fmt.Sprintf("%s  %d/%d\n", dayBar.View(), day.Correct, day.Total))
	}

	if len(s.completed) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Completed practice tests") + "\n")
		nums := make([]int, 0, len(s.completed))
		for n := range s.completed {
			nums = append(nums, n)
		}
		sort.Ints(nums)
		for _, n := range nums {
			p := s.completed[n]
			verdict := theme.Incorrect.Render("failed")
			if p.Passed {
				verdict = theme.Correct.Render("passed")
			}
			b.WriteString(fmt.Sprintf("Test %-3d %3d%%  %s\n", n, p.Score, verdict))
		}
	}

	if len(s.earned) > 0 {
		b.WriteString("\n" + theme.Body.Bold(true).Render("Achievements") + "\n")
		for _, a := range s.earned {
			b.WriteString(a.String() + "\n")
		}
	}

	box := theme.Card.Width(min(width-4, 80)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}
