package insight

import (
	"math"
	"sort"

	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/srs"
)

// Severity tiers for weak topics, most severe first.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityModerate Severity = "moderate"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityModerate: 2,
}

// WeakArea is one scored weak topic.
type WeakArea struct {
	Topic        string
	Severity     Severity
	Accuracy     int // percent
	Total        int
	Correct      int
	StudyMinutes int
	ItemIDs      []int
	Plan         string
}

// Analyzer computes readiness insights from ledger and scheduler state.
// It is read-only: nothing here mutates persisted state.
type Analyzer struct {
	content content.Provider
	ledger  *ledger.Ledger
	sched   *srs.Scheduler
}

// New creates an analyzer over the given collaborators.
func New(p content.Provider, l *ledger.Ledger, s *srs.Scheduler) *Analyzer {
	return &Analyzer{content: p, ledger: l, sched: s}
}

// WeakAreas classifies every answered question into topics and scores
// each topic with at least 3 classified answers. Accuracy below 85%
// makes a topic weak; the tiers drive the remediation estimate.
// Results are ordered most severe first, with ties in taxonomy order.
func (a *Analyzer) WeakAreas(collection string) []WeakArea {
	answers := a.ledger.Answers(collection)

	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var areas []WeakArea
	for _, topic := range Topics {
		total, correct := 0, 0
		var matched []int
		for _, id := range ids {
			item, ok := a.content.Item(collection, id)
			if !ok {
				continue
			}
			if !topic.Matches(item.Prompt) {
				continue
			}
			total++
			matched = append(matched, id)
			if answers[id].Correct {
				correct++
			}
		}
		if total < 3 {
			continue
		}

		accuracy := float64(correct) / float64(total) * 100
		var severity Severity
		var minutes int
		switch {
		case accuracy < 50:
			severity, minutes = SeverityCritical, 60
		case accuracy < 70:
			severity, minutes = SeverityHigh, 30
		case accuracy < 85:
			severity, minutes = SeverityModerate, 15
		default:
			continue
		}

		areas = append(areas, WeakArea{
			Topic:        topic.Name,
			Severity:     severity,
			Accuracy:     int(math.Round(accuracy)),
			Total:        total,
			Correct:      correct,
			StudyMinutes: minutes,
			ItemIDs:      matched,
			Plan:         topic.Plan,
		})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		return severityRank[areas[i].Severity] < severityRank[areas[j].Severity]
	})
	return areas
}
