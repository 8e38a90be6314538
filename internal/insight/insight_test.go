package insight

import (
	"fmt"
	"sort"
	"testing"

	"github.com/avelasco/roadready/internal/content"
	"github.com/avelasco/roadready/internal/ledger"
	"github.com/avelasco/roadready/internal/srs"
	"github.com/avelasco/roadready/internal/store"
)

// stubProvider serves a fixed question set for one collection.
type stubProvider struct {
	items map[int]content.Item
}

func newStubProvider(prompts map[int]string) stubProvider {
	items := make(map[int]content.Item, len(prompts))
	for id, prompt := range prompts {
		items[id] = content.Item{
			ID:      id,
			Prompt:  prompt,
			Options: [4]string{"a", "b", "c", "d"},
			Correct: 1,
		}
	}
	return stubProvider{items: items}
}

func (s stubProvider) Item(_ string, id int) (content.Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

func (s stubProvider) ItemIDs(_ string) []int {
	ids := make([]int, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s stubProvider) Config(_ string) content.CollectionConfig {
	return content.DefaultConfig
}

func (s stubProvider) Collections() []string {
	return []string{"sample"}
}

type fixture struct {
	provider stubProvider
	ledger   *ledger.Ledger
	sched    *srs.Scheduler
	analyzer *Analyzer
}

func newFixture(t *testing.T, prompts map[int]string) *fixture {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	p := newStubProvider(prompts)
	l := ledger.New(st)
	sched := srs.NewScheduler(st)
	return &fixture{
		provider: p,
		ledger:   l,
		sched:    sched,
		analyzer: New(p, l, sched),
	}
}

// genericPrompts returns n prompts that match no topic keywords.
func genericPrompts(n int) map[int]string {
	prompts := make(map[int]string, n)
	for i := 1; i <= n; i++ {
		prompts[i] = fmt.Sprintf("Question number %d?", i)
	}
	return prompts
}
