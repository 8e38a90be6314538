package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// rawQuestion mirrors the on-disk question record.
type rawQuestion struct {
	Question      string `json:"question"`
	Option1       string `json:"option1"`
	Option2       string `json:"option2"`
	Option3       string `json:"option3"`
	Option4       string `json:"option4"`
	CorrectAnswer int    `json:"correctAnswer"`
	Image         string `json:"image,omitempty"`
}

// rawProperties mirrors the on-disk collection properties block.
type rawProperties struct {
	PracticeQuestionsPerTest int `json:"practiceQuestionsPerTest"`
	SimulatorQuestions       int `json:"simulatorQuestions"`
	TimeLimit                int `json:"timeLimit"`
	AllowedMistakes          int `json:"allowedMistakes"`
}

type rawCollection struct {
	Properties *rawProperties         `json:"properties"`
	Questions  map[string]rawQuestion `json:"questions"`
}

type collection struct {
	items  map[int]Item
	ids    []int
	config CollectionConfig
}

// Catalog is a file-backed Provider: one JSON document per collection,
// loaded eagerly and validated against the collection schema.
type Catalog struct {
	collections map[string]*collection
}

// LoadCatalog reads every *.json file in dir as a collection whose id
// is the file name without extension.
func LoadCatalog(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	cat := &Catalog{collections: make(map[string]*collection)}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".json")
		col, err := loadCollection(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("collection %q: %w", id, err)
		}
		cat.collections[id] = col
	}
	if len(cat.collections) == 0 {
		return nil, fmt.Errorf("no collections found in %s", dir)
	}
	return cat, nil
}

func loadCollection(path string) (*collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc rawCollection
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	col := &collection{
		items:  make(map[int]Item, len(doc.Questions)),
		config: DefaultConfig,
	}
	if p := doc.Properties; p != nil {
		if p.PracticeQuestionsPerTest > 0 {
			col.config.PageSize = p.PracticeQuestionsPerTest
		}
		if p.SimulatorQuestions > 0 {
			col.config.SimulatorCount = p.SimulatorQuestions
		}
		if p.TimeLimit > 0 {
			col.config.TimeLimitMinutes = p.TimeLimit
		}
		if p.AllowedMistakes > 0 {
			col.config.AllowedMistakes = p.AllowedMistakes
		}
	}

	for key, q := range doc.Questions {
		id, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("question key %q: %w", key, err)
		}
		col.items[id] = Item{
			ID:      id,
			Prompt:  q.Question,
			Options: [4]string{q.Option1, q.Option2, q.Option3, q.Option4},
			Correct: q.CorrectAnswer,
			Image:   q.Image,
		}
		col.ids = append(col.ids, id)
	}
	sort.Ints(col.ids)
	return col, nil
}

// Item returns a question by collection and id.
func (c *Catalog) Item(collectionID string, id int) (Item, bool) {
	col, ok := c.collections[collectionID]
	if !ok {
		return Item{}, false
	}
	item, ok := col.items[id]
	return item, ok
}

// ItemIDs returns the collection's question ids in ascending order.
// The returned slice is shared; callers must not mutate it.
func (c *Catalog) ItemIDs(collectionID string) []int {
	col, ok := c.collections[collectionID]
	if !ok {
		return nil
	}
	return col.ids
}

// Config returns the collection's test parameters, or defaults for an
// unknown collection.
func (c *Catalog) Config(collectionID string) CollectionConfig {
	col, ok := c.collections[collectionID]
	if !ok {
		return DefaultConfig
	}
	return col.config
}

// Collections lists the loaded collection ids, sorted.
func (c *Catalog) Collections() []string {
	ids := make([]string, 0, len(c.collections))
	for id := range c.collections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
