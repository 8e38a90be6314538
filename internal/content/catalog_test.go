package content

import (
	"os"
	"path/filepath"
	"testing"
)

const validDoc = `{
  "properties": {
    "practiceQuestionsPerTest": 10,
    "simulatorQuestions": 15,
    "timeLimit": 20,
    "allowedMistakes": 3
  },
  "questions": {
    "2": {
      "question": "Second question?",
      "option1": "a", "option2": "b", "option3": "c", "option4": "d",
      "correctAnswer": 1
    },
    "10": {
      "question": "Tenth question?",
      "option1": "a", "option2": "b", "option3": "c", "option4": "d",
      "correctAnswer": 4,
      "image": "sign.png"
    },
    "1": {
      "question": "First question?",
      "option1": "a", "option2": "b", "option3": "c", "option4": "d",
      "correctAnswer": 2
    }
  }
}`

func writeCollection(t *testing.T, dir, name, doc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCollection(t, dir, "b.json", validDoc)

	cat, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	cols := cat.Collections()
	if len(cols) != 1 || cols[0] != "b" {
		t.Errorf("Collections = %v, want [b] (file stem is the id)", cols)
	}

	ids := cat.ItemIDs("b")
	want := []int{1, 2, 10}
	if len(ids) != len(want) {
		t.Fatalf("ItemIDs = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ItemIDs = %v, want numerically sorted %v", ids, want)
		}
	}

	item, ok := cat.Item("b", 10)
	if !ok {
		t.Fatal("Item(b, 10) not found")
	}
	if item.Prompt != "Tenth question?" || item.Correct != 4 || item.Image != "sign.png" {
		t.Errorf("item = %+v, want decoded question 10", item)
	}
	if item.Options != [4]string{"a", "b", "c", "d"} {
		t.Errorf("Options = %v", item.Options)
	}

	if _, ok := cat.Item("b", 99); ok {
		t.Error("Item(b, 99) found a question that does not exist")
	}
	if _, ok := cat.Item("nope", 1); ok {
		t.Error("Item on unknown collection should miss")
	}
}

func TestLoadCatalogConfig(t *testing.T) {
	dir := t.TempDir()
	writeCollection(t, dir, "b.json", validDoc)
	writeCollection(t, dir, "bare.json", `{
	  "questions": {
	    "1": {"question": "q", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "correctAnswer": 1}
	  }
	}`)

	cat, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	cfg := cat.Config("b")
	if cfg.PageSize != 10 || cfg.SimulatorCount != 15 || cfg.TimeLimitMinutes != 20 || cfg.AllowedMistakes != 3 {
		t.Errorf("Config(b) = %+v, want the document's properties", cfg)
	}

	if got := cat.Config("bare"); got != DefaultConfig {
		t.Errorf("Config(bare) = %+v, want defaults when properties are absent", got)
	}
	if got := cat.Config("unknown"); got != DefaultConfig {
		t.Errorf("Config(unknown) = %+v, want defaults", got)
	}
}

func TestLoadCatalogRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"answer out of range", `{
		  "questions": {
		    "1": {"question": "q", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "correctAnswer": 5}
		  }
		}`},
		{"missing option", `{
		  "questions": {
		    "1": {"question": "q", "option1": "a", "option2": "b", "correctAnswer": 1}
		  }
		}`},
		{"non numeric key", `{
		  "questions": {
		    "first": {"question": "q", "option1": "a", "option2": "b", "option3": "c", "option4": "d", "correctAnswer": 1}
		  }
		}`},
		{"not json", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeCollection(t, dir, "bad.json", tt.doc)
			if _, err := LoadCatalog(dir); err == nil {
				t.Error("LoadCatalog accepted an invalid document")
			}
		})
	}
}

func TestLoadCatalogEmptyDir(t *testing.T) {
	if _, err := LoadCatalog(t.TempDir()); err == nil {
		t.Error("LoadCatalog should fail when no collections exist")
	}
}
