package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	src.Set(KeyUserStats, map[string]int{"totalQuestionsSolved": 12})
	src.Set(KeyStreak, map[string]any{"currentStreak": 3})
	src.SetTheme("dark")

	data, err := src.Export()
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, KeyUserStats)
	assert.Contains(t, doc, KeyStreak)
	assert.Contains(t, doc, KeyTheme)
	assert.NotContains(t, doc, KeyFavorites, "absent namespaces stay out of the export")

	dst := openTestStore(t)
	require.True(t, dst.Import(data))

	var stats map[string]int
	require.True(t, dst.Get(KeyUserStats, &stats))
	assert.Equal(t, 12, stats["totalQuestionsSolved"])
	assert.Equal(t, "dark", dst.Theme())
}

func TestImportRejectsMalformedInput(t *testing.T) {
	s := openTestStore(t)
	s.Set(KeyUserStats, map[string]int{"totalQuestionsSolved": 5})

	assert.False(t, s.Import([]byte("not json")))

	// Existing data survives a rejected import.
	var stats map[string]int
	require.True(t, s.Get(KeyUserStats, &stats))
	assert.Equal(t, 5, stats["totalQuestionsSolved"])
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	s := openTestStore(t)

	doc := map[string]any{
		"mystery_namespace": map[string]int{"x": 1},
		KeyTheme:            "dark",
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	require.True(t, s.Import(data))
	assert.Equal(t, "dark", s.Theme())

	var v map[string]int
	assert.False(t, s.Get("mystery_namespace", &v))
}
