package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testIndex() *CatalogIndex {
	return NewCatalogIndex([]CatalogSnapshotItem{
		{ID: "cat-1", Name: "Full Body Burner", SubNames: []string{"Jumping Jacks", "Burpees"}},
		{ID: "cat-2", Name: "Upper Strength", SubNames: []string{"Push Ups", "Pull Ups"}},
	})
}

func TestResolve_ExplicitCatalogIDWins(t *testing.T) {
	ix := testIndex()
	// Name would match cat-2, but the carried reference points at cat-1.
	id, ok := ix.Resolve(PreviewExercise{CatalogID: "cat-1", Name: "Push Ups"})
	assert.True(t, ok)
	assert.Equal(t, "cat-1", id)
}

func TestResolve_SubExerciseNameBeforeTopLevel(t *testing.T) {
	ix := NewCatalogIndex([]CatalogSnapshotItem{
		{ID: "cat-1", Name: "Burpees"},                              // top-level name
		{ID: "cat-2", Name: "HIIT Mix", SubNames: []string{"Burpees"}}, // sub-exercise name
	})
	id, ok := ix.Resolve(PreviewExercise{Name: "Burpees"})
	assert.True(t, ok)
	assert.Equal(t, "cat-2", id, "sub-exercise match takes precedence")
}

func TestResolve_TopLevelNameFallback(t *testing.T) {
	ix := testIndex()
	id, ok := ix.Resolve(PreviewExercise{Name: "Upper Strength"})
	assert.True(t, ok)
	assert.Equal(t, "cat-2", id)
}

func TestResolve_NameMatchingIsCaseInsensitive(t *testing.T) {
	ix := testIndex()
	id, ok := ix.Resolve(PreviewExercise{Name: "  push ups "})
	assert.True(t, ok)
	assert.Equal(t, "cat-2", id)
}

func TestResolve_StaleReferenceFallsBackToName(t *testing.T) {
	ix := testIndex()
	id, ok := ix.Resolve(PreviewExercise{CatalogID: "gone", Name: "Burpees"})
	assert.True(t, ok)
	assert.Equal(t, "cat-1", id)
}

func TestResolve_Unresolved(t *testing.T) {
	ix := testIndex()
	_, ok := ix.Resolve(PreviewExercise{Name: "Underwater Basket Weaving"})
	assert.False(t, ok)
}
