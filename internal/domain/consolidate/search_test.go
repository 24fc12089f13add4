package consolidate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modsentry/modsentry/internal/domain"
	"github.com/modsentry/modsentry/internal/domain/consolidate"
)

func TestConsolidateSearchResults_SortsByScore(t *testing.T) {
	results := []domain.SearchResult{
		{Title: "low", Score: 0.2},
		{Title: "high", Score: 0.9},
		{Title: "mid", Score: 0.5},
		{Title: "unscored"},
	}

	view := consolidate.ConsolidateSearchResults(results, 10)

	require.Len(t, view.Results, 4)
	assert.Equal(t, "high", view.Results[0].Title)
	assert.Equal(t, "mid", view.Results[1].Title)
	assert.Equal(t, "low", view.Results[2].Title)
	assert.Equal(t, "unscored", view.Results[3].Title, "missing score sorts as zero")
	assert.False(t, view.HasMore)
	assert.Equal(t, 4, view.Total)
}

func TestConsolidateSearchResults_Truncates(t *testing.T) {
	results := []domain.SearchResult{
		{Title: "a", Score: 0.9, Category: "fix"},
		{Title: "b", Score: 0.8, Category: "fix"},
		{Title: "c", Score: 0.7},
	}

	view := consolidate.ConsolidateSearchResults(results, 2)

	assert.Len(t, view.Results, 2)
	assert.True(t, view.HasMore)
	assert.Equal(t, 3, view.Total, "total reflects the full input")
	// Category tallies cover truncated entries too.
	assert.Equal(t, map[string]int{"fix": 2, "other": 1}, view.ByCategory)
}

func TestConsolidateSearchResults_DefaultLimit(t *testing.T) {
	results := make([]domain.SearchResult, 25)
	view := consolidate.ConsolidateSearchResults(results, 0)

	assert.Len(t, view.Results, consolidate.DefaultMaxDisplay)
	assert.True(t, view.HasMore)
}

func TestConsolidateSearchResults_DoesNotMutateInput(t *testing.T) {
	results := []domain.SearchResult{
		{Title: "first", Score: 0.1},
		{Title: "second", Score: 0.9},
	}

	consolidate.ConsolidateSearchResults(results, 10)

	assert.Equal(t, "first", results[0].Title)
}
