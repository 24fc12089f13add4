package consolidate

import (
	"sort"

	"github.com/modsentry/modsentry/internal/domain"
)

// DefaultMaxDisplay bounds the search view when the caller passes no limit.
const DefaultMaxDisplay = 20

// SearchView is the display form of a consolidated search-result list.
// Total always reflects the full input; Results is truncated to the
// display limit.
type SearchView struct {
	Total      int                   `json:"total"`
	Results    []domain.SearchResult `json:"results"`
	HasMore    bool                  `json:"has_more"`
	ByCategory map[string]int        `json:"by_category"`
}

// ConsolidateSearchResults sorts results by score descending (a missing
// score counts as zero), truncates the display list to maxDisplay, and
// tallies a per-category breakdown over the full input.
func ConsolidateSearchResults(results []domain.SearchResult, maxDisplay int) *SearchView {
	if maxDisplay <= 0 {
		maxDisplay = DefaultMaxDisplay
	}

	sorted := append([]domain.SearchResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	byCategory := make(map[string]int)
	for _, r := range results {
		cat := r.Category
		if cat == "" {
			cat = domain.DefaultResultCategory
		}
		byCategory[cat]++
	}

	view := &SearchView{
		Total:      len(results),
		Results:    sorted,
		ByCategory: byCategory,
	}
	if len(sorted) > maxDisplay {
		view.Results = sorted[:maxDisplay]
		view.HasMore = true
	}
	return view
}
