package consolidate

import "github.com/modsentry/modsentry/internal/domain"

// RecommendationView groups one recommendation list simultaneously by
// priority and by category. Each recommendation appears in exactly one
// priority bucket and exactly one category bucket; the flat list and the
// total are preserved alongside.
type RecommendationView struct {
	Total      int                                `json:"total"`
	All        []domain.Recommendation            `json:"recommendations"`
	ByPriority map[string][]domain.Recommendation `json:"by_priority"`
	ByCategory map[string][]domain.Recommendation `json:"by_category"`
}

// ConsolidateRecommendations buckets recommendations by their priority
// (default "normal") and category (default "general") fields.
func ConsolidateRecommendations(recs []domain.Recommendation) *RecommendationView {
	view := &RecommendationView{
		Total:      len(recs),
		All:        recs,
		ByPriority: make(map[string][]domain.Recommendation),
		ByCategory: make(map[string][]domain.Recommendation),
	}

	for _, r := range recs {
		priority := r.Priority
		if priority == "" {
			priority = domain.DefaultRecommendationPriority
		}
		category := r.Category
		if category == "" {
			category = domain.DefaultRecommendationCategory
		}
		view.ByPriority[priority] = append(view.ByPriority[priority], r)
		view.ByCategory[category] = append(view.ByCategory[category], r)
	}

	return view
}
