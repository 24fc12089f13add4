package scoring

import "github.com/modsentry/modsentry/internal/domain"

// Component weights for community validation. Weights of absent components
// are redistributed over the present ones so a source with only, say,
// endorsement data is judged on that alone.
const (
	weightEndorsements = 0.40
	weightUpvotes      = 0.20
	weightRating       = 0.30
	weightComments     = 0.10
)

// maxStarRating normalizes star ratings; modding sites use 5-star scales.
const maxStarRating = 5.0

// scoreCommunityValidation combines log-scaled engagement counts and the
// star rating into one score. Neutral when no engagement data is present.
func scoreCommunityValidation(src domain.SourceRecord) float64 {
	var weighted, totalWeight float64

	if src.Endorsements != nil {
		weighted += weightEndorsements * logScale(*src.Endorsements)
		totalWeight += weightEndorsements
	}
	if src.Upvotes != nil || src.Likes != nil {
		votes := 0
		if src.Upvotes != nil {
			votes += *src.Upvotes
		}
		if src.Likes != nil {
			votes += *src.Likes
		}
		weighted += weightUpvotes * logScale(votes)
		totalWeight += weightUpvotes
	}
	if src.Rating != nil {
		weighted += weightRating * clamp01(*src.Rating/maxStarRating)
		totalWeight += weightRating
	}
	if src.Comments != nil {
		weighted += weightComments * logScale(*src.Comments)
		totalWeight += weightComments
	}

	if totalWeight == 0 {
		return domain.NeutralScore
	}
	return clamp01(weighted / totalWeight)
}
