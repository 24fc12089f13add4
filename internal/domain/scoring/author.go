package scoring

import "github.com/modsentry/modsentry/internal/domain"

// Component weights for author reputation. Like community validation,
// weights of absent components are redistributed over the present ones.
const (
	weightAuthorEndorsements = 0.40
	weightAuthorPosts        = 0.30
	weightAuthorKarma        = 0.10
)

// expertBonus is the flat boost for authors on the recognized-expert list.
const expertBonus = 0.20

// defaultExperts is the curated allowlist of community members whose
// compatibility advice has a long track record. Lowercased.
var defaultExperts = []string{
	"arthmoor",
	"elminsterau",
	"meh321",
	"nukem",
	"powerofthree",
	"ershin",
	"wskeever",
	"aers",
}

// scoreAuthorReputation combines log-scaled author statistics with the
// expert allowlist. Neutral when the record names no author and carries
// no author statistics.
func (s *Scorer) scoreAuthorReputation(src domain.SourceRecord) float64 {
	var weighted, totalWeight float64

	if src.AuthorEndorsements != nil {
		weighted += weightAuthorEndorsements * logScale(*src.AuthorEndorsements)
		totalWeight += weightAuthorEndorsements
	}
	if src.AuthorPosts != nil {
		weighted += weightAuthorPosts * logScale(*src.AuthorPosts)
		totalWeight += weightAuthorPosts
	}
	if src.AuthorKarma != nil {
		weighted += weightAuthorKarma * logScale(*src.AuthorKarma)
		totalWeight += weightAuthorKarma
	}

	score := domain.NeutralScore
	if totalWeight > 0 {
		score = weighted / totalWeight
	}

	if src.Author != "" && s.isExpert(src.Author) {
		score += expertBonus
	}

	return clamp01(score)
}
