package domain

import "time"

// NeutralScore is the default value every reliability dimension starts at.
// A dimension keeps it when its inputs are absent from the source record.
const NeutralScore = 0.5

// Fixed weight vector for the overall reliability score. Overall and
// confidence are always derived from the five dimensions through these
// weights, never set directly.
const (
	WeightCredibility = 0.25
	WeightFreshness   = 0.15
	WeightCommunity   = 0.20
	WeightAccuracy    = 0.25
	WeightAuthor      = 0.15
)

// Qualitative flags appended by Compute on threshold crossings.
const (
	FlagOutdated       = "outdated"
	FlagUnverified     = "unverified"
	FlagLowCredibility = "low_credibility"
	FlagHighlyReliable = "highly_reliable"
)

// Dimensions holds the five sub-scores of a reliability assessment,
// each in [0, 1].
type Dimensions struct {
	SourceCredibility   float64 `json:"source_credibility"`
	ContentFreshness    float64 `json:"content_freshness"`
	CommunityValidation float64 `json:"community_validation"`
	TechnicalAccuracy   float64 `json:"technical_accuracy"`
	AuthorReputation    float64 `json:"author_reputation"`
}

// NeutralDimensions returns all five dimensions at the neutral default.
func NeutralDimensions() Dimensions {
	return Dimensions{
		SourceCredibility:   NeutralScore,
		ContentFreshness:    NeutralScore,
		CommunityValidation: NeutralScore,
		TechnicalAccuracy:   NeutralScore,
		AuthorReputation:    NeutralScore,
	}
}

func (d Dimensions) values() [5]float64 {
	return [5]float64{
		d.SourceCredibility,
		d.ContentFreshness,
		d.CommunityValidation,
		d.TechnicalAccuracy,
		d.AuthorReputation,
	}
}

// ReliabilityScore is the trust assessment of one information source.
// Construct with NewReliabilityScore, assign dimensions, then call Compute
// exactly once before the score is used for filtering or persistence.
type ReliabilityScore struct {
	Overall    float64    `json:"overall_score"`
	Confidence float64    `json:"confidence"`
	Dimensions Dimensions `json:"dimensions"`
	Flags      []string   `json:"flags"`

	SourceURL   string     `json:"source_url,omitempty"`
	SourceType  string     `json:"source_type,omitempty"`
	GameVersion string     `json:"game_version,omitempty"`
	LastUpdated *time.Time `json:"last_updated"`
}

// NewReliabilityScore returns a score with every dimension at the
// neutral default and no flags.
func NewReliabilityScore() ReliabilityScore {
	return ReliabilityScore{Dimensions: NeutralDimensions(), Flags: []string{}}
}

// Compute derives the overall score, confidence, and qualitative flags
// from the five dimensions. Overall is the fixed-weight average; confidence
// is the fraction of dimensions that diverge from the neutral default.
func (r *ReliabilityScore) Compute() {
	d := r.Dimensions
	r.Overall = WeightCredibility*d.SourceCredibility +
		WeightFreshness*d.ContentFreshness +
		WeightCommunity*d.CommunityValidation +
		WeightAccuracy*d.TechnicalAccuracy +
		WeightAuthor*d.AuthorReputation

	measured := 0
	for _, v := range d.values() {
		if v != NeutralScore {
			measured++
		}
	}
	r.Confidence = float64(measured) / 5.0

	r.Flags = []string{}
	if d.ContentFreshness < 0.3 {
		r.Flags = append(r.Flags, FlagOutdated)
	}
	if d.CommunityValidation < 0.3 {
		r.Flags = append(r.Flags, FlagUnverified)
	}
	if d.SourceCredibility < 0.3 {
		r.Flags = append(r.Flags, FlagLowCredibility)
	}
	if r.Overall >= 0.8 {
		r.Flags = append(r.Flags, FlagHighlyReliable)
	}
}

// TrustLevel buckets an overall score for display.
func TrustLevel(overall float64) string {
	switch {
	case overall >= 0.8:
		return "high"
	case overall >= 0.6:
		return "moderate"
	case overall >= 0.4:
		return "low"
	default:
		return "unreliable"
	}
}

// ScoredSource pairs a source record with its computed reliability score,
// the form persisted to the knowledge store.
type ScoredSource struct {
	Source SourceRecord     `json:"source"`
	Score  ReliabilityScore `json:"reliability"`
}
