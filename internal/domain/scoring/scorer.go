package scoring

import (
	"strings"
	"time"

	"github.com/modsentry/modsentry/internal/domain"
)

// Scorer converts raw, heterogeneous source-metadata records into
// normalized, comparable trust scores. It holds no per-call state;
// a single Scorer may be used concurrently.
type Scorer struct {
	now              func() time.Time
	experts          map[string]struct{}
	trustedDomains   []string
	outdatedVersions []string
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithClock overrides the time source used for freshness decay.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) { s.now = now }
}

// WithExperts adds author names to the recognized-expert allowlist.
func WithExperts(names []string) Option {
	return func(s *Scorer) {
		for _, n := range names {
			s.experts[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
		}
	}
}

// WithTrustedDomains adds domains to the high-trust domain list.
func WithTrustedDomains(domains []string) Option {
	return func(s *Scorer) { s.trustedDomains = append(s.trustedDomains, domains...) }
}

// WithOutdatedVersions adds game-version labels treated as outdated
// by the technical-accuracy heuristics.
func WithOutdatedVersions(versions []string) Option {
	return func(s *Scorer) { s.outdatedVersions = append(s.outdatedVersions, versions...) }
}

// New creates a Scorer with the built-in lookup tables.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		now:              time.Now,
		experts:          make(map[string]struct{}, len(defaultExperts)),
		trustedDomains:   append([]string(nil), defaultTrustedDomains...),
		outdatedVersions: append([]string(nil), defaultOutdatedVersions...),
	}
	for _, n := range defaultExperts {
		s.experts[n] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromConfig creates a Scorer extended with the config's allowlists.
func FromConfig(cfg domain.Config, opts ...Option) *Scorer {
	all := []Option{
		WithExperts(cfg.Experts),
		WithTrustedDomains(cfg.TrustedDomains),
		WithOutdatedVersions(cfg.OutdatedVersions),
	}
	return New(append(all, opts...)...)
}

// ScoreSource computes the full reliability score for one source record.
// Every dimension degrades to the neutral default when its inputs are
// absent; malformed input never produces an error.
func (s *Scorer) ScoreSource(src domain.SourceRecord) domain.ReliabilityScore {
	score := domain.NewReliabilityScore()

	score.Dimensions.SourceCredibility = s.scoreCredibility(src)
	score.Dimensions.ContentFreshness = s.scoreFreshness(src)
	score.Dimensions.CommunityValidation = scoreCommunityValidation(src)
	score.Dimensions.TechnicalAccuracy = s.scoreTechnicalAccuracy(src)
	score.Dimensions.AuthorReputation = s.scoreAuthorReputation(src)

	score.SourceURL = src.URL
	score.SourceType = src.Type
	score.GameVersion = src.GameVersion
	score.LastUpdated = src.LastActivity()

	score.Compute()
	return score
}

// FilterByReliability scores every source and retains those meeting both
// thresholds, pairing each retained record with its computed score.
// The input slice is not mutated.
func (s *Scorer) FilterByReliability(sources []domain.SourceRecord, minScore, minConfidence float64) []domain.ScoredSource {
	var out []domain.ScoredSource
	for _, src := range sources {
		score := s.ScoreSource(src)
		if score.Overall >= minScore && score.Confidence >= minConfidence {
			out = append(out, domain.ScoredSource{Source: src, Score: score})
		}
	}
	return out
}

// isExpert reports whether the author is on the recognized-expert allowlist.
func (s *Scorer) isExpert(author string) bool {
	_, ok := s.experts[strings.ToLower(strings.TrimSpace(author))]
	return ok
}
