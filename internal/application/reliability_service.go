package application

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/modsentry/modsentry/internal/domain"
	"github.com/modsentry/modsentry/internal/domain/scoring"
)

// scoreWorkers bounds concurrent scoring goroutines for large batches.
const scoreWorkers = 8

// ReliabilityService scores batches of scraped sources and persists the
// ones meeting the reliability thresholds to the knowledge store.
type ReliabilityService struct {
	scorer *scoring.Scorer
	store  domain.KnowledgeStore
	log    zerolog.Logger
}

// NewReliabilityService wires the batch scorer. store may be nil when
// persistence is not wanted.
func NewReliabilityService(scorer *scoring.Scorer, store domain.KnowledgeStore, log zerolog.Logger) *ReliabilityService {
	return &ReliabilityService{scorer: scorer, store: store, log: log}
}

// ScoreAll scores every record and returns the results in input order.
// Records are scored concurrently; the scorer itself is stateless.
func (s *ReliabilityService) ScoreAll(ctx context.Context, records []domain.SourceRecord) ([]domain.ScoredSource, error) {
	out := make([]domain.ScoredSource, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i, rec := range records {
		g.Go(func() error {
			out[i] = domain.ScoredSource{Source: rec, Score: s.scorer.ScoreSource(rec)}
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterAndStore scores all records, retains those meeting both
// thresholds, and upserts the retained ones into the knowledge store.
func (s *ReliabilityService) FilterAndStore(ctx context.Context, records []domain.SourceRecord, minScore, minConfidence float64) ([]domain.ScoredSource, error) {
	scored, err := s.ScoreAll(ctx, records)
	if err != nil {
		return nil, err
	}

	var kept []domain.ScoredSource
	for _, sc := range scored {
		if sc.Score.Overall < minScore || sc.Score.Confidence < minConfidence {
			continue
		}
		kept = append(kept, sc)
		if s.store != nil {
			if err := s.store.SaveSource(ctx, sc); err != nil {
				return nil, err
			}
		}
	}

	s.log.Info().
		Int("scored", len(scored)).
		Int("kept", len(kept)).
		Float64("min_score", minScore).
		Float64("min_confidence", minConfidence).
		Msg("sources filtered")

	return kept, nil
}
