package scoring

import (
	"math"
	"strings"

	"github.com/modsentry/modsentry/internal/domain"
)

// freshnessHalfLives gives the exponential-decay half-life in days per
// declared content type. Technical fixes go stale fastest; release and
// guide content stays useful longest.
var freshnessHalfLives = map[string]float64{
	"fix":             90,
	"technical_fix":   90,
	"patch":           90,
	"troubleshooting": 120,
	"compatibility":   150,
	"discussion":      180,
	"announcement":    270,
	"guide":           365,
	"release":         365,
}

// defaultHalfLifeDays applies when the content type is absent or unknown.
const defaultHalfLifeDays = 180.0

// scoreFreshness decays from 1.0 by content age: 2^(-age_days / half_life).
// Neutral when no published or updated date is known.
func (s *Scorer) scoreFreshness(src domain.SourceRecord) float64 {
	last := src.LastActivity()
	if last == nil {
		return domain.NeutralScore
	}

	ageDays := s.now().Sub(*last).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}

	halfLife := defaultHalfLifeDays
	if hl, ok := freshnessHalfLives[strings.ToLower(strings.TrimSpace(src.ContentType))]; ok {
		halfLife = hl
	}

	return clamp01(math.Exp2(-ageDays / halfLife))
}
