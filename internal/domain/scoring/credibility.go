package scoring

import (
	"strings"

	"github.com/modsentry/modsentry/internal/domain"
)

// sourceTypeBaseScores maps declared source types to base credibility.
// Official mod-hosting sites rank highest, general forums lowest.
var sourceTypeBaseScores = map[string]float64{
	"nexus_mods":   0.90,
	"loot":         0.90,
	"bethesda_net": 0.85,
	"github":       0.80,
	"wiki":         0.75,
	"mod_page":     0.70,
	"reddit":       0.50,
	"youtube":      0.45,
	"forum":        0.40,
	"discord":      0.35,
}

// unknownTypeScore is the floor for unrecognized source types.
const unknownTypeScore = 0.30

// defaultTrustedDomains raise the base score when the source URL points at
// a known high-trust modding domain.
var defaultTrustedDomains = []string{
	"nexusmods.com",
	"loot.github.io",
	"github.com",
	"afkmods.com",
	"stepmodifications.org",
	"uesp.net",
	"bethesda.net",
}

const (
	trustedDomainBoost = 0.10
	unencryptedPenalty = 0.90 // 10% penalty for plain-http URLs
)

// scoreCredibility rates how trustworthy the hosting source is, from the
// declared source type and the URL. Neutral when neither is present.
func (s *Scorer) scoreCredibility(src domain.SourceRecord) float64 {
	if src.Type == "" && src.URL == "" {
		return domain.NeutralScore
	}

	score := unknownTypeScore
	if base, ok := sourceTypeBaseScores[strings.ToLower(strings.TrimSpace(src.Type))]; ok {
		score = base
	}

	if src.URL != "" {
		for _, d := range s.trustedDomains {
			if strings.Contains(strings.ToLower(src.URL), strings.ToLower(d)) {
				score += trustedDomainBoost
				break
			}
		}
		if strings.HasPrefix(strings.ToLower(src.URL), "http://") {
			score *= unencryptedPenalty
		}
	}

	return clamp01(score)
}
