package scoring

import (
	"regexp"
	"strings"

	"github.com/modsentry/modsentry/internal/domain"
)

// versionPattern matches version numbers like 1.6.640 or v2.0 in content,
// a signal the author is being precise about what they tested.
var versionPattern = regexp.MustCompile(`\bv?\d+\.\d+(\.\d+)?\b`)

// codeMarkers suggest the content carries actual configuration or code.
var codeMarkers = []string{"```", "[code]", "<code>", ".ini", ".esp", ".esm", "xedit"}

// evidenceMarkers suggest the claim is backed by screenshots or captures.
var evidenceMarkers = []string{"screenshot", "imgur.com", ".png", ".jpg", "youtu.be"}

// solutionMarkers mark content the community has confirmed as a fix.
// These weigh double in the positive-signal count.
var solutionMarkers = []string{"[solved]", "verified", "solution", "confirmed working"}

// clickbaitWords penalize sensationalist titles.
var clickbaitWords = []string{
	"you won't believe",
	"shocking",
	"insane",
	"gone wrong",
	"100% working",
	"must see",
	"secret trick",
}

// defaultOutdatedVersions are game-version labels whose advice usually no
// longer applies to current builds.
var defaultOutdatedVersions = []string{
	"oldrim",
	"legendary edition",
	"skyrim le",
	"pre-anniversary",
}

// scoreTechnicalAccuracy counts heuristic quality signals in the content.
// Positive: code-like formatting, version numbers, links to authoritative
// domains, screenshot evidence, and verified/solution marking (double).
// Negative: clickbait title words and references to outdated game versions.
// Score = (positive + 0.5) / (positive + negative + 2), which stays in
// (0, 1) for any signal counts. Neutral when there is no text to judge.
func (s *Scorer) scoreTechnicalAccuracy(src domain.SourceRecord) float64 {
	text := src.Text()
	if text == "" && !src.Verified {
		return domain.NeutralScore
	}

	positive, negative := 0, 0

	if containsAny(text, codeMarkers...) {
		positive++
	}
	if versionPattern.MatchString(text) {
		positive++
	}
	for _, d := range s.trustedDomains {
		if strings.Contains(strings.ToLower(text), strings.ToLower(d)) {
			positive++
			break
		}
	}
	if containsAny(text, evidenceMarkers...) {
		positive++
	}
	if src.Verified || containsAny(text, solutionMarkers...) {
		positive += 2
	}

	if containsAny(src.Title, clickbaitWords...) {
		negative++
	}
	if containsAny(text, s.outdatedVersions...) ||
		containsAny(src.GameVersion, s.outdatedVersions...) {
		negative++
	}

	return clamp01((float64(positive) + 0.5) / (float64(positive+negative) + 2))
}
