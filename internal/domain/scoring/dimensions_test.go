package scoring_test

import (
	"testing"

	"github.com/modsentry/modsentry/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCredibility(t *testing.T) {
	tests := []struct {
		name string
		src  domain.SourceRecord
		want float64
	}{
		{"no type or url stays neutral", domain.SourceRecord{}, 0.5},
		{"nexus type", domain.SourceRecord{Type: "nexus_mods"}, 0.90},
		{"loot type", domain.SourceRecord{Type: "loot"}, 0.90},
		{"discord type", domain.SourceRecord{Type: "discord"}, 0.35},
		{"unknown type floors", domain.SourceRecord{Type: "blog"}, 0.30},
		{
			"trusted domain boost",
			domain.SourceRecord{Type: "nexus_mods", URL: "https://www.nexusmods.com/skyrim/mods/1"},
			1.0,
		},
		{
			"plain http penalty",
			domain.SourceRecord{Type: "forum", URL: "http://someforum.example/t/1"},
			0.36,
		},
		{
			"url only still scores",
			domain.SourceRecord{URL: "https://github.com/example/patch"},
			0.40, // unknown type 0.30 + trusted domain 0.10
		},
	}

	s := newTestScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ScoreSource(tt.src).Dimensions.SourceCredibility
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestFreshness(t *testing.T) {
	s := newTestScorer()

	t.Run("no date stays neutral", func(t *testing.T) {
		got := s.ScoreSource(domain.SourceRecord{}).Dimensions.ContentFreshness
		assert.InDelta(t, 0.5, got, 0.001)
	})

	t.Run("published today scores full", func(t *testing.T) {
		src := domain.SourceRecord{PublishedDate: timePtr(fixedNow)}
		got := s.ScoreSource(src).Dimensions.ContentFreshness
		assert.InDelta(t, 1.0, got, 0.001)
	})

	t.Run("one half-life halves the score", func(t *testing.T) {
		src := domain.SourceRecord{
			ContentType:   "fix", // 90-day half-life
			PublishedDate: timePtr(fixedNow.AddDate(0, 0, -90)),
		}
		got := s.ScoreSource(src).Dimensions.ContentFreshness
		assert.InDelta(t, 0.5, got, 0.01)
	})

	t.Run("guides decay slower than fixes", func(t *testing.T) {
		date := timePtr(fixedNow.AddDate(0, 0, -180))
		fix := s.ScoreSource(domain.SourceRecord{ContentType: "fix", PublishedDate: date})
		guide := s.ScoreSource(domain.SourceRecord{ContentType: "guide", PublishedDate: date})
		assert.Greater(t, guide.Dimensions.ContentFreshness, fix.Dimensions.ContentFreshness)
	})

	t.Run("future date clamps to full", func(t *testing.T) {
		src := domain.SourceRecord{PublishedDate: timePtr(fixedNow.AddDate(0, 0, 30))}
		got := s.ScoreSource(src).Dimensions.ContentFreshness
		assert.InDelta(t, 1.0, got, 0.001)
	})

	t.Run("update date resets the clock", func(t *testing.T) {
		src := domain.SourceRecord{
			PublishedDate: timePtr(fixedNow.AddDate(-3, 0, 0)),
			UpdatedDate:   timePtr(fixedNow.AddDate(0, 0, -1)),
		}
		got := s.ScoreSource(src).Dimensions.ContentFreshness
		assert.Greater(t, got, 0.99)
	})
}

func TestCommunityValidation(t *testing.T) {
	s := newTestScorer()

	t.Run("no engagement stays neutral", func(t *testing.T) {
		got := s.ScoreSource(domain.SourceRecord{}).Dimensions.CommunityValidation
		assert.InDelta(t, 0.5, got, 0.001)
	})

	t.Run("endorsements saturate at ten thousand", func(t *testing.T) {
		src := domain.SourceRecord{Endorsements: intPtr(9999)}
		got := s.ScoreSource(src).Dimensions.CommunityValidation
		assert.InDelta(t, 1.0, got, 0.001)
	})

	t.Run("perfect rating alone scores full", func(t *testing.T) {
		src := domain.SourceRecord{Rating: floatPtr(5.0)}
		got := s.ScoreSource(src).Dimensions.CommunityValidation
		assert.InDelta(t, 1.0, got, 0.001)
	})

	t.Run("explicit zero engagement is not neutral", func(t *testing.T) {
		src := domain.SourceRecord{Endorsements: intPtr(0)}
		got := s.ScoreSource(src).Dimensions.CommunityValidation
		assert.InDelta(t, 0.0, got, 0.001)
	})

	t.Run("upvotes and likes pool together", func(t *testing.T) {
		split := s.ScoreSource(domain.SourceRecord{Upvotes: intPtr(50), Likes: intPtr(49)})
		pooled := s.ScoreSource(domain.SourceRecord{Upvotes: intPtr(99)})
		assert.InDelta(t,
			pooled.Dimensions.CommunityValidation,
			split.Dimensions.CommunityValidation, 0.001)
	})
}

func TestTechnicalAccuracy(t *testing.T) {
	s := newTestScorer()

	t.Run("no text stays neutral", func(t *testing.T) {
		got := s.ScoreSource(domain.SourceRecord{}).Dimensions.TechnicalAccuracy
		assert.InDelta(t, 0.5, got, 0.001)
	})

	t.Run("verified flag counts without text", func(t *testing.T) {
		got := s.ScoreSource(domain.SourceRecord{Verified: true}).Dimensions.TechnicalAccuracy
		assert.InDelta(t, 0.625, got, 0.001) // (2+0.5)/(2+2)
	})

	t.Run("plain text with no signals scores low", func(t *testing.T) {
		src := domain.SourceRecord{Content: "just delete everything and reinstall"}
		got := s.ScoreSource(src).Dimensions.TechnicalAccuracy
		assert.InDelta(t, 0.25, got, 0.001) // 0.5/2
	})

	t.Run("rich technical content scores high", func(t *testing.T) {
		src := domain.SourceRecord{
			Content: "Confirmed working on 1.6.640. Edit SkyrimPrefs.ini, see the screenshot on nexusmods.com.",
		}
		got := s.ScoreSource(src).Dimensions.TechnicalAccuracy
		// code + version + trusted domain + evidence + solution(double) = 6 positives
		assert.InDelta(t, 0.8125, got, 0.001) // 6.5/8
	})

	t.Run("clickbait and outdated versions penalize", func(t *testing.T) {
		src := domain.SourceRecord{
			Title:   "You won't believe this fix",
			Content: "works on legendary edition",
		}
		got := s.ScoreSource(src).Dimensions.TechnicalAccuracy
		assert.InDelta(t, 0.125, got, 0.001) // 0.5/4
	})
}

func TestAuthorReputation(t *testing.T) {
	s := newTestScorer()

	t.Run("unknown author stays neutral", func(t *testing.T) {
		got := s.ScoreSource(domain.SourceRecord{Author: "randomuser42"}).Dimensions.AuthorReputation
		assert.InDelta(t, 0.5, got, 0.001)
	})

	t.Run("recognized expert gets the bonus", func(t *testing.T) {
		got := s.ScoreSource(domain.SourceRecord{Author: "Arthmoor"}).Dimensions.AuthorReputation
		assert.InDelta(t, 0.7, got, 0.001)
	})

	t.Run("author stats saturate", func(t *testing.T) {
		src := domain.SourceRecord{AuthorEndorsements: intPtr(9999)}
		got := s.ScoreSource(src).Dimensions.AuthorReputation
		assert.InDelta(t, 1.0, got, 0.001)
	})

	t.Run("expert bonus clamps at one", func(t *testing.T) {
		src := domain.SourceRecord{Author: "meh321", AuthorEndorsements: intPtr(9999)}
		got := s.ScoreSource(src).Dimensions.AuthorReputation
		assert.InDelta(t, 1.0, got, 0.001)
	})
}
