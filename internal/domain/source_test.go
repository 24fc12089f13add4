package domain_test

import (
	"testing"
	"time"

	"github.com/modsentry/modsentry/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSourceTime(t *testing.T) {
	tests := []struct {
		value string
		want  string // RFC3339, empty means nil
	}{
		{"2026-03-15T10:30:00Z", "2026-03-15T10:30:00Z"},
		{"2026-03-15T10:30:00", "2026-03-15T10:30:00Z"},
		{"2026-03-15 10:30:00", "2026-03-15T10:30:00Z"},
		{"2026-03-15", "2026-03-15T00:00:00Z"},
		{"", ""},
		{"yesterday", ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got := domain.ParseSourceTime(tt.value)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.UTC().Format(time.RFC3339))
		})
	}
}

func TestParseSourceRecord_Coercions(t *testing.T) {
	rec := domain.ParseSourceRecord(map[string]any{
		"url":            "https://www.nexusmods.com/skyrim/mods/1",
		"type":           "nexus_mods",
		"endorsements":   float64(1500), // JSON numbers decode as float64
		"upvotes":        "42",
		"rating":         4,
		"published_date": "2026-01-10",
		"verified":       "true",
	})

	require.NotNil(t, rec.Endorsements)
	assert.Equal(t, 1500, *rec.Endorsements)
	require.NotNil(t, rec.Upvotes)
	assert.Equal(t, 42, *rec.Upvotes)
	require.NotNil(t, rec.Rating)
	assert.Equal(t, 4.0, *rec.Rating)
	require.NotNil(t, rec.PublishedDate)
	assert.True(t, rec.Verified)
}

func TestParseSourceRecord_MalformedFieldsStayAbsent(t *testing.T) {
	rec := domain.ParseSourceRecord(map[string]any{
		"endorsements":   "lots",
		"rating":         "terrible",
		"published_date": "not a date",
		"verified":       "yep",
	})

	assert.Nil(t, rec.Endorsements)
	assert.Nil(t, rec.Rating)
	assert.Nil(t, rec.PublishedDate)
	assert.False(t, rec.Verified)
}

func TestLastActivity(t *testing.T) {
	pub := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	upd := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	both := domain.SourceRecord{PublishedDate: &pub, UpdatedDate: &upd}
	require.NotNil(t, both.LastActivity())
	assert.Equal(t, upd, *both.LastActivity())

	onlyPub := domain.SourceRecord{PublishedDate: &pub}
	require.NotNil(t, onlyPub.LastActivity())
	assert.Equal(t, pub, *onlyPub.LastActivity())

	assert.Nil(t, domain.SourceRecord{}.LastActivity())
}

func TestText(t *testing.T) {
	rec := domain.SourceRecord{Title: "CTD fix", Content: "disable the plugin"}
	assert.Equal(t, "CTD fix\ndisable the plugin", rec.Text())
	assert.Equal(t, "", domain.SourceRecord{}.Text())
}
